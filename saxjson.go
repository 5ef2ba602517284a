/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package saxjson is a streaming, event-driven JSON parser: a
// single-pass state machine that walks a byte buffer, recognizes the
// JSON grammar, and emits events to a pluggable Handlers consumer.
// It builds no document tree — the caller decides what, if anything,
// to materialize from the event stream.
//
// Handlers may delegate a subtree to a sub-consumer with Push, and
// resign from it with TryPop when the subtree they were installed to
// handle closes. See TestParse_Delegation in parser_test.go for a worked
// subtree-delegation handler.
//
// Numbers are handed to OnNumber as raw, unparsed text; converting
// them to a numeric type is the caller's job (strconv.ParseFloat,
// ParseInt, or a big.Rat, as the caller's domain requires). Escape
// sequences inside strings and keys are likewise left undecoded — call
// codec.Decode to get a decoded value.
package saxjson

// ParseString is a convenience wrapper around Parse for callers who
// have a string rather than a []byte. It copies the string's bytes
// once (strings are immutable; Parse's contract requires a []byte it
// is free to slice), so it costs one allocation more than calling
// Parse directly on an owned buffer.
func ParseString(s string, root Handlers, reuse *Scratch, opts ...ParserOption) (errPos int, err error) {
	return Parse([]byte(s), root, reuse, opts...)
}
