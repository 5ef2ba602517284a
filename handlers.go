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

package saxjson

// Handlers is a record of up to nine optional callbacks, one per event
// kind. A nil field means "ignore this event kind" and costs nothing to
// test (a plain nil check) or to invoke (it is simply skipped).
//
// Every callback receives the active Parser handle so it can inspect the
// current depth or delegate a subtree via Push/Pop/TryPop. Returning a
// non-nil error aborts the parse immediately; that exact error is
// returned from Parse.
//
// Raw byte slices passed to OnNumber, OnString and OnKey are sub-slices
// of the buffer given to Parse, with surrounding quotes stripped for
// strings and keys. Escape sequences inside them are not decoded — call
// codec.Decode if you need the decoded form. The slices remain valid for
// the duration of the Parse call; they must not be retained past it.
type Handlers struct {
	OnNull func(p *Parser) error
	OnBool func(p *Parser, v bool) error

	// OnNumber and OnString receive the raw JSON text of the token,
	// unparsed. Numeric conversion is the caller's responsibility.
	OnNumber func(p *Parser, raw []byte) error
	OnString func(p *Parser, raw []byte) error
	OnKey    func(p *Parser, raw []byte) error

	OnStartObject func(p *Parser) error
	OnEndObject   func(p *Parser) error
	OnStartArray  func(p *Parser) error
	OnEndArray    func(p *Parser) error
}

func (h Handlers) fireNull(p *Parser) error {
	if h.OnNull == nil {
		return nil
	}
	return h.OnNull(p)
}

func (h Handlers) fireBool(p *Parser, v bool) error {
	if h.OnBool == nil {
		return nil
	}
	return h.OnBool(p, v)
}

func (h Handlers) fireNumber(p *Parser, raw []byte) error {
	if h.OnNumber == nil {
		return nil
	}
	return h.OnNumber(p, raw)
}

func (h Handlers) fireString(p *Parser, raw []byte) error {
	if h.OnString == nil {
		return nil
	}
	return h.OnString(p, raw)
}

func (h Handlers) fireKey(p *Parser, raw []byte) error {
	if h.OnKey == nil {
		return nil
	}
	return h.OnKey(p, raw)
}

func (h Handlers) fireStartObject(p *Parser) error {
	if h.OnStartObject == nil {
		return nil
	}
	return h.OnStartObject(p)
}

func (h Handlers) fireEndObject(p *Parser) error {
	if h.OnEndObject == nil {
		return nil
	}
	return h.OnEndObject(p)
}

func (h Handlers) fireStartArray(p *Parser) error {
	if h.OnStartArray == nil {
		return nil
	}
	return h.OnStartArray(p)
}

func (h Handlers) fireEndArray(p *Parser) error {
	if h.OnEndArray == nil {
		return nil
	}
	return h.OnEndArray(p)
}
