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

import "encoding/binary"

// whitespace is exactly {0x20, 0x09, 0x0A, 0x0D}, skipped anywhere
// between tokens.

// fastWhitespaceSkip is set once at init time depending on what the
// CPU supports (see cpu_amd64.go / cpu_other.go), mirroring the
// teacher's SupportedCPU()-gated amd64/fallback split.
var fastWhitespaceSkip = supportedCPU()

// allSpaces8 reports whether all 8 bytes packed into w (little-endian)
// are the most common JSON indentation byte, 0x20. Pretty-printed JSON
// spends most of its whitespace runs on exactly this byte, so a single
// comparison against the all-0x20 word covers the hot case; anything
// else (tabs, newlines, mixed runs) falls through to the byte scan.
func allSpaces8(w uint64) bool {
	const allSpace = 0x2020202020202020
	return w == allSpace
}

// skipWhitespace advances pos past any run of JSON whitespace starting
// at pos, returning the new position. When the CPU supports it, runs
// of plain 0x20 are tested 8 bytes at a time; everything else (mixed
// whitespace, tabs, newlines, or a CPU without the fast path) falls
// back to a byte-at-a-time scan.
func skipWhitespace(buf []byte, pos int) int {
	if fastWhitespaceSkip {
		for pos+8 <= len(buf) && allSpaces8(binary.LittleEndian.Uint64(buf[pos:])) {
			pos += 8
		}
	}
	for pos < len(buf) && isSpace(buf[pos]) {
		pos++
	}
	return pos
}
