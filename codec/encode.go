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

package codec

import "fmt"

// Encode escapes ", \, /, and every byte < 0x20 in src. \b, \f, \n,
// \r, \t get their short two-character form; other control bytes
// become \u00XX. Bytes >= 0x20 that aren't one of the three specials
// are emitted verbatim — Encode does not validate that src is
// well-formed UTF-8.
//
// Fast path: if nothing in src needs escaping, Encode returns src
// itself unchanged. Otherwise the escaped bytes are appended to dst
// (which may be nil) and the result returned.
func Encode(dst, src []byte) []byte {
	i := needsEscape(src)
	if i < 0 {
		return src
	}
	dst = append(dst, src[:i]...)
	for _, c := range src[i:] {
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '/':
			dst = append(dst, '\\', '/')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 0x20 {
				dst = append(dst, fmt.Sprintf(`\u%04X`, c)...)
			} else {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

// needsEscape returns the index of the first byte in src that Encode
// would escape, or -1 if none does.
func needsEscape(src []byte) int {
	for i, c := range src {
		if c < 0x20 || c == '"' || c == '\\' || c == '/' {
			return i
		}
	}
	return -1
}
