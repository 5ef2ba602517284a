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

import "io"

// validUTF8Run returns the length of the well-formed UTF-8 sequence
// starting at src[0], recognizing 1-, 2-, 3- and 4-byte forms by their
// leading-bit patterns and checking that every continuation byte is
// present and has the 10xxxxxx pattern. It returns 0 if src[0] does
// not begin a valid sequence (the caller should then skip one byte and
// try again) — there is no further range/surrogate validation beyond
// length and continuation-byte shape, matching the original filter.
func validUTF8Run(src []byte) int {
	if len(src) == 0 {
		return 0
	}
	c := src[0]
	switch {
	case c < 0x80:
		return 1
	case c&0xE0 == 0xC0:
		if len(src) >= 2 && src[1]&0xC0 == 0x80 {
			return 2
		}
	case c&0xF0 == 0xE0:
		if len(src) >= 3 && src[1]&0xC0 == 0x80 && src[2]&0xC0 == 0x80 {
			return 3
		}
	case c&0xF8 == 0xF0:
		if len(src) >= 4 && src[1]&0xC0 == 0x80 && src[2]&0xC0 == 0x80 && src[3]&0xC0 == 0x80 {
			return 4
		}
	}
	return 0
}

// FilterUTF8ToWriter writes only the complete, well-formed UTF-8
// sequences in src to w, skipping any leading byte that isn't followed
// by the right continuation bytes. Returns the number of bytes
// written.
func FilterUTF8ToWriter(w io.Writer, src []byte) (int, error) {
	written := 0
	i := 0
	for i < len(src) {
		if n := validUTF8Run(src[i:]); n > 0 {
			nw, err := w.Write(src[i : i+n])
			written += nw
			if err != nil {
				return written, err
			}
			i += n
		} else {
			i++
		}
	}
	return written, nil
}

// FilterUTF8Append appends only the complete, well-formed UTF-8
// sequences in src to dst (which may be nil) and returns the result,
// skipping any leading byte that isn't followed by the right
// continuation bytes.
func FilterUTF8Append(dst, src []byte) []byte {
	i := 0
	for i < len(src) {
		if n := validUTF8Run(src[i:]); n > 0 {
			dst = append(dst, src[i:i+n]...)
			i += n
		} else {
			i++
		}
	}
	return dst
}

// FilterUTF8InPlace compacts b so it contains only complete,
// well-formed UTF-8 sequences, overwriting invalid bytes in place, and
// returns the (possibly shorter) result sliced to the new length.
// Filtering an already-filtered buffer is idempotent: it returns the
// same bytes unchanged.
func FilterUTF8InPlace(b []byte) []byte {
	in, out := 0, 0
	for in < len(b) {
		if n := validUTF8Run(b[in:]); n > 0 {
			if out != in {
				copy(b[out:out+n], b[in:in+n])
			}
			in += n
			out += n
		} else {
			in++
		}
	}
	return b[:out]
}
