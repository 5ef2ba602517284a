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

import (
	"bytes"
	"testing"
)

func TestFilterUTF8InPlace_StripsTruncatedSequence(t *testing.T) {
	// "XY" + truncated 3-byte sequence start (E2 82 missing final AC) + "Z"
	buf := []byte{'X', 'Y', 0xE2, 0x82, 'Z'}
	got := FilterUTF8InPlace(buf)
	if string(got) != "XYZ" {
		t.Fatalf("FilterUTF8InPlace = %q, want %q", got, "XYZ")
	}
}

func TestFilterUTF8InPlace_Idempotent(t *testing.T) {
	buf := []byte("already clean ascii")
	first := FilterUTF8InPlace(buf)
	second := FilterUTF8InPlace(first)
	if !bytes.Equal(first, second) {
		t.Fatalf("second filter pass changed output: %q -> %q", first, second)
	}
}

func TestFilterUTF8Append_DropsInvalidLeadByte(t *testing.T) {
	// 0xC3 0x28 is invalid (0x28 is not a continuation byte); output
	// should drop the lead byte and keep the following ASCII ('(' is
	// 0x28) intact.
	bad := []byte{'A', 0xC3, 0x28, 'B', 'C'}
	got := FilterUTF8Append(nil, bad)
	if string(got) != "A(BC" {
		t.Fatalf("FilterUTF8Append = %q, want %q", got, "A(BC")
	}
}

func TestFilterUTF8ToWriter_CountsWrittenBytes(t *testing.T) {
	var buf bytes.Buffer
	n, err := FilterUTF8ToWriter(&buf, []byte{'A', 0xC3, 0x28, 'B', 'C'})
	if err != nil {
		t.Fatalf("FilterUTF8ToWriter: %v", err)
	}
	if n != 4 || buf.String() != "A(BC" {
		t.Fatalf("FilterUTF8ToWriter wrote %d bytes %q, want 4 %q", n, buf.String(), "A(BC")
	}
}

func TestValidUTF8Run_MultiByteForms(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want int
	}{
		{"ascii", []byte{'a'}, 1},
		{"two-byte", []byte{0xC2, 0xA2}, 2},
		{"three-byte", []byte{0xE2, 0x82, 0xAC}, 3},
		{"four-byte", []byte{0xF0, 0x9F, 0x98, 0x80}, 4},
		{"truncated two-byte", []byte{0xC2}, 0},
		{"bad continuation", []byte{0xE2, 0x28, 0xAC}, 0},
	}
	for _, c := range cases {
		if got := validUTF8Run(c.in); got != c.want {
			t.Errorf("%s: validUTF8Run(%v) = %d, want %d", c.name, c.in, got, c.want)
		}
	}
}
