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

import "testing"

func TestEncode_NoEscapesIsZeroCopy(t *testing.T) {
	src := []byte("simple")
	enc := Encode(nil, src)
	if &enc[0] != &src[0] {
		t.Fatalf("Encode should alias src when nothing needs escaping")
	}
}

func TestEncode_SlashBackslashQuote(t *testing.T) {
	src := []byte{'/', '\\', '"'}
	got := string(Encode(nil, src))
	want := `\/\\\"`
	if got != want {
		t.Fatalf("Encode(%v) = %q, want %q", src, got, want)
	}
}

func TestEncode_EmbeddedNulAndControls(t *testing.T) {
	src := []byte{'A', 0, 'B', '\n'}
	got := string(Encode(nil, src))
	want := `A\u0000B\n`
	if got != want {
		t.Fatalf("Encode(%v) = %q, want %q", src, got, want)
	}
}

func TestEncode_RoundTripsThroughDecode(t *testing.T) {
	raw := []byte("Hello\t\"World\"\n")
	enc := Encode(nil, raw)
	dec := Decode(nil, enc)
	if string(dec) != string(raw) {
		t.Fatalf("Decode(Encode(%q)) = %q, want original", raw, dec)
	}
}
