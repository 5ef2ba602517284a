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

// scanLiteral matches lit ("true", "false" or "null") case-sensitively
// against p.buf starting at p.pos, with an exact length check against
// the remaining bytes. Returns the position just past the literal.
func (p *Parser) scanLiteral(lit string) (int, error) {
	pos := p.pos
	if pos+len(lit) > len(p.buf) {
		return 0, p.errorf(pos, "truncated literal, expected %q", lit)
	}
	for i := 0; i < len(lit); i++ {
		if p.buf[pos+i] != lit[i] {
			return 0, p.errorf(pos, "invalid literal, expected %q", lit)
		}
	}
	return pos + len(lit), nil
}
