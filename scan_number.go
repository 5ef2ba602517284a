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

// scanNumber expects p.pos at the first byte of a number ('-' or a
// digit) and lexes the shape
//
//	-? (0 | [1-9][0-9]*) ( \. [0-9]+ )? ( [eE] [+-]? [0-9]+ )?
//
// returning the raw slice (excluding the terminating delimiter) and
// the position of that delimiter. A leading zero followed directly by
// another digit (e.g. "01", "-01") is rejected; "-0", "-0.5" and
// "-0e1" are accepted. Every exponent requires at least one digit.
func (p *Parser) scanNumber() ([]byte, int, error) {
	buf := p.buf
	start := p.pos
	pos := p.pos

	if buf[pos] == '-' {
		pos++
		if pos >= len(buf) {
			return nil, 0, p.errorf(pos, "truncated number")
		}
	}

	switch {
	case buf[pos] == '0':
		pos++
		if pos < len(buf) && isDigit(buf[pos]) {
			return nil, 0, p.errorf(pos, "number has a leading zero")
		}
	case isDigit(buf[pos]):
		pos++
		for pos < len(buf) && isDigit(buf[pos]) {
			pos++
		}
	default:
		return nil, 0, p.errorf(pos, "invalid number")
	}

	if pos < len(buf) && buf[pos] == '.' {
		pos++
		if pos >= len(buf) || !isDigit(buf[pos]) {
			return nil, 0, p.errorf(pos, "expected a digit after decimal point")
		}
		for pos < len(buf) && isDigit(buf[pos]) {
			pos++
		}
	}

	if pos < len(buf) && (buf[pos] == 'e' || buf[pos] == 'E') {
		pos++
		if pos < len(buf) && (buf[pos] == '+' || buf[pos] == '-') {
			pos++
		}
		if pos >= len(buf) || !isDigit(buf[pos]) {
			return nil, 0, p.errorf(pos, "expected a digit in exponent")
		}
		for pos < len(buf) && isDigit(buf[pos]) {
			pos++
		}
	}

	return buf[start:pos], pos, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
