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

import "bytes"

// scanString expects p.pos to be positioned just past the opening
// quote of a string or key. It scans forward to the first unescaped
// quote, returning the raw content (excluding both quotes, escapes
// undecoded) and the position just past the closing quote.
//
// A quote is unescaped iff it is preceded by an even number of
// consecutive backslashes (zero counts as even): scan to any quote,
// and if it's immediately preceded by a backslash, walk backward
// counting the run; an odd run means the quote itself is escaped and
// the scan resumes one past it.
func (p *Parser) scanString() ([]byte, int, error) {
	buf := p.buf
	start := p.pos
	pos := p.pos
	for {
		idx := bytes.IndexByte(buf[pos:], '"')
		if idx < 0 {
			return nil, 0, p.errorf(len(buf), "unterminated string")
		}
		end := pos + idx
		backslashes := 0
		for k := end - 1; k >= 0 && buf[k] == '\\'; k-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return buf[start:end], end + 1, nil
		}
		pos = end + 1
	}
}
