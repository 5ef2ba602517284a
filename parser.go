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

// maxDepth is the total number of syntax-stack slots, including the
// implicit root frame. A document that tries to open more than
// maxDepth-1 nested containers is rejected as a syntax error.
const maxDepth = 512

type scopeKind uint8

const (
	scopeRoot scopeKind = iota
	scopeObject
	scopeArray
)

// frame is one saved handler-stack entry: the handler-set and anchor
// depth that were active before a Push, restored on the matching Pop.
type frame struct {
	handlers Handlers
	anchor   int
	next     *frame
}

// Scratch preallocates handler-stack frames so that repeated Parse
// calls over similarly-shaped documents do not grow the heap. It plays
// the same role as the teacher's reuse *ParsedJson parameter: pass the
// same *Scratch to successive Parse calls and its frame pool is reused
// wholesale instead of freed and reallocated one delegation at a time.
type Scratch struct {
	frames []frame
	used   int
}

// NewScratch preallocates room for the given number of nested
// delegations. Zero is a valid default; the pool simply falls back to
// ordinary heap allocation once exhausted.
func NewScratch(capacity int) *Scratch {
	if capacity < 0 {
		capacity = 0
	}
	return &Scratch{frames: make([]frame, capacity)}
}

func (s *Scratch) alloc() *frame {
	if s == nil {
		return &frame{}
	}
	if s.used < len(s.frames) {
		f := &s.frames[s.used]
		s.used++
		*f = frame{}
		return f
	}
	return &frame{}
}

func (s *Scratch) reset() {
	if s != nil {
		s.used = 0
	}
}

// Parser is the mutable handle passed to every consumer callback. It
// exposes the current lexical depth and the Push/Pop/TryPop operations
// a callback uses to delegate a subtree to a sub-consumer.
type Parser struct {
	buf []byte
	pos int

	active Handlers
	top    *frame

	depth  int // current_depth: number of open containers
	anchor int // depth at which `active` was installed

	syntax     [maxDepth]scopeKind
	syntaxTop  int
	afterComma bool

	copyStrings bool
	scratch     *Scratch
}

// Depth returns the current lexical nesting depth (0 at the document
// root, incremented on every start_object/start_array, decremented
// after the matching end_object/end_array fires).
func (p *Parser) Depth() int { return p.depth }

// Pos returns the current scan cursor, the byte offset Parse will
// report as the error position if the callback now running aborts the
// parse.
func (p *Parser) Pos() int { return p.pos }

// Push installs newHandlers as the active consumer, saving the
// current consumer and anchor depth onto the handler stack. Call this
// from inside a start_object/start_array/on_key callback to delegate
// the container about to be entered to a sub-consumer. The pushed
// consumer's anchor depth is set to the depth of the container's
// contents (current depth + 1), so that its matching end_* event fires
// at exactly current_depth == anchor_depth — see TryPop.
func (p *Parser) Push(newHandlers Handlers) {
	f := p.scratch.alloc()
	f.handlers = p.active
	f.anchor = p.anchor
	f.next = p.top
	p.top = f

	p.active = newHandlers
	p.anchor = p.depth + 1
}

// Pop restores the previously active consumer and anchor depth. A Pop
// with no saved frame (the handler stack is empty) is a silent no-op.
func (p *Parser) Pop() {
	if p.top == nil {
		return
	}
	p.active = p.top.handlers
	p.anchor = p.top.anchor
	p.top = p.top.next
}

// TryPop pops iff the current depth equals the anchor depth of the
// active consumer, and reports whether it did. This is the canonical
// way a delegated consumer resigns exactly when the subtree it was
// installed to own is closing: call it from the consumer's own
// on_end_object/on_end_array callback.
func (p *Parser) TryPop() bool {
	if p.depth == p.anchor {
		p.Pop()
		return true
	}
	return false
}

func (p *Parser) syntaxPush(kind scopeKind) error {
	if p.syntaxTop >= maxDepth-1 {
		return p.errorf(p.pos, "maximum nesting depth (%d) exceeded", maxDepth-1)
	}
	p.syntaxTop++
	p.syntax[p.syntaxTop] = kind
	p.depth++
	return nil
}

func (p *Parser) syntaxPop() {
	if p.syntaxTop > 0 {
		p.syntaxTop--
	}
	p.depth--
}

func (p *Parser) syntaxMode() scopeKind { return p.syntax[p.syntaxTop] }

// ParserOption configures optional parsing behavior.
type ParserOption func(p *Parser)

// WithCopyStrings makes string and key slices handed to OnString/OnKey
// owned copies instead of aliases into the input buffer passed to
// Parse. Default: false — slices alias the input, as described in
// spec.md's data model. Set this when the caller may reuse or mutate
// the buffer while callback-retained slices are still referenced
// beyond the Parse call that produced them (against the contract, but
// cheaply defended against here).
func WithCopyStrings(b bool) ParserOption {
	return func(p *Parser) { p.copyStrings = b }
}

// Parse walks buf, a single complete JSON document, invoking root's
// callbacks (and whatever sub-consumers root delegates to via Push) in
// strict document order. It returns a nil error on a fully matched
// document. A *SyntaxError is returned for a grammar violation; any
// other error is a consumer abort, returned verbatim from whichever
// callback produced it. errPos is the byte offset associated with a
// non-nil error and is meaningless when err is nil.
//
// buf is never mutated. Slices handed to callbacks are sub-slices of
// buf (see WithCopyStrings to opt out of aliasing) and remain valid for
// the whole call, not just for the callback invocation that received
// them.
//
// reuse, if non-nil, is reset and its frame pool is used for handler-
// stack delegation, avoiding a heap allocation per Push call across
// repeated invocations of Parse.
func Parse(buf []byte, root Handlers, reuse *Scratch, opts ...ParserOption) (errPos int, err error) {
	reuse.reset()
	p := &Parser{
		buf:     buf,
		active:  root,
		scratch: reuse,
	}
	for _, opt := range opts {
		opt(p)
	}

	if len(buf) == 0 {
		return 0, p.errorf(0, "empty input")
	}

	if err := p.parseValue(); err != nil {
		return p.pos, err
	}

	// Root scalar case: parseValue returns after a single scalar with
	// depth back at 0 without having consumed trailing whitespace.
	// Container cases leave pos just past the closing bracket.
	for p.pos < len(p.buf) && isSpace(p.buf[p.pos]) {
		p.pos++
	}
	if p.pos != len(p.buf) {
		return p.pos, p.errorf(p.pos, "trailing data after document")
	}
	return p.pos, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func (p *Parser) skipSpace() {
	p.pos = skipWhitespace(p.buf, p.pos)
}

// parseValue expects a JSON value starting at p.pos (after skipping
// whitespace) and consumes exactly one value, recursing into
// parseObject/parseArray for containers. It is used for the root
// value, array elements, and values following an object key — the
// three call sites the C source duplicated as start_value/
// start_key_object, unified here since their grammar is identical.
func (p *Parser) parseValue() error {
	p.skipSpace()
	if p.pos >= len(p.buf) {
		return p.errorf(p.pos, "unexpected end of input, expected a value")
	}

	c := p.buf[p.pos]
	switch {
	case c == '"':
		p.pos++
		raw, next, err := p.scanString()
		if err != nil {
			return err
		}
		p.pos = next
		if p.copyStrings {
			raw = append([]byte(nil), raw...)
		}
		return p.active.fireString(p, raw)

	case c == '{':
		p.pos++
		if err := p.active.fireStartObject(p); err != nil {
			return err
		}
		if err := p.syntaxPush(scopeObject); err != nil {
			return err
		}
		return p.parseObjectBody()

	case c == '[':
		p.pos++
		if err := p.active.fireStartArray(p); err != nil {
			return err
		}
		if err := p.syntaxPush(scopeArray); err != nil {
			return err
		}
		return p.parseArrayBody()

	case c == '-' || (c >= '0' && c <= '9'):
		raw, next, err := p.scanNumber()
		if err != nil {
			return err
		}
		p.pos = next
		return p.active.fireNumber(p, raw)

	case c == 't':
		next, err := p.scanLiteral("true")
		if err != nil {
			return err
		}
		p.pos = next
		return p.active.fireBool(p, true)

	case c == 'f':
		next, err := p.scanLiteral("false")
		if err != nil {
			return err
		}
		p.pos = next
		return p.active.fireBool(p, false)

	case c == 'n':
		next, err := p.scanLiteral("null")
		if err != nil {
			return err
		}
		p.pos = next
		return p.active.fireNull(p)

	default:
		return p.errorf(p.pos, "unexpected character %q, expected a value", c)
	}
}

// parseObjectBody consumes {key:value, ...} starting just after the
// opening brace has already triggered start_object and the syntax
// stack has already been pushed. p.depth has already been incremented
// by syntaxPush; the interior of the object is therefore at the depth
// Push's "+1" anchor convention expects.
func (p *Parser) parseObjectBody() error {
	afterComma := false
	for {
		p.skipSpace()
		if p.pos >= len(p.buf) {
			return p.errorf(p.pos, "unexpected end of input in object")
		}
		c := p.buf[p.pos]
		if c == '}' {
			if afterComma {
				return p.errorf(p.pos, "trailing comma before '}'")
			}
			p.pos++
			if err := p.active.fireEndObject(p); err != nil {
				return err
			}
			p.syntaxPop()
			return nil
		}
		if c != '"' {
			return p.errorf(p.pos, "expected '\"' starting an object key, got %q", c)
		}
		p.pos++
		raw, next, err := p.scanString()
		if err != nil {
			return err
		}
		p.pos = next
		keyRaw := raw
		if p.copyStrings {
			keyRaw = append([]byte(nil), raw...)
		}
		if err := p.active.fireKey(p, keyRaw); err != nil {
			return err
		}

		p.skipSpace()
		if p.pos >= len(p.buf) || p.buf[p.pos] != ':' {
			return p.errorf(p.pos, "expected ':' after object key")
		}
		p.pos++

		if err := p.parseValue(); err != nil {
			return err
		}

		p.skipSpace()
		if p.pos >= len(p.buf) {
			return p.errorf(p.pos, "unexpected end of input in object")
		}
		switch p.buf[p.pos] {
		case ',':
			p.pos++
			afterComma = true
		case '}':
			p.pos++
			if err := p.active.fireEndObject(p); err != nil {
				return err
			}
			p.syntaxPop()
			return nil
		default:
			return p.errorf(p.pos, "expected ',' or '}' after object value, got %q", p.buf[p.pos])
		}
	}
}

// parseArrayBody consumes [value, value, ...] the same way
// parseObjectBody consumes object members.
func (p *Parser) parseArrayBody() error {
	p.skipSpace()
	if p.pos < len(p.buf) && p.buf[p.pos] == ']' {
		p.pos++
		if err := p.active.fireEndArray(p); err != nil {
			return err
		}
		p.syntaxPop()
		return nil
	}

	for {
		if err := p.parseValue(); err != nil {
			return err
		}

		p.skipSpace()
		if p.pos >= len(p.buf) {
			return p.errorf(p.pos, "unexpected end of input in array")
		}
		switch p.buf[p.pos] {
		case ',':
			p.pos++
			p.skipSpace()
			if p.pos < len(p.buf) && p.buf[p.pos] == ']' {
				return p.errorf(p.pos, "trailing comma before ']'")
			}
		case ']':
			p.pos++
			if err := p.active.fireEndArray(p); err != nil {
				return err
			}
			p.syntaxPop()
			return nil
		default:
			return p.errorf(p.pos, "expected ',' or ']' after array element, got %q", p.buf[p.pos])
		}
	}
}
