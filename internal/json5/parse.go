package json5

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxDepth is the deepest nesting of objects and arrays Parse accepts.
const MaxDepth = 1000

// SyntaxError describes where and why a document failed to parse.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json5: line %d column %d: %s", e.Line, e.Column, e.Msg)
}

// Parse decodes a single JSON5 value from text.
func Parse(text string) (Value, error) {
	p := &parser{src: text}

	p.skipSpace()
	if p.err != nil {
		return nil, p.err
	}

	if p.eof() {
		return nil, p.errorf("unexpected end of input")
	}

	v := p.value(0)
	if p.err != nil {
		return nil, p.err
	}

	p.skipSpace()
	if p.err != nil {
		return nil, p.err
	}

	if !p.eof() {
		return nil, p.errorf("unexpected %s after top-level value", p.describe())
	}

	return v, nil
}

type parser struct {
	src string
	pos int
	err error
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() rune {
	if p.eof() {
		return -1
	}

	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])

	return r
}

func (p *parser) next() rune {
	if p.eof() {
		return -1
	}

	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size

	return r
}

func (p *parser) describe() string {
	if p.eof() {
		return "end of input"
	}

	return fmt.Sprintf("character %q", p.peek())
}

// errorf records the first error at the current position.
func (p *parser) errorf(format string, args ...any) error {
	if p.err != nil {
		return p.err
	}

	consumed := p.src[:min(p.pos, len(p.src))]
	line := strings.Count(consumed, "\n") + 1
	lineStart := strings.LastIndexByte(consumed, '\n') + 1

	p.err = &SyntaxError{
		Line:   line,
		Column: utf8.RuneCountInString(consumed[lineStart:]) + 1,
		Msg:    fmt.Sprintf(format, args...),
	}

	return p.err
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u2028', '\u2029', '\ufeff':
		return true
	}

	return unicode.Is(unicode.Zs, r)
}

func (p *parser) skipSpace() {
	for !p.eof() {
		r := p.peek()

		switch {
		case isSpace(r):
			p.next()
		case r == '/' && strings.HasPrefix(p.src[p.pos:], "//"):
			p.pos += 2
			for !p.eof() && !isLineTerminator(p.peek()) {
				p.next()
			}
		case r == '/' && strings.HasPrefix(p.src[p.pos:], "/*"):
			end := strings.Index(p.src[p.pos+2:], "*/")
			if end < 0 {
				p.errorf("unterminated block comment")
				return
			}

			p.pos += 2 + end + 2
		default:
			return
		}
	}
}

func (p *parser) value(depth int) Value {
	switch r := p.peek(); {
	case r == '{':
		return p.object(depth + 1)
	case r == '[':
		return p.array(depth + 1)
	case r == '"' || r == '\'':
		s, ok := p.quoted()
		if !ok {
			return nil
		}

		return String(s)
	case r == '-' || r == '+' || r == '.' || r == 'I' || r == 'N' || (r >= '0' && r <= '9'):
		return p.number()
	case r == 't':
		return p.literal("true", Bool(true))
	case r == 'f':
		return p.literal("false", Bool(false))
	case r == 'n':
		return p.literal("null", Null{})
	default:
		p.errorf("unexpected %s, expecting a value", p.describe())
		return nil
	}
}

func (p *parser) literal(word string, v Value) Value {
	if !strings.HasPrefix(p.src[p.pos:], word) {
		p.errorf("invalid literal, expecting %q", word)
		return nil
	}

	p.pos += len(word)

	return v
}

func (p *parser) object(depth int) Value {
	if depth > MaxDepth {
		p.errorf("exceeded maximum nesting depth of %d", MaxDepth)
		return nil
	}

	p.next() // {

	obj := &Object{}
	index := make(map[string]int)

	for {
		p.skipSpace()
		if p.err != nil {
			return nil
		}

		if p.peek() == '}' {
			p.next()
			return obj
		}

		key, ok := p.key()
		if !ok {
			return nil
		}

		p.skipSpace()
		if p.err != nil {
			return nil
		}

		if p.peek() != ':' {
			p.errorf("unexpected %s, expecting ':'", p.describe())
			return nil
		}

		p.next()

		p.skipSpace()
		if p.err != nil {
			return nil
		}

		v := p.value(depth)
		if p.err != nil {
			return nil
		}

		obj.set(index, key, v)

		p.skipSpace()
		if p.err != nil {
			return nil
		}

		switch p.peek() {
		case ',':
			p.next()
		case '}':
			p.next()
			return obj
		default:
			p.errorf("unexpected %s, expecting ',' or '}'", p.describe())
			return nil
		}
	}
}

func (p *parser) array(depth int) Value {
	if depth > MaxDepth {
		p.errorf("exceeded maximum nesting depth of %d", MaxDepth)
		return nil
	}

	p.next() // [

	arr := Array{}

	for {
		p.skipSpace()
		if p.err != nil {
			return nil
		}

		if p.peek() == ']' {
			p.next()
			return arr
		}

		v := p.value(depth)
		if p.err != nil {
			return nil
		}

		arr = append(arr, v)

		p.skipSpace()
		if p.err != nil {
			return nil
		}

		switch p.peek() {
		case ',':
			p.next()
		case ']':
			p.next()
			return arr
		default:
			p.errorf("unexpected %s, expecting ',' or ']'", p.describe())
			return nil
		}
	}
}

func (p *parser) key() (string, bool) {
	if r := p.peek(); r == '"' || r == '\'' {
		return p.quoted()
	}

	return p.identifier()
}

func isIdentifierStart(r rune) bool {
	return r == '$' || r == '_' || unicode.In(r, unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) ||
		r == '\u200c' || r == '\u200d' ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

func (p *parser) identifier() (string, bool) {
	var sb strings.Builder

	for first := true; ; first = false {
		r := p.peek()

		if r == '\\' {
			p.next()

			if p.next() != 'u' {
				p.errorf("invalid escape in identifier, expecting \\u")
				return "", false
			}

			decoded, ok := p.hex(4)
			if !ok {
				return "", false
			}

			r = rune(decoded)
			if (first && !isIdentifierStart(r)) || (!first && !isIdentifierPart(r)) {
				p.errorf("invalid identifier character %q", r)
				return "", false
			}

			sb.WriteRune(r)

			continue
		}

		if first && !isIdentifierStart(r) {
			p.errorf("unexpected %s, expecting a key", p.describe())
			return "", false
		}

		if !first && !isIdentifierPart(r) {
			return sb.String(), true
		}

		sb.WriteRune(p.next())
	}
}

func (p *parser) hex(n int) (int, bool) {
	v := 0

	for range n {
		d, ok := hexDigit(p.peek())
		if !ok {
			p.errorf("invalid hexadecimal escape")
			return 0, false
		}

		p.next()

		v = v<<4 | d
	}

	return v, true
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}

	return 0, false
}

func (p *parser) quoted() (string, bool) {
	quote := p.next()

	var sb strings.Builder

	for {
		if p.eof() {
			p.errorf("unterminated string")
			return "", false
		}

		r := p.next()

		switch {
		case r == quote:
			return sb.String(), true
		case r == '\n' || r == '\r':
			p.errorf("unescaped line break in string")
			return "", false
		case r == '\\':
			if !p.escape(&sb) {
				return "", false
			}
		default:
			sb.WriteRune(r)
		}
	}
}

func (p *parser) escape(sb *strings.Builder) bool {
	if p.eof() {
		p.errorf("unterminated string")
		return false
	}

	r := p.next()

	switch r {
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'v':
		sb.WriteByte('\v')
	case '0':
		if d := p.peek(); d >= '0' && d <= '9' {
			p.errorf("octal escapes are not allowed")
			return false
		}

		sb.WriteByte(0)
	case 'x':
		v, ok := p.hex(2)
		if !ok {
			return false
		}

		sb.WriteRune(rune(v))
	case 'u':
		return p.unicodeEscape(sb)
	case '\r':
		if p.peek() == '\n' {
			p.next()
		}
	case '\n', '\u2028', '\u2029':
		// line continuation
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		p.errorf("invalid escape \\%c", r)
		return false
	default:
		sb.WriteRune(r)
	}

	return true
}

func (p *parser) unicodeEscape(sb *strings.Builder) bool {
	v, ok := p.hex(4)
	if !ok {
		return false
	}

	r := rune(v)

	if r >= 0xd800 && r < 0xdc00 && strings.HasPrefix(p.src[p.pos:], `\u`) {
		save := p.pos
		p.pos += 2

		lo, ok := p.hex(4)
		if !ok {
			return false
		}

		if lo >= 0xdc00 && lo < 0xe000 {
			sb.WriteRune(0x10000 + (r-0xd800)<<10 + (rune(lo) - 0xdc00))
			return true
		}

		p.pos = save
	}

	// Lone surrogates are not representable in UTF-8 and become U+FFFD.
	sb.WriteRune(r)

	return true
}
