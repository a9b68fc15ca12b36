package json5

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// EncodeOptions controls the layout of encoded text.
type EncodeOptions struct {
	// Indent is written once per nesting level before each element.
	Indent string
	// EnsureASCII escapes every rune outside printable ASCII as \uXXXX.
	EnsureASCII bool
}

// Encode renders v as indented, JSON-compatible text without a trailing newline.
func Encode(v Value, opts EncodeOptions) string {
	e := &encoder{opts: opts}
	e.value(v, 0)

	return e.sb.String()
}

type encoder struct {
	sb   strings.Builder
	opts EncodeOptions
}

func (e *encoder) newline(depth int) {
	e.sb.WriteByte('\n')
	for range depth {
		e.sb.WriteString(e.opts.Indent)
	}
}

func (e *encoder) value(v Value, depth int) {
	switch v := v.(type) {
	case *Object:
		e.object(v, depth)
	case Array:
		e.array(v, depth)
	case String:
		e.quote(string(v))
	case Number:
		e.sb.WriteString(string(v))
	case Bool:
		if v {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}
	case Null, nil:
		e.sb.WriteString("null")
	default:
		panic(fmt.Sprintf("json5: unexpected value type %T", v))
	}
}

func (e *encoder) object(o *Object, depth int) {
	if len(o.Members) == 0 {
		e.sb.WriteString("{}")
		return
	}

	e.sb.WriteByte('{')

	for i, m := range o.Members {
		if i > 0 {
			e.sb.WriteByte(',')
		}

		e.newline(depth + 1)
		e.quote(m.Key)
		e.sb.WriteString(": ")
		e.value(m.Value, depth+1)
	}

	e.newline(depth)
	e.sb.WriteByte('}')
}

func (e *encoder) array(a Array, depth int) {
	if len(a) == 0 {
		e.sb.WriteString("[]")
		return
	}

	e.sb.WriteByte('[')

	for i, v := range a {
		if i > 0 {
			e.sb.WriteByte(',')
		}

		e.newline(depth + 1)
		e.value(v, depth+1)
	}

	e.newline(depth)
	e.sb.WriteByte(']')
}

const hexChars = "0123456789abcdef"

func (e *encoder) quote(s string) {
	e.sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			e.sb.WriteString(`\"`)
		case '\\':
			e.sb.WriteString(`\\`)
		case '\b':
			e.sb.WriteString(`\b`)
		case '\f':
			e.sb.WriteString(`\f`)
		case '\n':
			e.sb.WriteString(`\n`)
		case '\r':
			e.sb.WriteString(`\r`)
		case '\t':
			e.sb.WriteString(`\t`)
		default:
			switch {
			case r < 0x20:
				e.escape(r)
			case e.opts.EnsureASCII && r > 0x7e:
				e.escapeNonASCII(r)
			default:
				e.sb.WriteRune(r)
			}
		}
	}

	e.sb.WriteByte('"')
}

func (e *encoder) escapeNonASCII(r rune) {
	if r >= 0x10000 {
		hi, lo := utf16.EncodeRune(r)
		e.escape(hi)
		e.escape(lo)

		return
	}

	e.escape(r)
}

func (e *encoder) escape(r rune) {
	e.sb.WriteString(`\u`)
	e.sb.WriteByte(hexChars[r>>12&0xf])
	e.sb.WriteByte(hexChars[r>>8&0xf])
	e.sb.WriteByte(hexChars[r>>4&0xf])
	e.sb.WriteByte(hexChars[r&0xf])
}
