package json5

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (p *parser) digits() string {
	start := p.pos
	for isDigit(p.peek()) {
		p.next()
	}

	return p.src[start:p.pos]
}

// number reads a numeric literal and returns it in normalized form.
func (p *parser) number() Value {
	negative := false
	if r := p.peek(); r == '+' || r == '-' {
		negative = r == '-'
		p.next()
	}

	rest := p.src[p.pos:]

	switch {
	case strings.HasPrefix(rest, "Infinity"):
		p.pos += len("Infinity")
		if negative {
			return Number("-Infinity")
		}

		return Number("Infinity")
	case strings.HasPrefix(rest, "NaN"):
		p.pos += len("NaN")
		return Number("NaN")
	case strings.HasPrefix(rest, "0x"), strings.HasPrefix(rest, "0X"):
		p.pos += 2
		return p.hexNumber(negative)
	}

	intStart := p.pos

	var whole string
	if p.peek() == '0' {
		p.next()

		if isDigit(p.peek()) {
			p.errorf("numbers cannot have leading zeros")
			return nil
		}

		whole = "0"
	} else {
		whole = p.digits()
	}

	var frac, exp string

	isFloat := false

	if p.peek() == '.' {
		p.next()

		isFloat = true
		frac = p.digits()
	}

	if whole == "" && frac == "" {
		p.pos = intStart
		p.errorf("invalid number")

		return nil
	}

	if r := p.peek(); r == 'e' || r == 'E' {
		p.next()

		isFloat = true
		expStart := p.pos

		if r := p.peek(); r == '+' || r == '-' {
			p.next()
		}

		if p.digits() == "" {
			p.errorf("missing exponent digits")
			return nil
		}

		exp = p.src[expStart:p.pos]
	}

	if !isFloat {
		n, _ := new(big.Int).SetString(whole, 10)
		if negative {
			n.Neg(n)
		}

		return Number(n.String())
	}

	literal := zeroIfEmpty(whole) + "." + zeroIfEmpty(frac)
	if exp != "" {
		literal += "e" + exp
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.errorf("invalid number %q", literal)
		return nil
	}

	if negative {
		f = -f
	}

	return Number(FormatFloat(f))
}

func (p *parser) hexNumber(negative bool) Value {
	start := p.pos
	for {
		if _, ok := hexDigit(p.peek()); !ok {
			break
		}

		p.next()
	}

	if start == p.pos {
		p.errorf("missing hexadecimal digits")
		return nil
	}

	n, _ := new(big.Int).SetString(p.src[start:p.pos], 16)
	if negative {
		n.Neg(n)
	}

	return Number(n.String())
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}

	return s
}

// FormatFloat renders f as the shortest text that reads back to the same
// float64. Exponents in [-4, 16) use fixed notation with at least one
// fractional digit; others use exponent notation with a signed, two-digit
// minimum exponent. Non-finite values print as Infinity, -Infinity and NaN.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)

	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}

	return fixed
}
