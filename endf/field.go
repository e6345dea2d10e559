package endf

import (
	"math"
	"strconv"
)

// FieldWidth is the width of one data field in columns 1-66.
const FieldWidth = 11

type FieldKind int

const (
	IntField FieldKind = iota
	FloatField
	TextField
)

func (k FieldKind) String() string {
	switch k {
	case IntField:
		return "integer"
	case FloatField:
		return "float"
	case TextField:
		return "text"
	}
	return "unknown"
}

// pow10 holds the powers of ten that are exactly representable as float64.
var pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
	1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

func malformed(b []byte, kind FieldKind) *Error {
	return &Error{Kind: MalformedField, Text: string(b), Expected: kind.String()}
}

func trimBlanks(b []byte) (int, int) {
	i, j := 0, len(b)
	for i < j && b[i] == ' ' {
		i++
	}
	for j > i && b[j-1] == ' ' {
		j--
	}
	return i, j
}

func isBlank(b []byte) bool {
	i, j := trimBlanks(b)
	return i == j
}

// ParseInt decodes a right-justified integer field. A blank field is zero.
func ParseInt(b []byte) (int, error) {
	i, j := trimBlanks(b)
	if i == j {
		return 0, nil
	}
	neg := false
	switch b[i] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}
	if i == j || j-i > 18 {
		return 0, malformed(b, IntField)
	}
	n := 0
	for ; i < j; i++ {
		c := b[i]
		if c < '0' || c > '9' {
			return 0, malformed(b, IntField)
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

// ParseFloat decodes an ENDF real. The exponent may be introduced by a bare
// sign ("1.234567+5", "-2.5-3") or by an E or D marker ("1.5E+3"). A blank
// field is zero.
func ParseFloat(b []byte) (float64, error) {
	i, j := trimBlanks(b)
	if i == j {
		return 0, nil
	}
	v, ok := parseReal(b[i:j])
	if !ok {
		return 0, malformed(b, FloatField)
	}
	return v, nil
}

// ParseText returns the field with trailing blanks removed. Leading blanks
// are kept since text columns are positional.
func ParseText(b []byte) string {
	j := len(b)
	for j > 0 && b[j-1] == ' ' {
		j--
	}
	return string(b[:j])
}

// parseReal scans a trimmed, non-empty ENDF real.
func parseReal(s []byte) (float64, bool) {
	p := 0
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		p++
	}

	var mant uint64
	digits, scale := 0, 0
	sawDigit, sawDot, truncated := false, false, false
mantissa:
	for ; p < len(s); p++ {
		c := s[p]
		switch {
		case c >= '0' && c <= '9':
			sawDigit = true
			if digits == 0 && c == '0' {
				if sawDot {
					scale--
				}
				continue
			}
			if digits < 19 {
				mant = mant*10 + uint64(c-'0')
				digits++
				if sawDot {
					scale--
				}
			} else {
				truncated = true
				if !sawDot {
					scale++
				}
			}
		case c == '.' && !sawDot:
			sawDot = true
		default:
			break mantissa
		}
	}
	if !sawDigit {
		return 0, false
	}
	mantEnd := p

	exp := 0
	if p < len(s) {
		marker := false
		switch s[p] {
		case 'E', 'e', 'D', 'd':
			marker = true
			p++
		case '+', '-':
		default:
			return 0, false
		}
		expNeg := false
		if p < len(s) && (s[p] == '+' || s[p] == '-') {
			expNeg = s[p] == '-'
			p++
		} else if !marker {
			return 0, false
		}
		if p == len(s) {
			return 0, false
		}
		for ; p < len(s); p++ {
			c := s[p]
			if c < '0' || c > '9' {
				return 0, false
			}
			if exp < 10000 {
				exp = exp*10 + int(c-'0')
			}
		}
		if expNeg {
			exp = -exp
		}
	}

	if mant == 0 {
		if neg {
			return math.Copysign(0, -1), true
		}
		return 0, true
	}

	e := exp + scale
	if !truncated && digits <= 15 && e >= -22 && e <= 22 {
		f := float64(mant)
		if e < 0 {
			f /= pow10[-e]
		} else {
			f *= pow10[e]
		}
		if neg {
			f = -f
		}
		return f, true
	}
	return slowReal(s, mantEnd)
}

// slowReal rewrites the field into Go float syntax and defers to strconv.
func slowReal(s []byte, mantEnd int) (float64, bool) {
	var buf [48]byte
	if len(s)+1 > len(buf) {
		return 0, false
	}
	n := copy(buf[:], s[:mantEnd])
	if mantEnd < len(s) {
		buf[n] = 'e'
		n++
		rest := s[mantEnd:]
		switch rest[0] {
		case 'E', 'e', 'D', 'd':
			rest = rest[1:]
		}
		n += copy(buf[n:], rest)
	}
	f, err := strconv.ParseFloat(string(buf[:n]), 64)
	if err != nil {
		// Out of range values still carry a usable ±Inf or 0.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}
