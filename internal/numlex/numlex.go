// Package numlex scans Verilog numeric literals.
//
// A literal is either a sized/based form such as 32'sh1b, or a bare
// decimal integer. Underscores and spaces are insignificant and are
// stripped before scanning. The octal form deliberately accepts the
// hex digit alphabet, mirroring long-standing tool behavior: each
// digit contributes only its low three bits.
package numlex

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/coregx/coregex"
)

// Base identifies the digit alphabet of a literal.
type Base uint8

const (
	Binary Base = iota
	Octal
	Hex
	Decimal
	// UnsizedDecimal is a bare integer with no quote, e.g. "42".
	UnsizedDecimal
)

// Literal is a scanned numeric literal. Digits holds the cleaned digit
// text in the literal's own alphabet; value projections are derived on
// demand.
type Literal struct {
	WidthDigits string // Decimal digits before the quote, "" if none
	Signed      bool   // 's' or 'S' after the quote
	Base        Base
	Digits      string // Digit text after the base letter
	Negated     bool   // Bare decimal carried a leading '-'
}

// bareDecRE recognizes a bare decimal integer with optional sign.
var bareDecRE = mustCompile(`^-?[0-9]+$`)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Clean removes underscores and spaces, which are insignificant inside
// Verilog literals.
func Clean(lit string) string {
	if !strings.ContainsAny(lit, "_ ") {
		return lit
	}
	var b strings.Builder
	b.Grow(len(lit))
	for i := 0; i < len(lit); i++ {
		if c := lit[i]; c != '_' && c != ' ' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Bits returns the width digits preceding the quote. It reports false
// when the literal has no quote or no width digits; the rest of the
// literal need not be well formed.
func Bits(lit string) (int, bool) {
	s := Clean(lit)
	q := strings.IndexByte(s, '\'')
	if q <= 0 || !allDigits(s[:q]) {
		return 0, false
	}
	w, err := strconv.Atoi(s[:q])
	if err != nil {
		return 0, false
	}
	return w, true
}

// IsSigned reports whether the literal's quote is followed by 's' or
// 'S'. The width is optional; the rest of the literal need not be well
// formed.
func IsSigned(lit string) bool {
	s := Clean(lit)
	q := strings.IndexByte(s, '\'')
	if q < 0 {
		return false
	}
	return q+1 < len(s) && (s[q+1] == 's' || s[q+1] == 'S')
}

// Scan parses a literal. It reports false when the text is neither a
// recognizable based literal nor a bare decimal integer.
func Scan(lit string) (Literal, bool) {
	s := Clean(lit)
	q := strings.IndexByte(s, '\'')
	if q < 0 {
		if !bareDecRE.MatchString(s) {
			return Literal{}, false
		}
		neg := s[0] == '-'
		return Literal{
			Base:    UnsizedDecimal,
			Digits:  strings.TrimPrefix(s, "-"),
			Negated: neg,
		}, true
	}

	l := Literal{}
	if q > 0 && allDigits(s[:q]) {
		l.WidthDigits = s[:q]
	}

	rest := s[q+1:]
	if rest != "" && (rest[0] == 's' || rest[0] == 'S') {
		l.Signed = true
		rest = rest[1:]
	}
	if rest == "" {
		return Literal{}, false
	}

	l.Base = Decimal
	switch rest[0] {
	case 'b', 'B':
		l.Base = Binary
		rest = rest[1:]
	case 'o', 'O':
		l.Base = Octal
		rest = rest[1:]
	case 'h', 'H':
		l.Base = Hex
		rest = rest[1:]
	case 'd', 'D':
		rest = rest[1:]
	}
	if rest == "" || !inAlphabet(rest, l.Base) {
		return Literal{}, false
	}
	l.Digits = rest
	return l, true
}

// Width returns the declared width, if any.
func (l Literal) Width() (int, bool) {
	if l.WidthDigits == "" {
		return 0, false
	}
	w, err := strconv.Atoi(l.WidthDigits)
	if err != nil {
		return 0, false
	}
	return w, true
}

// Uint64 returns the literal's value as a machine integer, wrapping
// silently when the digits exceed 64 bits. Signedness and a bare
// decimal's minus sign are ignored: the result is the positive
// magnitude of the digit text.
func (l Literal) Uint64() uint64 {
	var v uint64
	switch l.Base {
	case Binary:
		for i := 0; i < len(l.Digits); i++ {
			v = v<<1 | uint64(l.Digits[i]-'0')
		}
	case Octal:
		for i := 0; i < len(l.Digits); i++ {
			v = v<<3 | uint64(digitVal(l.Digits[i])&7)
		}
	case Hex:
		for i := 0; i < len(l.Digits); i++ {
			v = v<<4 | uint64(digitVal(l.Digits[i]))
		}
	case Decimal, UnsizedDecimal:
		for i := 0; i < len(l.Digits); i++ {
			v = v*10 + uint64(l.Digits[i]-'0')
		}
	}
	return v
}

// Big returns the literal's value as an arbitrary-precision integer,
// ignoring signedness.
func (l Literal) Big() *big.Int {
	v := new(big.Int)
	switch l.Base {
	case Binary:
		v.SetString(l.Digits, 2)
	case Octal:
		// Cannot delegate to SetString: the octal alphabet here
		// includes hex digits, which contribute their low three
		// bits.
		d := new(big.Int)
		for i := 0; i < len(l.Digits); i++ {
			v.Lsh(v, 3)
			v.Or(v, d.SetUint64(uint64(digitVal(l.Digits[i])&7)))
		}
	case Hex:
		v.SetString(l.Digits, 16)
	case Decimal, UnsizedDecimal:
		v.SetString(l.Digits, 10)
	}
	return v
}

// BitWidth returns the number of bits one digit contributes, or 0 for
// decimal bases, which have no per-digit bit field.
func (b Base) BitWidth() int {
	switch b {
	case Binary:
		return 1
	case Octal:
		return 3
	case Hex:
		return 4
	}
	return 0
}

// DigitBits returns the low bits contributed by digit c in base b.
func (b Base) DigitBits(c byte) uint8 {
	switch b {
	case Binary:
		return digitVal(c) & 1
	case Octal:
		return digitVal(c) & 7
	case Hex:
		return digitVal(c)
	}
	return 0
}

func digitVal(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func inAlphabet(s string, b Base) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch b {
		case Binary:
			if c != '0' && c != '1' {
				return false
			}
		case Octal, Hex:
			// Octal deliberately shares the hex alphabet.
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
				return false
			}
		case Decimal, UnsizedDecimal:
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}
