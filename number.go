package verilog

import (
	"math/big"

	"github.com/hdlkit/verilog/internal/numlex"
)

// Base identifies the digit alphabet of a numeric literal.
type Base uint8

const (
	BaseBinary  Base = iota // 'b
	BaseOctal               // 'o
	BaseHex                 // 'h
	BaseDecimal             // 'd or bare digits after the quote
	// BaseUnsizedDecimal is a bare integer with no quote, e.g. "42".
	BaseUnsizedDecimal
)

// String returns a short name for the base.
func (b Base) String() string {
	switch b {
	case BaseBinary:
		return "binary"
	case BaseOctal:
		return "octal"
	case BaseHex:
		return "hex"
	case BaseDecimal:
		return "decimal"
	case BaseUnsizedDecimal:
		return "unsized-decimal"
	}
	return "unknown"
}

// Number is a parsed Verilog numeric literal. The digit text is kept
// verbatim and the value projections (Value, BigInt, BitVector) are
// derived on demand, so all three always agree on their shared
// low-order bits.
type Number struct {
	lit      numlex.Literal
	width    int
	hasWidth bool
}

// ParseNumber parses a Verilog numeric literal such as "32'sh1b",
// "4'b111", or a bare decimal integer. Underscores and spaces are
// insignificant. It reports false when lit is not a recognizable
// literal.
//
// The octal form accepts the full hex digit alphabet; digits beyond 7
// contribute only their low three bits, matching long-standing Verilog
// tool behavior.
func ParseNumber(lit string) (*Number, bool) {
	l, ok := numlex.Scan(lit)
	if !ok {
		return nil, false
	}
	n := &Number{lit: l}
	n.width, n.hasWidth = l.Width()
	return n, true
}

// Width returns the declared width in bits, if the literal carried one.
func (n *Number) Width() (int, bool) {
	return n.width, n.hasWidth
}

// Signed reports whether the literal carried an 's' after the quote.
func (n *Number) Signed() bool {
	return n.lit.Signed
}

// Base returns the literal's base.
func (n *Number) Base() Base {
	switch n.lit.Base {
	case numlex.Binary:
		return BaseBinary
	case numlex.Octal:
		return BaseOctal
	case numlex.Hex:
		return BaseHex
	case numlex.Decimal:
		return BaseDecimal
	}
	return BaseUnsizedDecimal
}

// Value returns the literal's value as a machine integer, ignoring
// signedness (the positive magnitude of the digit text). Values wider
// than 64 bits wrap silently; use BigInt for full precision.
func (n *Number) Value() int64 {
	return int64(n.lit.Uint64())
}

// BigInt returns the literal's value as an arbitrary-precision
// integer, ignoring signedness. The result is newly allocated on each
// call.
func (n *Number) BigInt() *big.Int {
	return n.lit.Big()
}

// BitVector returns the literal's value as a bit vector of the
// declared width, or 32 bits when the literal is unsized. Bits beyond
// the declared width are discarded silently.
func (n *Number) BitVector() *BitVector {
	w := 32
	if n.hasWidth {
		w = n.width
	}
	v := NewBitVector(w)
	switch n.lit.Base {
	case numlex.Binary, numlex.Octal, numlex.Hex:
		per := n.lit.Base.BitWidth()
		d := n.lit.Digits
		for i := 0; i < len(d); i++ {
			bits := n.lit.Base.DigitBits(d[len(d)-1-i])
			for b := 0; b < per; b++ {
				if bits>>b&1 == 1 {
					v.SetBit(i*per+b, true)
				}
			}
		}
	default:
		bi := n.lit.Big()
		for i := 0; i < w; i++ {
			if bi.Bit(i) == 1 {
				v.SetBit(i, true)
			}
		}
	}
	return v
}

// NumberBits returns the width digits preceding the quote of a sized
// literal. It reports false when the literal has no quote or no width
// digits; the rest of the literal need not be well formed, so
// NumberBits("32'zq") still returns 32.
func NumberBits(lit string) (int, bool) {
	return numlex.Bits(lit)
}

// NumberSigned reports whether the literal's quote is followed by 's'
// or 'S'.
func NumberSigned(lit string) bool {
	return numlex.IsSigned(lit)
}

// NumberValue parses lit and returns its value as a machine integer,
// ignoring signedness. A bare decimal may carry a leading '-', whose
// magnitude is returned. It reports false for unrecognizable literals.
func NumberValue(lit string) (int64, bool) {
	n, ok := ParseNumber(lit)
	if !ok {
		return 0, false
	}
	return n.Value(), true
}

// NumberBigInt parses lit and returns its value as an
// arbitrary-precision integer. Unlike NumberValue it does not accept
// the bare negative form. It reports false for unrecognizable
// literals.
func NumberBigInt(lit string) (*big.Int, bool) {
	n, ok := ParseNumber(lit)
	if !ok || n.lit.Negated {
		return nil, false
	}
	return n.BigInt(), true
}

// NumberBitVector parses lit and returns its value as a bit vector of
// the declared width, or 32 bits when unsized. Unlike NumberValue it
// does not accept the bare negative form. It reports false for
// unrecognizable literals.
func NumberBitVector(lit string) (*BitVector, bool) {
	n, ok := ParseNumber(lit)
	if !ok || n.lit.Negated {
		return nil, false
	}
	return n.BitVector(), true
}
