package verilog

import (
	"math/big"
	"testing"
)

func TestNumberBits(t *testing.T) {
	tests := []struct {
		input string
		width int
		found bool
	}{
		{"32'h1b", 32, true},
		{"4'b111", 4, true},
		{"12'o17", 12, true},
		{"1'sh1", 1, true},
		{"32 'h 1b", 32, true},
		{"3_2'h1b", 32, true},
		{"32'zq", 32, true}, // width stands alone: the rest may be junk
		{"42", 0, false},
		{"'h1b", 0, false}, // quote but no width digits
		{"x'h1b", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, ok := NumberBits(tt.input)
			if ok != tt.found {
				t.Fatalf("NumberBits(%q): found=%v, want %v", tt.input, ok, tt.found)
			}
			if ok && w != tt.width {
				t.Errorf("NumberBits(%q) = %d, want %d", tt.input, w, tt.width)
			}
		})
	}
}

func TestNumberSigned(t *testing.T) {
	tests := []struct {
		input  string
		signed bool
	}{
		{"1'sh1", true},
		{"32'sh1b", true},
		{"32'Sh1b", true},
		{"'sh1", true}, // width optional
		{"32 's h1", true},
		{"32'h1b", false},
		{"4'b111", false},
		{"42", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := NumberSigned(tt.input); got != tt.signed {
			t.Errorf("NumberSigned(%q) = %v, want %v", tt.input, got, tt.signed)
		}
	}
}

func TestNumberValue(t *testing.T) {
	tests := []struct {
		input string
		value int64
		found bool
	}{
		{"4'b111", 7, true},
		{"32'hfeed", 65261, true},
		{"32'h1b", 27, true},
		{"32'sh1b", 27, true},
		{"12'o17", 15, true},
		{"8'd255", 255, true},
		{"'d42", 42, true},
		{"'42", 42, true},
		{"42", 42, true},
		{"-42", 42, true}, // positive magnitude
		{"32'hFEED", 65261, true},
		{"16'hdead", 57005, true},
		{"8'b0000_0011", 3, true},
		{"32 'h 1b", 27, true},
		{"1'b11", 3, true},  // width overflow is not validated
		{"12'o19", 9, true}, // octal accepts hex digits: 1*8 + (9&7)
		{"12'o1f", 15, true},
		{"'o17", 15, true},
		{"4'B101", 5, true},
		{"4'O7", 7, true},
		{"4'H a", 10, true},
		{"", 0, false},
		{"wire", 0, false},
		{"32'", 0, false},
		{"32'b", 0, false},
		{"4'b121", 0, false},
		{"8'dff", 0, false},
		{"8'hxz", 0, false},
		{"1.5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := NumberValue(tt.input)
			if ok != tt.found {
				t.Fatalf("NumberValue(%q): found=%v, want %v", tt.input, ok, tt.found)
			}
			if ok && v != tt.value {
				t.Errorf("NumberValue(%q) = %d, want %d", tt.input, v, tt.value)
			}
		})
	}
}

func TestNumberBigInt(t *testing.T) {
	tests := []struct {
		input string
		value string // decimal
		found bool
	}{
		{"4'b111", "7", true},
		{"32'hfeed", "65261", true},
		{"12'o17", "15", true},
		{"'d0042", "42", true}, // leading zeros stripped
		{"42", "42", true},
		{"-42", "", false}, // bare negative rejected
		{"128'hffffffffffffffffffffffffffffffff", "340282366920938463463374607431768211455", true},
		{"", "", false},
		{"zz", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := NumberBigInt(tt.input)
			if ok != tt.found {
				t.Fatalf("NumberBigInt(%q): found=%v, want %v", tt.input, ok, tt.found)
			}
			if !ok {
				return
			}
			want, _ := new(big.Int).SetString(tt.value, 10)
			if v.Cmp(want) != 0 {
				t.Errorf("NumberBigInt(%q) = %s, want %s", tt.input, v, tt.value)
			}
		})
	}
}

func TestNumberBitVector(t *testing.T) {
	tests := []struct {
		input string
		width int
		bits  string // MSB-first
	}{
		{"4'b111", 4, "0111"},
		{"4'b1010", 4, "1010"},
		{"8'hA5", 8, "10100101"},
		{"6'o17", 6, "001111"},
		{"1'b11", 1, "1"},      // clipped to declared width
		{"2'hff", 2, "11"},     // clipped
		{"6'o19", 6, "001001"}, // hex digit in octal: low three bits
		{"8'd5", 8, "00000101"},
		{"3'd9", 3, "001"}, // decimal clipped too
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := NumberBitVector(tt.input)
			if !ok {
				t.Fatalf("NumberBitVector(%q): not recognized", tt.input)
			}
			if v.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", v.Width(), tt.width)
			}
			if got := v.String(); got != tt.bits {
				t.Errorf("NumberBitVector(%q) = %s, want %s", tt.input, got, tt.bits)
			}
		})
	}

	// Unsized literals default to 32 bits.
	v, ok := NumberBitVector("'hffffffff")
	if !ok || v.Width() != 32 {
		t.Fatalf("unsized vector: ok=%v width=%d", ok, v.Width())
	}
	if v.Uint64() != 0xffffffff {
		t.Errorf("Uint64() = %#x", v.Uint64())
	}
	if _, ok := NumberBitVector("-42"); ok {
		t.Error("NumberBitVector(-42): bare negative accepted")
	}
}

// The three value forms agree on their shared low-order bits.
func TestNumberProjectionsAgree(t *testing.T) {
	inputs := []string{
		"4'b111", "32'hfeed", "12'o17", "12'o19", "8'd255", "'d42",
		"16'hdead", "64'hffffffffffffffff", "96'hdeadbeefdeadbeefdeadbeef",
		"7'o123", "200'd99999999999999999999999999",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			n, ok := ParseNumber(input)
			if !ok {
				t.Fatalf("ParseNumber(%q): not recognized", input)
			}
			bi := n.BigInt()
			vec := n.BitVector()

			// Machine value vs bigint, low 64 bits.
			low := new(big.Int).And(bi, new(big.Int).SetUint64(^uint64(0)))
			if uint64(n.Value()) != low.Uint64() {
				t.Errorf("Value() = %#x, BigInt low64 = %#x", uint64(n.Value()), low.Uint64())
			}

			// Vector vs bigint, up to the vector's width.
			for i := 0; i < vec.Width(); i++ {
				if vec.Bit(i) != (bi.Bit(i) == 1) {
					t.Errorf("bit %d: vector %v, bigint %v", i, vec.Bit(i), bi.Bit(i) == 1)
				}
			}
		})
	}
}

func TestParseNumberFields(t *testing.T) {
	n, ok := ParseNumber("32'sh1b")
	if !ok {
		t.Fatal("ParseNumber(32'sh1b): not recognized")
	}
	if w, sized := n.Width(); !sized || w != 32 {
		t.Errorf("Width() = %d, %v", w, sized)
	}
	if !n.Signed() {
		t.Error("Signed() = false")
	}
	if n.Base() != BaseHex {
		t.Errorf("Base() = %v", n.Base())
	}

	n, ok = ParseNumber("42")
	if !ok {
		t.Fatal("ParseNumber(42): not recognized")
	}
	if _, sized := n.Width(); sized {
		t.Error("bare decimal reports a width")
	}
	if n.Base() != BaseUnsizedDecimal {
		t.Errorf("Base() = %v", n.Base())
	}
}

func FuzzParseNumber(f *testing.F) {
	seeds := []string{
		"32'sh1b", "4'b111", "12'o17", "12'o19", "'d42", "42", "-42",
		"8'b0000_0011", "32 'h 1b", "1'b11", "", "'", "32'", "x'h1",
		"128'hffffffffffffffffffffffffffffffff", "4'B101", "'sh1",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, lit string) {
		n, ok := ParseNumber(lit)
		if !ok {
			return
		}
		if w, sized := n.Width(); sized && w > 1<<16 {
			t.Skip("declared width too large to allocate")
		}
		// Projections must not panic and must agree on low bits.
		bi := n.BigInt()
		vec := n.BitVector()
		for i := 0; i < vec.Width() && i < 64; i++ {
			if vec.Bit(i) != (bi.Bit(i) == 1) {
				t.Errorf("ParseNumber(%q): bit %d disagrees", lit, i)
			}
		}
		// Width and signedness match the dedicated accessors.
		if w, sized := n.Width(); sized {
			if got, ok2 := NumberBits(lit); !ok2 || got != w {
				t.Errorf("ParseNumber(%q): Width %d but NumberBits %d, %v", lit, w, got, ok2)
			}
		}
		if n.Signed() != NumberSigned(lit) {
			t.Errorf("ParseNumber(%q): Signed %v but NumberSigned %v", lit, n.Signed(), NumberSigned(lit))
		}
	})
}
