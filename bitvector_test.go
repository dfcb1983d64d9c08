package verilog

import (
	"testing"
)

func TestBitVectorBasics(t *testing.T) {
	v := NewBitVector(70)
	if v.Width() != 70 {
		t.Fatalf("Width() = %d", v.Width())
	}
	for _, i := range []int{0, 1, 63, 64, 69} {
		v.SetBit(i, true)
		if !v.Bit(i) {
			t.Errorf("Bit(%d) = false after SetBit", i)
		}
	}
	v.SetBit(63, false)
	if v.Bit(63) {
		t.Error("Bit(63) = true after clear")
	}

	// Out-of-range writes are discarded, reads are zero.
	v.SetBit(70, true)
	v.SetBit(-1, true)
	if v.Bit(70) || v.Bit(-1) {
		t.Error("out-of-range bit reads as set")
	}
}

func TestBitVectorValues(t *testing.T) {
	v := NewBitVector(8)
	for _, i := range []int{0, 2, 5, 7} {
		v.SetBit(i, true)
	}
	if v.Uint64() != 0xa5 {
		t.Errorf("Uint64() = %#x, want 0xa5", v.Uint64())
	}
	if got := v.String(); got != "10100101" {
		t.Errorf("String() = %q", got)
	}
	if v.BigInt().Uint64() != 0xa5 {
		t.Errorf("BigInt() = %s", v.BigInt())
	}

	wide := NewBitVector(100)
	wide.SetBit(99, true)
	bi := wide.BigInt()
	if bi.BitLen() != 100 {
		t.Errorf("BigInt().BitLen() = %d, want 100", bi.BitLen())
	}
	if bi.Bit(99) != 1 {
		t.Error("BigInt() missing bit 99")
	}

	empty := NewBitVector(0)
	if empty.Uint64() != 0 || empty.String() != "" {
		t.Errorf("zero-width vector: %d, %q", empty.Uint64(), empty.String())
	}
}
