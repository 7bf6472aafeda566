package memtable

import (
	"math"
	"testing"
)

func TestFloat16Bits(t *testing.T) {
	tests := []struct {
		in   float64
		want uint16
	}{
		{0, 0x0000},
		{1.0, 0x3C00},
		{-1.0, 0xBC00},
		{2.5, 0x4100},
		{65504, 0x7BFF},     // largest finite half
		{1e10, 0x7C00},      // overflow to +inf
		{-1e10, 0xFC00},     // overflow to -inf
		{math.Inf(1), 0x7C00},
		{0x1p-24, 0x0001},   // smallest subnormal
		{1e-12, 0x0000},     // underflow to zero
	}
	for _, tt := range tests {
		if got := float16Bits(tt.in); got != tt.want {
			t.Errorf("float16Bits(%g) = %#04x, want %#04x", tt.in, got, tt.want)
		}
	}
	if got := float16Bits(math.NaN()); got&0x7C00 != 0x7C00 || got&0x03FF == 0 {
		t.Errorf("float16Bits(NaN) = %#04x, not a NaN pattern", got)
	}
}

func TestBfloat16Bits(t *testing.T) {
	tests := []struct {
		in   float64
		want uint16
	}{
		{0, 0x0000},
		{1.0, 0x3F80},
		{1.5, 0x3FC0},
		{-2.0, 0xC000},
		{math.Inf(1), 0x7F80},
	}
	for _, tt := range tests {
		if got := bfloat16Bits(tt.in); got != tt.want {
			t.Errorf("bfloat16Bits(%g) = %#04x, want %#04x", tt.in, got, tt.want)
		}
	}

	// Ties round to even: 1 + 2^-8 sits exactly between two bfloat values
	// and the even mantissa wins.
	if got := bfloat16Bits(1.00390625); got != 0x3F80 {
		t.Errorf("bfloat16Bits(1.00390625) = %#04x, want 0x3f80", got)
	}
}

func TestMaskToWidth(t *testing.T) {
	tests := []struct {
		value uint64
		bits  uint32
		want  uint64
	}{
		{0x1FF, 8, 0xFF},
		{^uint64(0), 1, 1},
		{^uint64(0), 32, 0xFFFFFFFF},
		{^uint64(0), 64, ^uint64(0)},
		{^uint64(0), 128, ^uint64(0)},
	}
	for _, tt := range tests {
		if got := maskToWidth(tt.value, tt.bits); got != tt.want {
			t.Errorf("maskToWidth(%#x, %d) = %#x, want %#x", tt.value, tt.bits, got, tt.want)
		}
	}
}
