package irtypes

import "testing"

func TestKindRoundTrip(t *testing.T) {
	for _, k := range allKinds {
		got := KindByValue(uint32(k))
		if got != k {
			t.Errorf("KindByValue(%d) = %v, want %v", uint32(k), got, k)
		}
	}
}

func TestKindValuesAreWireStable(t *testing.T) {
	// The raw values are the collaborator's wire encoding. If one of these
	// fails, the enumeration was reordered.
	wire := map[Kind]uint32{
		KindVoid:           0,
		KindHalf:           1,
		KindFloat:          2,
		KindDouble:         3,
		KindX86FP80:        4,
		KindFP128:          5,
		KindPPCFP128:       6,
		KindLabel:          7,
		KindInteger:        8,
		KindFunction:       9,
		KindStruct:         10,
		KindArray:          11,
		KindPointer:        12,
		KindVector:         13,
		KindMetadata:       14,
		KindX86MMX:         15,
		KindToken:          16,
		KindScalableVector: 17,
		KindBFloat:         18,
		KindX86AMX:         19,
	}
	if len(wire) != kindCount {
		t.Fatalf("wire table covers %d kinds, want %d", len(wire), kindCount)
	}
	for k, raw := range wire {
		if uint32(k) != raw {
			t.Errorf("kind %v has value %d, want %d", k, uint32(k), raw)
		}
	}
}

func TestKindByValueUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("KindByValue(%d) did not panic", kindCount)
		}
	}()
	KindByValue(kindCount)
}

func TestKindIsFloat(t *testing.T) {
	floats := map[Kind]bool{
		KindHalf: true, KindFloat: true, KindDouble: true, KindX86FP80: true,
		KindFP128: true, KindPPCFP128: true, KindBFloat: true, KindX86AMX: true,
	}
	for _, k := range allKinds {
		if got := k.IsFloat(); got != floats[k] {
			t.Errorf("%v.IsFloat() = %v, want %v", k, got, floats[k])
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindVoid, "void"},
		{KindInteger, "integer"},
		{KindScalableVector, "scalable_vector"},
		{KindX86AMX, "x86_amx"},
		{Kind(99), "kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint32(tt.kind), got, tt.want)
		}
	}
}
