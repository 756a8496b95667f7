package ir

import "testing"

func TestTypeTextRoundTrip(t *testing.T) {
	for _, tt := range Types() {
		d, err := tt.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != tt {
			t.Errorf("%s: round-tripped to %s", tt, back)
		}
	}
	var tt Type
	if err := tt.UnmarshalText([]byte("Nope")); err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestIsLeaf(t *testing.T) {
	for _, tt := range Types() {
		leaf := tt != ObjectType && tt != ArrayType
		if tt.IsLeaf() != leaf {
			t.Errorf("%s: IsLeaf=%v", tt, tt.IsLeaf())
		}
	}
}

func TestTruth(t *testing.T) {
	for _, tc := range []struct {
		in   *Node
		want bool
	}{
		{Null(), false},
		{FromBool(true), true},
		{FromBool(false), false},
		{FromInt(0), false},
		{FromInt(1), true},
		{FromFloat(0), false},
		{FromFloat(0.1), true},
		{FromString(""), false},
		{FromString("x"), true},
		{FromSlice(nil), false},
		{FromSlice([]*Node{Null()}), true},
		{FromKeyVals(nil), false},
		{FromKeyVals([]KeyVal{{Key: "a", Val: Null()}}), true},
	} {
		if got := Truth(tc.in); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.in.Key(), got, tc.want)
		}
	}
}
