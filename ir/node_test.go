package ir

import (
	"testing"
)

func sample() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("Ada")},
		{Key: "scores", Val: FromSlice([]*Node{
			FromInt(10), FromInt(15),
		})},
		{Key: "active", Val: FromBool(true)},
		{Key: "note", Val: Null()},
	})
}

func TestGet(t *testing.T) {
	y := sample()
	if v := Get(y, "name"); v == nil || v.String != "Ada" {
		t.Errorf("name: got %v", v)
	}
	if v := Get(y, "nope"); v != nil {
		t.Errorf("absent field: got %v", v)
	}
	if v := Get(FromInt(1), "name"); v != nil {
		t.Errorf("get on scalar: got %v", v)
	}
}

func TestAt(t *testing.T) {
	xs := FromSlice([]*Node{FromInt(1), FromInt(2), FromInt(3)})
	for _, tc := range []struct {
		i    int
		want int64
		ok   bool
	}{
		{0, 1, true},
		{2, 3, true},
		{-1, 3, true},
		{-3, 1, true},
		{3, 0, false},
		{-4, 0, false},
	} {
		v, ok := At(xs, tc.i)
		if ok != tc.ok {
			t.Errorf("At(%d): ok=%v, want %v", tc.i, ok, tc.ok)
			continue
		}
		if ok && *v.Int64 != tc.want {
			t.Errorf("At(%d): got %d, want %d", tc.i, *v.Int64, tc.want)
		}
	}
	if _, ok := At(sample(), 0); ok {
		t.Error("At on object must not resolve")
	}
}

func TestFromMapSorts(t *testing.T) {
	y := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
		"m": FromInt(3),
	})
	want := []string{"a", "m", "z"}
	if len(y.Keys) != len(want) {
		t.Fatalf("got %d keys", len(y.Keys))
	}
	for i := range want {
		if y.Keys[i] != want[i] {
			t.Errorf("key %d is %q, want %q", i, y.Keys[i], want[i])
		}
	}
}

func TestFromKeyValsOrder(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
	})
	if y.Keys[0] != "z" || y.Keys[1] != "a" {
		t.Errorf("insertion order lost: %v", y.Keys)
	}
}

func TestToMap(t *testing.T) {
	y := sample()
	m := ToMap(y)
	if len(m) != 4 {
		t.Fatalf("got %d entries", len(m))
	}
	if m["name"] != Get(y, "name") {
		t.Error("map entry is not the original subtree")
	}
	if ToMap(FromInt(1)) != nil {
		t.Error("ToMap on scalar must be nil")
	}
}

func TestEqual(t *testing.T) {
	for _, tc := range []struct {
		a, b *Node
		want bool
	}{
		{sample(), sample(), true},
		{Null(), Null(), true},
		{FromInt(3), FromInt(3), true},
		{FromInt(3), FromFloat(3), true},
		{FromInt(3), FromFloat(3.5), false},
		{FromInt(3), FromString("3"), false},
		{FromBool(true), FromBool(false), false},
		{
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			false,
		},
		{
			// same members, different field order
			FromKeyVals([]KeyVal{{Key: "a", Val: Null()}, {Key: "b", Val: Null()}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: Null()}, {Key: "a", Val: Null()}}),
			false,
		},
		{sample(), nil, false},
		{nil, nil, true},
	} {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestClone(t *testing.T) {
	y := sample()
	c := y.Clone()
	if !Equal(y, c) {
		t.Fatal("clone not equal")
	}
	if c == y || Get(c, "scores") == Get(y, "scores") {
		t.Error("clone shares structure with the original")
	}
	c.Values[0].String = "Eva"
	if Get(y, "name").String != "Ada" {
		t.Error("mutating the clone reached the original")
	}
}

func TestVisit(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromSlice([]*Node{FromInt(2), FromInt(3)})},
	})
	var pre, post int
	err := y.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, a, b, and b's two elements
	if pre != 5 || post != 5 {
		t.Errorf("visited pre=%d post=%d, want 5/5", pre, post)
	}

	// dive=false stops descent
	pre = 0
	y.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return false, nil
	})
	if pre != 1 {
		t.Errorf("no-dive visited %d, want 1", pre)
	}
}

func TestKey(t *testing.T) {
	for _, tc := range []struct {
		in   *Node
		want string
	}{
		{Null(), "null"},
		{FromBool(true), "true"},
		{FromBool(false), "false"},
		{FromInt(-7), "-7"},
		{FromFloat(2.5), "2.5"},
		{FromString("x"), "x"},
		{FromSlice([]*Node{FromInt(1), FromInt(2)}), "[1,2]"},
		{
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			"{a:1}",
		},
	} {
		if got := tc.in.Key(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}
