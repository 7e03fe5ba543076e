package ddm_test

import (
	"reflect"
	"testing"

	"github.com/arthur-debert/ddm/ddm"
)

func TestSortByKey(t *testing.T) {
	d := ddm.FromPairs([]ddm.Entry{
		{Key: "zebra", Value: 1},
		{Key: "apple", Value: 2},
		{Key: "mango", Value: 3},
	})
	sorted := d.SortByKey()
	if got, want := sorted.Keys(), []string{"apple", "mango", "zebra"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortByKey keys = %v, want %v", got, want)
	}
	// Original untouched.
	if d.Keys()[0] != "zebra" {
		t.Error("SortByKey must not reorder the original")
	}
}

func TestSortByValue(t *testing.T) {
	t.Run("NumbersBeforeStringsBeforeBools", func(t *testing.T) {
		d := ddm.FromPairs([]ddm.Entry{
			{Key: "flag", Value: true},
			{Key: "word", Value: "banana"},
			{Key: "big", Value: 100},
			{Key: "small", Value: 2},
			{Key: "early", Value: "apple"},
		})
		sorted := d.SortByValue()
		want := []string{"small", "big", "early", "word", "flag"}
		if got := sorted.Keys(); !reflect.DeepEqual(got, want) {
			t.Errorf("SortByValue keys = %v, want %v", got, want)
		}
	})

	t.Run("MixedNumericTypesCompareNumerically", func(t *testing.T) {
		d := ddm.FromPairs([]ddm.Entry{
			{Key: "f", Value: 2.5},
			{Key: "i", Value: 2},
			{Key: "j", Value: 3},
		})
		want := []string{"i", "f", "j"}
		if got := d.SortByValue().Keys(); !reflect.DeepEqual(got, want) {
			t.Errorf("SortByValue keys = %v, want %v", got, want)
		}
	})

	t.Run("TiesBreakByKey", func(t *testing.T) {
		d := ddm.FromPairs([]ddm.Entry{
			{Key: "b", Value: 1},
			{Key: "a", Value: 1},
		})
		want := []string{"a", "b"}
		if got := d.SortByValue().Keys(); !reflect.DeepEqual(got, want) {
			t.Errorf("SortByValue keys = %v, want %v", got, want)
		}
	})

	t.Run("ContainersSortAfterScalarsByKindName", func(t *testing.T) {
		d := ddm.FromPairs([]ddm.Entry{
			{Key: "seq", Value: []any{1}},
			{Key: "num", Value: 1},
			{Key: "doc", Value: map[string]any{"x": 1}},
		})
		got := d.SortByValue().Keys()
		if got[0] != "num" {
			t.Errorf("expected the number first, got %v", got)
		}
		// document < sequence lexically by kind name
		if got[1] != "doc" || got[2] != "seq" {
			t.Errorf("expected kind-name order doc then seq, got %v", got)
		}
	})
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b any
		want int
	}{
		{"NumbersNumeric", 2, 10, -1},
		{"IntAgainstFloat", int32(3), 3.0, 0},
		{"NumberBeforeString", 99, "a", -1},
		{"StringBeforeBool", "z", false, -1},
		{"BoolOrder", false, true, -1},
		{"EqualStrings", "x", "x", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ddm.Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if tc.want != 0 {
				if got := ddm.Compare(tc.b, tc.a); got != -tc.want {
					t.Errorf("Compare(%v, %v) = %d, want %d", tc.b, tc.a, got, -tc.want)
				}
			}
		})
	}
}
