package ddm_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/ddm/ddm"
	"github.com/arthur-debert/ddm/testutil"
)

func TestConstruction(t *testing.T) {
	t.Run("FromMapWrapsNestedMaps", func(t *testing.T) {
		d := ddm.FromMap(map[string]any{
			"user": map[string]any{
				"address": map[string]any{"city": "NY"},
			},
		})
		v, ok := d.Get("user")
		if !ok {
			t.Fatal("expected user key")
		}
		nested, ok := v.(*ddm.Document)
		if !ok {
			t.Fatalf("expected nested value to be a Document, got %T", v)
		}
		if !nested.Has("address") {
			t.Error("expected nested document to keep its keys")
		}
	})

	t.Run("FromMapSortsKeysLexically", func(t *testing.T) {
		d := ddm.FromMap(map[string]any{"b": 2, "a": 1, "c": 3})
		got := d.Keys()
		want := []string{"a", "b", "c"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("keys = %v, want %v", got, want)
			}
		}
	})

	t.Run("FromPairsPreservesOrder", func(t *testing.T) {
		d := ddm.FromPairs([]ddm.Entry{
			{Key: "z", Value: 1},
			{Key: "a", Value: 2},
			{Key: "m", Value: 3},
		})
		got := d.Keys()
		want := []string{"z", "a", "m"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("keys = %v, want %v", got, want)
			}
		}
	})

	t.Run("SequenceElementsAreWrapped", func(t *testing.T) {
		d := ddm.FromMap(map[string]any{
			"children": []any{map[string]any{"name": "Bob"}},
		})
		v, _ := d.Get("children")
		seq, ok := v.([]any)
		if !ok {
			t.Fatalf("expected sequence, got %T", v)
		}
		if _, ok := seq[0].(*ddm.Document); !ok {
			t.Errorf("expected mapping element to be wrapped, got %T", seq[0])
		}
	})
}

func TestBasicAccess(t *testing.T) {
	u := testutil.LoadUniverse(t)

	t.Run("GetOr", func(t *testing.T) {
		if got := u.Flat.GetOr("a", 0); got != 1 {
			t.Errorf("GetOr(a) = %v, want 1", got)
		}
		if got := u.Flat.GetOr("missing", "fallback"); got != "fallback" {
			t.Errorf("GetOr(missing) = %v, want fallback", got)
		}
	})

	t.Run("GetStrict", func(t *testing.T) {
		if _, err := u.Flat.GetStrict("a"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		_, err := u.Flat.GetStrict("missing")
		if !errors.Is(err, ddm.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("SetKeepsPositionOfExistingKey", func(t *testing.T) {
		d := u.Flat.Clone()
		if err := d.Set("a", 99); err != nil {
			t.Fatal(err)
		}
		if d.Keys()[0] != "a" {
			t.Errorf("expected a to keep first position, keys = %v", d.Keys())
		}
		if got := d.GetOr("a", nil); got != 99 {
			t.Errorf("a = %v, want 99", got)
		}
	})

	t.Run("DeleteAbsentIsNoOp", func(t *testing.T) {
		d := u.Flat.Clone()
		if d.Delete("missing") {
			t.Error("expected Delete of absent key to report false")
		}
		if d.Len() != u.Flat.Len() {
			t.Error("expected document unchanged")
		}
	})

	t.Run("DeleteRemovesKeyAndOrder", func(t *testing.T) {
		d := u.Flat.Clone()
		if !d.Delete("b") {
			t.Fatal("expected b to be deleted")
		}
		for _, k := range d.Keys() {
			if k == "b" {
				t.Error("b still present in key order")
			}
		}
	})
}

func TestClone(t *testing.T) {
	u := testutil.LoadUniverse(t)

	t.Run("CloneEqualsOriginal", func(t *testing.T) {
		clone := u.Person.Clone()
		if !clone.Equal(u.Person) {
			t.Error("clone should equal the original by value")
		}
	})

	t.Run("MutatingCloneLeavesOriginal", func(t *testing.T) {
		clone := u.Person.Clone()
		if err := clone.SetPath("address.city", "LA"); err != nil {
			t.Fatal(err)
		}
		if got := u.Person.GetPathOr("address.city", ""); got != "NY" {
			t.Errorf("original city = %v, want NY", got)
		}
	})

	t.Run("SequencesAreNotShared", func(t *testing.T) {
		clone := u.Person.Clone()
		v, _ := clone.Get("tags")
		v.([]any)[0] = "mutated"
		orig, _ := u.Person.Get("tags")
		if orig.([]any)[0] != "admin" {
			t.Error("mutating a cloned sequence leaked into the original")
		}
	})
}

func TestFilterAndSearch(t *testing.T) {
	u := testutil.LoadUniverse(t)

	t.Run("FilterKeys", func(t *testing.T) {
		d := u.Flat.FilterKeys([]string{"a", "nope"})
		if !d.Has("a") || d.Has("b") {
			t.Errorf("FilterKeys kept wrong keys: %v", d.Keys())
		}
		if d.Len() != 1 {
			t.Errorf("len = %d, want 1", d.Len())
		}
	})

	t.Run("ExcludeKeys", func(t *testing.T) {
		d := u.Flat.ExcludeKeys([]string{"b"})
		if d.Has("b") || !d.Has("a") || !d.Has("c") {
			t.Errorf("ExcludeKeys kept wrong keys: %v", d.Keys())
		}
	})

	t.Run("SearchIsCaseInsensitive", func(t *testing.T) {
		keys := u.Person.Search("ALICE")
		if len(keys) != 1 || keys[0] != "name" {
			t.Errorf("Search(ALICE) = %v, want [name]", keys)
		}
	})

	t.Run("SearchReachesNestedValues", func(t *testing.T) {
		keys := u.Person.Search("10001")
		if len(keys) != 1 || keys[0] != "address" {
			t.Errorf("Search(10001) = %v, want [address]", keys)
		}
	})

	t.Run("FindByKind", func(t *testing.T) {
		docs := u.Person.FindByKind(ddm.KindDocument)
		if docs.Len() != 1 || !docs.Has("address") {
			t.Errorf("FindByKind(document) = %v", docs.Keys())
		}
		seqs := u.Person.FindByKind(ddm.KindSequence)
		if seqs.Len() != 2 {
			t.Errorf("FindByKind(sequence) = %v, want tags and scores", seqs.Keys())
		}
	})

	t.Run("Kinds", func(t *testing.T) {
		kinds := u.Person.Kinds()
		want := map[string]ddm.Kind{
			"name":    ddm.KindString,
			"age":     ddm.KindNumber,
			"active":  ddm.KindBool,
			"address": ddm.KindDocument,
			"tags":    ddm.KindSequence,
			"note":    ddm.KindNull,
		}
		for k, kind := range want {
			if kinds[k] != kind {
				t.Errorf("kind of %s = %v, want %v", k, kinds[k], kind)
			}
		}
	})
}

func TestUpdate(t *testing.T) {
	u := testutil.LoadUniverse(t)

	t.Run("AssignsAndWraps", func(t *testing.T) {
		d := u.Flat.Clone()
		err := d.Update(map[string]any{
			"a":   10,
			"new": map[string]any{"x": 1},
		})
		if err != nil {
			t.Fatal(err)
		}
		if got := d.GetOr("a", nil); got != 10 {
			t.Errorf("a = %v, want 10", got)
		}
		if _, ok := d.GetOr("new", nil).(*ddm.Document); !ok {
			t.Error("expected map value to be wrapped as Document")
		}
	})

	t.Run("RejectsSelfContainment", func(t *testing.T) {
		d := u.Flat.Clone()
		err := d.Update(map[string]any{"self": d})
		if !errors.Is(err, ddm.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if d.Has("self") {
			t.Error("failed Update must leave the document unchanged")
		}
	})
}

func TestCycleRejection(t *testing.T) {
	t.Run("DirectSelfAssignment", func(t *testing.T) {
		d := ddm.New()
		if err := d.Set("self", d); !errors.Is(err, ddm.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("SelfInsideRawMap", func(t *testing.T) {
		d := ddm.New()
		err := d.Set("m", map[string]any{"inner": d})
		if !errors.Is(err, ddm.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("SelfInsideSequence", func(t *testing.T) {
		d := ddm.New()
		if err := d.Set("list", []any{d}); !errors.Is(err, ddm.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("NestedDocumentIntoItsOwnSubtree", func(t *testing.T) {
		d := ddm.New()
		if err := d.SetPath("a.b", 1); err != nil {
			t.Fatal(err)
		}
		inner, _ := d.Get("a")
		err := d.SetPath("a.loop", inner)
		if !errors.Is(err, ddm.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestEqual(t *testing.T) {
	u := testutil.LoadUniverse(t)

	t.Run("NumericValuesCompareByMagnitude", func(t *testing.T) {
		a := ddm.FromMap(map[string]any{"n": 1})
		b := ddm.FromMap(map[string]any{"n": 1.0})
		if !a.Equal(b) {
			t.Error("int 1 and float64 1 should be equal")
		}
	})

	t.Run("OrderMatters", func(t *testing.T) {
		a := ddm.FromPairs([]ddm.Entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}})
		b := ddm.FromPairs([]ddm.Entry{{Key: "b", Value: 2}, {Key: "a", Value: 1}})
		if a.Equal(b) {
			t.Error("documents with different key order should not be equal")
		}
	})

	t.Run("NilOtherIsNotEqual", func(t *testing.T) {
		if u.Flat.Equal(nil) {
			t.Error("a document should not equal nil")
		}
	})
}
