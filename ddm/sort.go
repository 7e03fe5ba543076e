package ddm

import "sort"

// SortByKey returns a new Document with entries reordered by key in lexical
// order.
func (d *Document) SortByKey() *Document {
	keys := d.Keys()
	sort.Strings(keys)
	out := New()
	for _, k := range keys {
		out.setWrapped(k, cloneValue(d.values[k]))
	}
	return out
}

// SortByValue returns a new Document with entries reordered by value using
// a total order over mixed kinds: numbers first in numeric order, then
// strings lexically, then bools (false before true), then remaining kinds
// by kind name. Entries that compare equal keep their key order, making the
// sort stable and deterministic.
func (d *Document) SortByValue() *Document {
	keys := d.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		c := compareValues(d.values[keys[i]], d.values[keys[j]])
		if c != 0 {
			return c < 0
		}
		return keys[i] < keys[j]
	})
	out := New()
	for _, k := range keys {
		out.setWrapped(k, cloneValue(d.values[k]))
	}
	return out
}

// Compare orders two document values by the mixed-kind total order
// SortByValue uses, returning -1, 0 or 1.
func Compare(a, b any) int {
	return compareValues(a, b)
}

// valueRank buckets kinds for the mixed-type total order.
func valueRank(v any) int {
	if _, ok := toFloat(v); ok {
		return 0
	}
	switch v.(type) {
	case string:
		return 1
	case bool:
		return 2
	}
	return 3
}

// compareValues defines the total order used by SortByValue: -1, 0 or 1.
func compareValues(a, b any) int {
	ra, rb := valueRank(a), valueRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch ra {
	case 0:
		af, _ := toFloat(a)
		bf, _ := toFloat(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	case 1:
		as, bs := a.(string), b.(string)
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		}
		return 0
	case 2:
		ab, bb := a.(bool), b.(bool)
		switch {
		case !ab && bb:
			return -1
		case ab && !bb:
			return 1
		}
		return 0
	}
	// Sequences, documents and nulls tie within their bucket; the stable
	// key tiebreak in SortByValue keeps the order deterministic.
	an, bn := KindOf(a).String(), KindOf(b).String()
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	}
	return 0
}
