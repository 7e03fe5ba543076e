package ddm

// ValueChange records a leaf whose value differs between two documents.
type ValueChange struct {
	Path  string // dotted path to the differing leaf
	Left  any    // value in the receiver
	Right any    // value in the other document
}

// DiffReport describes how two documents differ, by dotted leaf path.
type DiffReport struct {
	OnlyInLeft  []string      // paths present only in the receiver
	OnlyInRight []string      // paths present only in the other document
	Changed     []ValueChange // paths present in both with differing values
}

// Empty reports whether the diff found no differences.
func (r *DiffReport) Empty() bool {
	return len(r.OnlyInLeft) == 0 && len(r.OnlyInRight) == 0 && len(r.Changed) == 0
}

// Diff compares two documents and reports keys only in the receiver, keys
// only in other, and keys in both with differing values. When both sides
// hold nested Documents the comparison recurses, reporting leaf-level
// differences under dotted paths rather than a whole-subtree replacement.
// Paths follow the receiver's key order, then other's for its extra keys.
func (d *Document) Diff(other *Document) *DiffReport {
	report := &DiffReport{}
	if other == nil {
		other = New()
	}
	diffInto(d, other, "", report)
	return report
}

func diffInto(left, right *Document, prefix string, report *DiffReport) {
	for _, k := range left.keys {
		path := joinPath(prefix, k)
		lv := left.values[k]
		rv, ok := right.values[k]
		if !ok {
			report.OnlyInLeft = append(report.OnlyInLeft, path)
			continue
		}
		lDoc, lIsDoc := lv.(*Document)
		rDoc, rIsDoc := rv.(*Document)
		if lIsDoc && rIsDoc {
			diffInto(lDoc, rDoc, path, report)
			continue
		}
		if !valuesEqual(lv, rv) {
			report.Changed = append(report.Changed, ValueChange{Path: path, Left: lv, Right: rv})
		}
	}
	for _, k := range right.keys {
		if _, ok := left.values[k]; !ok {
			report.OnlyInRight = append(report.OnlyInRight, joinPath(prefix, k))
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
