package ddm

// Merge returns a new Document with the union of both key sets. Keys only in
// one input are copied through. For keys present in both, two nested
// Documents merge recursively; otherwise overwrite decides whether other's
// value or the receiver's wins. Neither input is mutated. Key order is the
// receiver's keys first, then other's new keys in their own order.
func (d *Document) Merge(other *Document, overwrite bool) *Document {
	out := d.Clone()
	if other == nil {
		return out
	}
	out.mergeFrom(other, overwrite)
	return out
}

// MergeInPlace is the destructive form of Merge: it folds other's entries
// into the receiver with the same recursion and overwrite semantics.
func (d *Document) MergeInPlace(other *Document, overwrite bool) {
	if other == nil {
		return
	}
	d.mergeFrom(other, overwrite)
}

func (d *Document) mergeFrom(other *Document, overwrite bool) {
	for _, k := range other.keys {
		theirs := other.values[k]
		ours, exists := d.values[k]
		if !exists {
			d.setWrapped(k, cloneValue(theirs))
			continue
		}
		ourDoc, oursIsDoc := ours.(*Document)
		theirDoc, theirsIsDoc := theirs.(*Document)
		if oursIsDoc && theirsIsDoc {
			ourDoc.mergeFrom(theirDoc, overwrite)
			continue
		}
		if overwrite {
			d.values[k] = cloneValue(theirs)
		}
	}
}
