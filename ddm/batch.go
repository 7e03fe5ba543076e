package ddm

import "fmt"

// BatchResult is the per-element outcome of a batch operation. Exactly one
// of Doc and Err is set. Batch helpers report partial failures this way
// rather than failing the whole batch on the first bad element.
type BatchResult struct {
	Doc *Document
	Err error
}

// MergeAll folds documents left to right into a single new Document with
// the given overwrite policy. nil elements are skipped; an empty or all-nil
// input yields an empty Document. No input is mutated.
func MergeAll(docs []*Document, overwrite bool) *Document {
	out := New()
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		out.MergeInPlace(doc, overwrite)
	}
	return out
}

// DiffAll compares base against each of the others, returning one report
// per element in input order. A nil element diffs against an empty
// Document.
func DiffAll(base *Document, others []*Document) []*DiffReport {
	out := make([]*DiffReport, len(others))
	for i, other := range others {
		out[i] = base.Diff(other)
	}
	return out
}

// TransformBatch applies fn to each document independently. Output order
// matches input order; a nil element yields an ErrInvalidInput result and
// does not affect its neighbors.
func TransformBatch(docs []*Document, fn TransformFunc) []BatchResult {
	out := make([]BatchResult, len(docs))
	for i, doc := range docs {
		if doc == nil {
			out[i] = BatchResult{Err: fmt.Errorf("document %d is nil: %w", i, ErrInvalidInput)}
			continue
		}
		out[i] = BatchResult{Doc: doc.Transform(fn)}
	}
	return out
}

// FilterBatch applies FilterKeys to each document independently, with the
// same per-element failure reporting as TransformBatch.
func FilterBatch(docs []*Document, keys []string) []BatchResult {
	out := make([]BatchResult, len(docs))
	for i, doc := range docs {
		if doc == nil {
			out[i] = BatchResult{Err: fmt.Errorf("document %d is nil: %w", i, ErrInvalidInput)}
			continue
		}
		out[i] = BatchResult{Doc: doc.FilterKeys(keys)}
	}
	return out
}

// ValidateBatch checks each document against the schema, returning one
// error slot per document in input order; nil means that document
// conforms.
func ValidateBatch(docs []*Document, schema Schema) []error {
	out := make([]error, len(docs))
	for i, doc := range docs {
		if doc == nil {
			out[i] = fmt.Errorf("document %d is nil: %w", i, ErrInvalidInput)
			continue
		}
		out[i] = doc.ValidateSchema(schema)
	}
	return out
}
