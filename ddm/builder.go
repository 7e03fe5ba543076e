package ddm

// Builder stages key/value assignments fluently and materializes a Document
// on Build. A Builder is distinct from the Document it produces: staged
// state stays mutable, and each Build call returns an independent snapshot,
// so a Builder may keep accumulating after a Build.
//
// Errors (a cyclic assignment, for example) stick to the Builder and are
// reported by Build, keeping call chains clean.
type Builder struct {
	doc *Document
	err error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{doc: New()}
}

// Set stages a single key/value assignment.
func (b *Builder) Set(key string, value any) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.doc.Set(key, value)
	return b
}

// SetMany stages every field of kv, in lexical key order.
func (b *Builder) SetMany(kv map[string]any) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.doc.Update(kv)
	return b
}

// Nest invokes configure on a fresh Builder and stages its built Document
// under key.
func (b *Builder) Nest(key string, configure func(*Builder)) *Builder {
	if b.err != nil {
		return b
	}
	nested := NewBuilder()
	configure(nested)
	doc, err := nested.Build()
	if err != nil {
		b.err = err
		return b
	}
	b.doc.setWrapped(key, doc)
	return b
}

// AddList stages items as a sequence value under key.
func (b *Builder) AddList(key string, items []any) *Builder {
	return b.Set(key, items)
}

// Build materializes the staged state as a Document. The returned Document
// shares no mutable state with the Builder; further Builder calls do not
// affect it, and repeated Build calls yield independent snapshots.
func (b *Builder) Build() (*Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.doc.Clone(), nil
}
