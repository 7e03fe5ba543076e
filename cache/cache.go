// Package cache implements a template-based completion engine used to
// normalize partially populated records against a default shape. A Cache
// holds an immutable template; Complete produces a record containing
// exactly the template's keys, preferring values present in the input and
// falling back to independently copied template defaults.
//
// A Cache is not internally synchronized; callers sharing one across
// goroutines must lock around it, matching the rest of the library.
package cache

import (
	"fmt"

	"github.com/arthur-debert/ddm/ddm"
)

// Cache completes partial records against a fixed template and tracks
// usage statistics over its lifetime.
type Cache struct {
	template  *ddm.Document
	records   uint64 // records completed since construction or ResetStats
	defaulted uint64 // keys filled from template defaults in that window
}

// Stats is a read-only snapshot of a Cache's counters.
type Stats struct {
	RecordsCompleted uint64  // total records completed
	KeysDefaulted    uint64  // total keys filled from template defaults
	TemplateSize     int     // key count of the current template
	Efficiency       float64 // 1 - defaulted/(records*template size); 1 when no record completed
}

// Report summarizes how one record relates to the template without
// completing it.
type Report struct {
	MissingKeys  []string // template keys absent from the record
	ExtraKeys    []string // record keys absent from the template
	MissingCount int
	ExtraCount   int
}

// New creates a Cache around template. The template is cloned, so later
// mutation of the caller's Document never leaks into completions. A nil
// template fails with ErrInvalidInput.
func New(template *ddm.Document) (*Cache, error) {
	if template == nil {
		return nil, fmt.Errorf("template must not be nil: %w", ddm.ErrInvalidInput)
	}
	return &Cache{template: template.Clone()}, nil
}

// Template returns a copy of the current template. Mutating the copy does
// not affect the cache.
func (c *Cache) Template() *ddm.Document {
	return c.template.Clone()
}

// Complete produces a new Document containing every template key, in
// template order: the record's value when the record has the key, else a
// fresh deep copy of the template's default. Record keys outside the
// template are dropped — completion produces exactly the template's key
// set, which is what distinguishes it from a merge. A nil record completes
// to all defaults. Cost is one template pass with O(1) lookups into the
// record.
func (c *Cache) Complete(record *ddm.Document) *ddm.Document {
	out := ddm.New()
	for _, entry := range c.template.Entries() {
		if record != nil {
			if v, ok := record.Get(entry.Key); ok {
				_ = out.Set(entry.Key, cloneAny(v))
				continue
			}
		}
		c.defaulted++
		_ = out.Set(entry.Key, cloneAny(entry.Value))
	}
	c.records++
	return out
}

// CompleteBatch completes each record independently; output order matches
// input order and no defaulted value is shared between outputs.
func (c *Cache) CompleteBatch(records []*ddm.Document) []*ddm.Document {
	out := make([]*ddm.Document, len(records))
	for i, record := range records {
		out[i] = c.Complete(record)
	}
	return out
}

// MissingKeys returns the template keys absent from record, in template
// order. A nil record is missing every template key.
func (c *Cache) MissingKeys(record *ddm.Document) []string {
	var out []string
	for _, k := range c.template.Keys() {
		if record == nil || !record.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// ExtraKeys returns the record keys absent from the template, in record
// order.
func (c *Cache) ExtraKeys(record *ddm.Document) []string {
	if record == nil {
		return nil
	}
	var out []string
	for _, k := range record.Keys() {
		if !c.template.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// CompletionReport combines missing and extra keys for record with their
// counts. It does not complete the record or touch statistics.
func (c *Cache) CompletionReport(record *ddm.Document) Report {
	missing := c.MissingKeys(record)
	extra := c.ExtraKeys(record)
	return Report{
		MissingKeys:  missing,
		ExtraKeys:    extra,
		MissingCount: len(missing),
		ExtraCount:   len(extra),
	}
}

// GetStats returns a snapshot of the cache's counters. Efficiency is the
// share of output keys that came from records rather than defaults; it
// reports 1 for an unused cache or an empty template.
func (c *Cache) GetStats() Stats {
	s := Stats{
		RecordsCompleted: c.records,
		KeysDefaulted:    c.defaulted,
		TemplateSize:     c.template.Len(),
		Efficiency:       1,
	}
	if total := c.records * uint64(c.template.Len()); total > 0 {
		s.Efficiency = 1 - float64(c.defaulted)/float64(total)
	}
	return s
}

// UpdateTemplate atomically replaces the template with a clone of the new
// one. Previously produced outputs are unaffected and statistics are kept:
// counters track cache usage over its lifetime, not per template.
func (c *Cache) UpdateTemplate(template *ddm.Document) error {
	if template == nil {
		return fmt.Errorf("template must not be nil: %w", ddm.ErrInvalidInput)
	}
	c.template = template.Clone()
	return nil
}

// ResetStats zeroes the counters without altering the template.
func (c *Cache) ResetStats() {
	c.records = 0
	c.defaulted = 0
}

// cloneAny deep-copies container values so no output aliases the template
// or an input record.
func cloneAny(v any) any {
	switch val := v.(type) {
	case *ddm.Document:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneAny(item)
		}
		return out
	}
	return v
}
