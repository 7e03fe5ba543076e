package values

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/ddm/ddm"
)

// TimelineEntry is one timed event: a timestamp, a unique user-facing
// label, a structured payload and a stable generated identifier.
type TimelineEntry struct {
	UUID      string        // stable internal identifier, generated on Add
	Timestamp time.Time     // event time
	Label     string        // unique within the timeline
	Payload   *ddm.Document // event payload, owned by the timeline
}

// Timeline is a collection of (timestamp, label, payload) entries kept in
// chronological order, with labels unique across the collection. Entries
// with equal timestamps keep insertion order.
type Timeline struct {
	entries []TimelineEntry
	byLabel map[string]int
}

// NewTimeline returns an empty Timeline.
func NewTimeline() *Timeline {
	return &Timeline{byLabel: make(map[string]int)}
}

// Len returns the number of entries.
func (t *Timeline) Len() int {
	return len(t.entries)
}

// Add inserts an event, cloning the payload so the timeline owns its copy.
// It fails with ErrInvalidInput on an empty or duplicate label. The entry's
// generated UUID is returned.
func (t *Timeline) Add(ts time.Time, label string, payload *ddm.Document) (string, error) {
	if label == "" {
		return "", fmt.Errorf("timeline label cannot be empty: %w", ddm.ErrInvalidInput)
	}
	if _, exists := t.byLabel[label]; exists {
		return "", fmt.Errorf("timeline label %q already exists: %w", label, ddm.ErrInvalidInput)
	}
	if payload == nil {
		payload = ddm.New()
	}
	entry := TimelineEntry{
		UUID:      uuid.New().String(),
		Timestamp: ts,
		Label:     label,
		Payload:   payload.Clone(),
	}
	// Insert before the first strictly later entry to keep chronological
	// order with stable insertion order among equal timestamps.
	pos := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Timestamp.After(ts)
	})
	t.entries = append(t.entries, TimelineEntry{})
	copy(t.entries[pos+1:], t.entries[pos:])
	t.entries[pos] = entry
	t.reindex()
	return entry.UUID, nil
}

func (t *Timeline) reindex() {
	for i, e := range t.entries {
		t.byLabel[e.Label] = i
	}
}

// GetByLabel returns the entry with the given label.
func (t *Timeline) GetByLabel(label string) (TimelineEntry, error) {
	i, ok := t.byLabel[label]
	if !ok {
		return TimelineEntry{}, fmt.Errorf("timeline label %q: %w", label, ddm.ErrKeyNotFound)
	}
	return t.entries[i], nil
}

// Remove deletes the entry with the given label and reports whether it was
// present.
func (t *Timeline) Remove(label string) bool {
	i, ok := t.byLabel[label]
	if !ok {
		return false
	}
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	delete(t.byLabel, label)
	t.reindex()
	return true
}

// Labels returns all labels in chronological order.
func (t *Timeline) Labels() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Label
	}
	return out
}

// Entries returns all entries in chronological order. The slice is a copy;
// payloads are shared with the timeline.
func (t *Timeline) Entries() []TimelineEntry {
	out := make([]TimelineEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Window returns the entries with from <= timestamp <= to, in order.
func (t *Timeline) Window(from, to time.Time) []TimelineEntry {
	var out []TimelineEntry
	for _, e := range t.entries {
		if e.Timestamp.Before(from) || e.Timestamp.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Before returns the entries strictly earlier than ts, in order.
func (t *Timeline) Before(ts time.Time) []TimelineEntry {
	var out []TimelineEntry
	for _, e := range t.entries {
		if e.Timestamp.Before(ts) {
			out = append(out, e)
		}
	}
	return out
}

// After returns the entries strictly later than ts, in order.
func (t *Timeline) After(ts time.Time) []TimelineEntry {
	var out []TimelineEntry
	for _, e := range t.entries {
		if e.Timestamp.After(ts) {
			out = append(out, e)
		}
	}
	return out
}
