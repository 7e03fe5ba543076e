package values

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/arthur-debert/ddm/ddm"
)

// Dataset is an ordered collection of rows over a fixed column set. Rows
// are Documents restricted to the dataset's columns; missing columns are
// stored as nulls so every row presents the full column set.
type Dataset struct {
	columns []string
	rows    []*ddm.Document
}

// ColumnStats summarizes one numeric column.
type ColumnStats struct {
	Count  int     // numeric values seen
	Min    float64 // smallest value; 0 when Count is 0
	Max    float64 // largest value; 0 when Count is 0
	Mean   float64
	StdDev float64 // population standard deviation
}

// NewDataset creates an empty Dataset over the given columns. It fails
// with ErrInvalidInput on an empty column set, an empty column name or a
// duplicate column name.
func NewDataset(columns []string) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("dataset needs at least one column: %w", ddm.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("column name cannot be empty: %w", ddm.ErrInvalidInput)
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate column %q: %w", c, ddm.ErrInvalidInput)
		}
		seen[c] = true
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Dataset{columns: cols}, nil
}

// Columns returns the column names in order.
func (ds *Dataset) Columns() []string {
	out := make([]string, len(ds.columns))
	copy(out, ds.columns)
	return out
}

// Len returns the number of rows.
func (ds *Dataset) Len() int {
	return len(ds.rows)
}

// AppendRow adds a row. Keys outside the column set fail with
// ErrInvalidInput; columns the row omits are filled with nulls. The row is
// copied, never aliased.
func (ds *Dataset) AppendRow(row *ddm.Document) error {
	if row == nil {
		row = ddm.New()
	}
	known := make(map[string]bool, len(ds.columns))
	for _, c := range ds.columns {
		known[c] = true
	}
	for _, k := range row.Keys() {
		if !known[k] {
			return fmt.Errorf("row key %q is not a dataset column: %w", k, ddm.ErrInvalidInput)
		}
	}
	stored := ddm.New()
	for _, c := range ds.columns {
		v, _ := row.Get(c)
		if err := stored.Set(c, v); err != nil {
			return err
		}
	}
	ds.rows = append(ds.rows, stored)
	return nil
}

// Row returns a copy of the i-th row.
func (ds *Dataset) Row(i int) (*ddm.Document, error) {
	if i < 0 || i >= len(ds.rows) {
		return nil, fmt.Errorf("row %d out of range [0, %d): %w", i, len(ds.rows), ddm.ErrKeyNotFound)
	}
	return ds.rows[i].Clone(), nil
}

// Column returns the values of one column across all rows, in row order.
func (ds *Dataset) Column(name string) ([]any, error) {
	if !ds.hasColumn(name) {
		return nil, fmt.Errorf("column %q: %w", name, ddm.ErrKeyNotFound)
	}
	out := make([]any, len(ds.rows))
	for i, row := range ds.rows {
		out[i], _ = row.Get(name)
	}
	return out, nil
}

func (ds *Dataset) hasColumn(name string) bool {
	for _, c := range ds.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Stats summarizes a numeric column. Non-numeric and null cells are
// skipped; they reduce Count rather than failing the call.
func (ds *Dataset) Stats(column string) (ColumnStats, error) {
	cells, err := ds.Column(column)
	if err != nil {
		return ColumnStats{}, err
	}
	var nums []float64
	for _, cell := range cells {
		if f, ok := numericCell(cell); ok {
			nums = append(nums, f)
		}
	}
	stats := ColumnStats{Count: len(nums)}
	if len(nums) == 0 {
		return stats, nil
	}
	stats.Min, stats.Max = nums[0], nums[0]
	var sum float64
	for _, f := range nums {
		if f < stats.Min {
			stats.Min = f
		}
		if f > stats.Max {
			stats.Max = f
		}
		sum += f
	}
	stats.Mean = sum / float64(len(nums))
	var sq float64
	for _, f := range nums {
		d := f - stats.Mean
		sq += d * d
	}
	stats.StdDev = math.Sqrt(sq / float64(len(nums)))
	return stats, nil
}

// SortBy returns a new Dataset with rows ordered by the given column,
// ascending, using the document value total order. The receiver is
// unchanged.
func (ds *Dataset) SortBy(column string) (*Dataset, error) {
	if !ds.hasColumn(column) {
		return nil, fmt.Errorf("column %q: %w", column, ddm.ErrKeyNotFound)
	}
	out, _ := NewDataset(ds.columns)
	out.rows = make([]*ddm.Document, len(ds.rows))
	for i, row := range ds.rows {
		out.rows[i] = row.Clone()
	}
	sort.SliceStable(out.rows, func(i, j int) bool {
		a, _ := out.rows[i].Get(column)
		b, _ := out.rows[j].Get(column)
		return ddm.Compare(a, b) < 0
	})
	return out, nil
}

// Filter returns a new Dataset containing the rows keep accepts, in order.
// keep receives a copy of each row.
func (ds *Dataset) Filter(keep func(row *ddm.Document) bool) *Dataset {
	out, _ := NewDataset(ds.columns)
	for _, row := range ds.rows {
		if keep(row.Clone()) {
			out.rows = append(out.rows, row.Clone())
		}
	}
	return out
}

// ToCSV renders the dataset as CSV text: a header line of columns followed
// by one line per row, using the document CSV export for each row.
func (ds *Dataset) ToCSV() (string, error) {
	var b strings.Builder
	b.WriteString(strings.Join(ds.columns, ","))
	for _, row := range ds.rows {
		line, err := row.CSVLine()
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String(), nil
}

// ToJSON renders the dataset as a JSON array of row objects.
func (ds *Dataset) ToJSON(indent int) (string, error) {
	parts := make([]string, len(ds.rows))
	for i, row := range ds.rows {
		s, err := row.ToJSON(indent)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	if indent <= 0 {
		return "[" + strings.Join(parts, ",") + "]", nil
	}
	return "[\n" + strings.Join(parts, ",\n") + "\n]", nil
}

func numericCell(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
