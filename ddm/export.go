package ddm

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
)

// ToJSON renders the document as JSON text with the given indentation
// width; indent 0 produces compact output. Key order follows insertion
// order. No mutation occurs.
func (d *Document) ToJSON(indent int) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}
	if indent <= 0 {
		return string(data), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", strings.Repeat(" ", indent)); err != nil {
		return "", fmt.Errorf("failed to indent JSON: %w", err)
	}
	return buf.String(), nil
}

// MarshalJSON implements json.Marshaler, emitting keys in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CSVLine renders the document as a single CSV record. The document is
// flattened first, so nested keys appear as dotted columns; sequence values
// are stringified whole. Fields are quoted per RFC 4180, so embedded commas
// and quotes survive.
func (d *Document) CSVLine() (string, error) {
	flat := d.Flatten(".")
	fields := make([]string, 0, flat.Len())
	for _, k := range flat.keys {
		fields = append(fields, stringifyValue(flat.values[k]))
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return "", fmt.Errorf("failed to write CSV record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV record: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// ToXML renders the document in a tag-per-key text form: <key>value</key>,
// nested per document. The grammar is library-specific; keys are emitted
// verbatim and are expected to be valid tag names.
func (d *Document) ToXML() string {
	var b strings.Builder
	d.xmlInto(&b, 0)
	return b.String()
}

func (d *Document) xmlInto(b *strings.Builder, level int) {
	indent := strings.Repeat("  ", level)
	for _, k := range d.keys {
		switch v := d.values[k].(type) {
		case *Document:
			fmt.Fprintf(b, "%s<%s>\n", indent, k)
			v.xmlInto(b, level+1)
			fmt.Fprintf(b, "%s</%s>\n", indent, k)
		default:
			fmt.Fprintf(b, "%s<%s>%s</%s>\n", indent, k, xmlEscape(stringifyValue(v)), k)
		}
	}
}

func xmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// String renders the document as an indented hierarchical listing, one
// "key: value" line per entry, nested documents indented a level deeper and
// sequence items prefixed with "-".
func (d *Document) String() string {
	var b strings.Builder
	d.stringInto(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (d *Document) stringInto(b *strings.Builder, level int) {
	indent := strings.Repeat("  ", level)
	for _, k := range d.keys {
		switch v := d.values[k].(type) {
		case *Document:
			fmt.Fprintf(b, "%s%s:\n", indent, k)
			v.stringInto(b, level+1)
		case []any:
			fmt.Fprintf(b, "%s%s:\n", indent, k)
			for _, item := range v {
				if nested, ok := item.(*Document); ok {
					fmt.Fprintf(b, "%s  -\n", indent)
					nested.stringInto(b, level+2)
					continue
				}
				fmt.Fprintf(b, "%s  - %s\n", indent, stringifyValue(item))
			}
		default:
			fmt.Fprintf(b, "%s%s: %s\n", indent, k, stringifyValue(v))
		}
	}
}
