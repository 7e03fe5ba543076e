package ddm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FromJSON decodes a JSON object into a Document, preserving the key order
// of the source text. Nested objects become nested Documents and arrays
// become sequences. Numbers decode as float64. The top-level value must be
// an object; anything else fails with ErrInvalidInput.
func FromJSON(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, fmt.Errorf("top-level JSON value must be an object: %w", ErrInvalidInput)
	}
	doc, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// UnmarshalJSON implements json.Unmarshaler with order-preserving decode.
func (d *Document) UnmarshalJSON(data []byte) error {
	decoded, err := FromJSON(data)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

// decodeObject consumes tokens up to and including the object's closing
// brace. The opening brace has already been consumed.
func decodeObject(dec *json.Decoder) (*Document, error) {
	doc := New()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON object: %w", err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return doc, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected JSON token %v, want object key", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		doc.setWrapped(key, value)
	}
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON value: %w", err)
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(dec)
		case '[':
			var seq []any
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				seq = append(seq, item)
			}
			// Consume the closing bracket.
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("failed to parse JSON array: %w", err)
			}
			if seq == nil {
				seq = []any{}
			}
			return seq, nil
		}
		return nil, fmt.Errorf("unexpected JSON delimiter %v", delim)
	}
	// Scalar token: nil, bool, float64 or string.
	return tok, nil
}
