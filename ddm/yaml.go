package ddm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML mapping into a Document, preserving the key order
// of the source text by walking the yaml.v3 node tree rather than decoding
// into a Go map. The top-level value must be a mapping.
func FromYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return New(), nil
	}
	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top-level YAML value must be a mapping: %w", ErrInvalidInput)
	}
	return decodeMappingNode(node)
}

// ToYAML renders the document as YAML text with keys in insertion order.
func (d *Document) ToYAML() (string, error) {
	node, err := d.yamlNode()
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(out), nil
}

// MarshalYAML implements yaml.Marshaler with order-preserving encode.
func (d *Document) MarshalYAML() (any, error) {
	return d.yamlNode()
}

func decodeMappingNode(node *yaml.Node) (*Document, error) {
	doc := New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		value, err := decodeYAMLNode(valNode)
		if err != nil {
			return nil, err
		}
		doc.setWrapped(keyNode.Value, value)
	}
	return doc, nil
}

func decodeYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return decodeMappingNode(node)
	case yaml.SequenceNode:
		seq := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := decodeYAMLNode(item)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	case yaml.AliasNode:
		return decodeYAMLNode(node.Alias)
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode YAML scalar %q: %w", node.Value, err)
		}
		return wrapValue(v), nil
	}
	return nil, nil
}

func (d *Document) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range d.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		valNode, err := valueYAMLNode(d.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

func valueYAMLNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case *Document:
		return val.yamlNode()
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range val {
			itemNode, err := valueYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode YAML scalar: %w", err)
	}
	return node, nil
}
