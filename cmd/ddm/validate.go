package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/ddm/ddm"
	"github.com/arthur-debert/ddm/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate SCHEMAFILE",
	Short: "Check the document against a schema file",
	Long: `Validate the document against a schema file. The schema is itself a
JSON or YAML document mapping keys to kind names ("null", "bool", "number",
"string", "sequence", "document") or to nested schemas. Extra document keys
are permitted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(filePath)
		if err != nil {
			return err
		}
		schemaDoc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		schema, err := schemaFromDocument(schemaDoc)
		if err != nil {
			return err
		}
		if err := doc.ValidateSchema(schema); err != nil {
			return fmt.Errorf("%s does not conform: %w", filePath, err)
		}
		fmt.Println("ok")
		return nil
	},
}

var kindByName = map[string]types.Kind{
	"null":     types.KindNull,
	"bool":     types.KindBool,
	"number":   types.KindNumber,
	"string":   types.KindString,
	"sequence": types.KindSequence,
	"document": types.KindDocument,
}

// schemaFromDocument converts a schema document (kind names as strings,
// nested documents as nested schemas) into a ddm.Schema.
func schemaFromDocument(doc *ddm.Document) (ddm.Schema, error) {
	schema := make(ddm.Schema, doc.Len())
	for _, entry := range doc.Entries() {
		switch v := entry.Value.(type) {
		case string:
			kind, ok := kindByName[v]
			if !ok {
				return nil, fmt.Errorf("schema key %q: unknown kind name %q", entry.Key, v)
			}
			schema[entry.Key] = kind
		case *ddm.Document:
			nested, err := schemaFromDocument(v)
			if err != nil {
				return nil, err
			}
			schema[entry.Key] = nested
		default:
			return nil, fmt.Errorf("schema key %q: expected kind name or nested schema, got %s",
				entry.Key, ddm.KindOf(entry.Value))
		}
	}
	return schema, nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
