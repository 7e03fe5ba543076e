package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arthur-debert/ddm/ddm"
)

var getCmd = &cobra.Command{
	Use:   "get PATH",
	Short: "Read the value at a dotted path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(filePath)
		if err != nil {
			return err
		}
		v, ok := doc.GetPath(args[0])
		if !ok {
			return fmt.Errorf("path %q not found in %s", args[0], filePath)
		}
		return printValue(v)
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the document's top-level keys in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(filePath)
		if err != nil {
			return err
		}
		for _, k := range doc.Keys() {
			fmt.Println(k)
		}
		return nil
	},
}

// printValue renders a value: documents in the configured output format,
// scalars and sequences as plain text.
func printValue(v any) error {
	if doc, ok := v.(*ddm.Document); ok {
		out, err := renderDocument(doc, formatFor(filePath), viper.GetInt("indent"))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	fmt.Println(formatScalar(v))
	return nil
}

func formatScalar(v any) string {
	if data, err := json.Marshal(v); err == nil {
		return string(data)
	}
	return fmt.Sprint(v)
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(keysCmd)
}
