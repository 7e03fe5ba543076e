package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set PATH VALUE",
	Short: "Assign a value at a dotted path, creating intermediate documents",
	Long: `Assign a value at a dotted path. VALUE is parsed as JSON when possible
(numbers, booleans, null, quoted strings, objects, arrays) and treated as a
plain string otherwise. Missing intermediate documents are created; setting
through an existing scalar fails.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(filePath)
		if err != nil {
			return err
		}
		if err := doc.SetPath(args[0], parseValueArg(args[1])); err != nil {
			return err
		}
		return saveDocument(filePath, doc)
	},
}

var delCmd = &cobra.Command{
	Use:   "del KEY",
	Short: "Remove a top-level key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(filePath)
		if err != nil {
			return err
		}
		if !doc.Delete(args[0]) {
			return fmt.Errorf("key %q not found in %s", args[0], filePath)
		}
		return saveDocument(filePath, doc)
	},
}

// parseValueArg interprets a command line value: JSON when it parses,
// otherwise the raw string.
func parseValueArg(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err == nil {
		return v
	}
	return arg
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(delCmd)
}
