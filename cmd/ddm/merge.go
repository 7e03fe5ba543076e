package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mergeOverwrite bool

var mergeCmd = &cobra.Command{
	Use:   "merge OTHERFILE",
	Short: "Merge another document file into this one",
	Long: `Merge the other document into the target file. Nested documents merge
recursively; for conflicting scalar keys, --overwrite decides whether the
other file's value wins (default) or the target's is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(filePath)
		if err != nil {
			return err
		}
		other, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		merged := doc.Merge(other, mergeOverwrite)
		return saveDocument(filePath, merged)
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff OTHERFILE",
	Short: "Show leaf-level differences against another document file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(filePath)
		if err != nil {
			return err
		}
		other, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		report := doc.Diff(other)
		if report.Empty() {
			fmt.Println("documents are identical")
			return nil
		}
		for _, p := range report.OnlyInLeft {
			fmt.Printf("- %s (only in %s)\n", p, filePath)
		}
		for _, p := range report.OnlyInRight {
			fmt.Printf("+ %s (only in %s)\n", p, args[0])
		}
		for _, c := range report.Changed {
			fmt.Printf("~ %s: %s -> %s\n", c.Path, formatScalar(c.Left), formatScalar(c.Right))
		}
		return nil
	},
}

func init() {
	mergeCmd.Flags().BoolVar(&mergeOverwrite, "overwrite", true, "Other file's values win on conflicts")
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(diffCmd)
}
