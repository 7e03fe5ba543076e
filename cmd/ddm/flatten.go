package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flattenSeparator string

var flattenCmd = &cobra.Command{
	Use:   "flatten",
	Short: "Print the document as a single level of separator-joined keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(filePath)
		if err != nil {
			return err
		}
		flat := doc.Flatten(flattenSeparator)
		out, err := renderDocument(flat, formatFor(filePath), viper.GetInt("indent"))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	flattenCmd.Flags().StringVar(&flattenSeparator, "separator", ".", "Separator for joined keys")
	rootCmd.AddCommand(flattenCmd)
}
