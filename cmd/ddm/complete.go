package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arthur-debert/ddm/cache"
)

var completeInPlace bool

var completeCmd = &cobra.Command{
	Use:   "complete TEMPLATEFILE",
	Short: "Fill the document's gaps from a template",
	Long: `Complete the document against a template file: the output contains
exactly the template's keys, preferring the document's values and falling
back to template defaults. Keys outside the template are dropped. The
result is printed unless --in-place rewrites the document file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(filePath)
		if err != nil {
			return err
		}
		template, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		c, err := cache.New(template)
		if err != nil {
			return err
		}
		report := c.CompletionReport(doc)
		logger.Info("completing record",
			"missing", report.MissingCount, "extra", report.ExtraCount)
		completed := c.Complete(doc)
		if completeInPlace {
			return saveDocument(filePath, completed)
		}
		out, err := renderDocument(completed, formatFor(filePath), viper.GetInt("indent"))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	completeCmd.Flags().BoolVar(&completeInPlace, "in-place", false, "Rewrite the document file with the completed record")
	rootCmd.AddCommand(completeCmd)
}
