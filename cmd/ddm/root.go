package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ddm",
	Short: "DDM CLI - inspect and manipulate structured document files",
	Long: `ddm operates on JSON and YAML document files using the ddm library:
path-based reads and writes, merging, diffing, flattening, schema validation
and template completion.

The file format is inferred from the extension (.json, .yaml, .yml) and can
be forced with --format. Mutating commands lock the document file and write
atomically.

Examples:
  # Read a nested value by dotted path
  ddm --file user.json get user.address.city

  # Set a value, creating intermediate documents as needed
  ddm --file user.json set user.address.zip 10001

  # Fill the gaps in a partial record from a template
  ddm --file record.json complete template.json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(viper.GetString("log-level"))
	},
	SilenceUsage: true,
}

var (
	// Global flags that apply to all commands
	filePath string
	format   string
	indent   int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "Document file path (required)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "Force file format: json|yaml (default: by extension)")
	rootCmd.PersistentFlags().IntVar(&indent, "indent", 2, "JSON output indentation width")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug|info|warn|error")

	// Env and config-file overrides: DDM_FORMAT, DDM_INDENT, DDM_LOG_LEVEL,
	// or the same keys in $HOME/.ddm.yaml.
	viper.SetEnvPrefix("DDM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetConfigName(".ddm")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	_ = viper.ReadInConfig() // a missing config file is fine

	for _, key := range []string{"format", "indent", "log-level"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}

	_ = rootCmd.MarkPersistentFlagRequired("file")
}
