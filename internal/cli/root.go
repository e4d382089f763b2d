package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bundlediff",
		Short: "Compare two bundle or package JSON documents",
		Long: `Bundlediff compares two JSON documents describing either OSGi-style
bundle lists or package-manager result sets and reports additions,
removals and field-level changes.

Supported document types:
  - Bundle JSON  (top-level "data" array keyed by symbolicName)
  - Package JSON (top-level "results" array keyed by name and group)

Inputs may be plain, gzip, zstd or xz compressed JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("config", "", "Config file (default .bundlediff.yaml in the working or home directory)")

	// Add subcommands
	rootCmd.AddCommand(NewCompareCmd())
	rootCmd.AddCommand(NewSniffCmd())

	return rootCmd
}
