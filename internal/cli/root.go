// Package cli provides the command-line interface for huecount.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/huecount/huecount/internal/version"
)

// logger is the shared application logger. It is reconfigured from the
// verbosity flags before any command runs.
var logger = hclog.New(&hclog.LoggerOptions{
	Name:   "huecount",
	Level:  hclog.Warn,
	Output: os.Stderr,
})

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "huecount",
	Short: "Rank a fixed colour palette by how often an image hits it",
	Long: `huecount extracts the dominant colours of an image by sampling its pixels
on a fixed grid and classifying every sample against a curated reference
palette. The output is the reference palette ranked by hit frequency.

Supported image formats: JPEG, PNG, GIF, BMP, TIFF, WebP.`,
	Version:      version.Short(),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		quiet, _ := cmd.Flags().GetBool("quiet")
		switch {
		case quiet:
			logger.SetLevel(hclog.Error)
		case verbose:
			logger.SetLevel(hclog.Debug)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
