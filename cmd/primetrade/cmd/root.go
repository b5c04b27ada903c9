package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "primetrade",
	Short: "PrimeTrade.ai landing site",
	Long: `primetrade serves and exports the PrimeTrade.ai landing page.

Available commands:
  serve      Start the HTTP server
  render     Write the landing page HTML to stdout or a file
  routes     List the landing page call-to-action triggers
  version    Print the version number

Use "primetrade [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
