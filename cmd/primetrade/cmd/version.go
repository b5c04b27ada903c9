package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0" // Set at build time using -ldflags "-X github.com/primetrade/landing/cmd/primetrade/cmd.version=..."

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of primetrade",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "primetrade v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
