package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/primetrade/landing/internal/landing"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the landing page call-to-action triggers",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLABEL\tTARGET\tACTIVATION")
		for _, cta := range landing.DefaultContent().Hero.CTAs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cta.ID, cta.Label, cta.Target, landing.ActivationPath(cta.ID))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
