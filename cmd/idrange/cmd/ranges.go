package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rangesCmd)
}

var rangesCmd = &cobra.Command{
	Use:   "ranges",
	Short: "print the coalesced ranges, one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, _, err := setup(cmd)
		if err != nil {
			return err
		}

		for _, r := range inv.RangeSet().Ranges() {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}
