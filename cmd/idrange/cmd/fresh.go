package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(freshCmd)
}

var freshCmd = &cobra.Command{
	Use:   "fresh",
	Short: "print the number of distinct inventory ids that fall in a range",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, log, err := setup(cmd)
		if err != nil {
			return err
		}

		fresh := inv.Fresh(inv.RangeSet())
		log.Info().Int("ids", len(inv.IDs)).Int("fresh", fresh.Len()).Msg("ids checked")

		fmt.Fprintln(cmd.OutOrStdout(), fresh.Len())
		return nil
	},
}
