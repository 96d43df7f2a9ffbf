package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(countCmd)
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "print the number of distinct ids covered by the inventory ranges",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, log, err := setup(cmd)
		if err != nil {
			return err
		}

		rs := inv.RangeSet()
		total := rs.NumIDs()
		log.Info().Int("ranges", rs.Len()).Uint64("ids", total).Msg("ranges coalesced")

		fmt.Fprintln(cmd.OutOrStdout(), total)
		return nil
	},
}
