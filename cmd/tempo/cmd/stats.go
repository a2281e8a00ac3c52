package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tempo/internal/stats"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a summary of logged time",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := appStore.Refresh(ctx); err != nil {
			return err
		}
		derived, err := appStore.Derived()
		if err != nil {
			return err
		}
		snap := appStore.Snapshot()
		now := time.Now()

		fmt.Printf("this week: %.1fh\n", stats.WeekTotal(snap.Entries, now))

		fmt.Printf("\nlast %d days:\n", statsDays)
		for _, day := range stats.LastDays(snap.Entries, now, statsDays) {
			fmt.Printf("  %s  %5.1fh\n", day.Date, day.Hours)
		}

		shares := stats.Distribution(derived.Roots)
		if len(shares) > 0 {
			fmt.Printf("\nby folder:\n")
			for _, share := range shares {
				fmt.Printf("  %-24s %6.1fh  %3.0f%%\n", share.Name, share.Hours, share.Fraction*100)
			}
		}

		progress := stats.Progress(derived.Modules)
		if len(progress) > 0 {
			fmt.Printf("\ntargets:\n")
			for _, p := range progress {
				fmt.Printf("  %-24s %5.1f / %.0fh (%.0f%%)\n", p.Name, p.Hours, p.Target, p.Fraction*100)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 7, "number of days to show")
	rootCmd.AddCommand(statsCmd)
}
