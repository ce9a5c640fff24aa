package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/tally/pkg/tally"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List cached aggregation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openCache()
		if err != nil {
			return err
		}
		if cache == nil {
			return fmt.Errorf("run cache is disabled in the config")
		}
		defer cache.Close()

		entries, err := cache.List()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No cached runs")
			return nil
		}

		fmt.Printf("%-36s %-20s %-10s %-12s %s\n", "RUN ID", "CREATED", "COMBINER", "GROUP BY", "INPUT")
		fmt.Println("─────────────────────────────────────────────────────────────────────────────────────────")
		for _, e := range entries {
			fmt.Printf("%-36s %-20s %-10s %-12s %s\n",
				e.ID,
				e.CreatedAt.Format("2006-01-02 15:04:05"),
				e.Combiner,
				e.GroupColumn,
				e.Input)
		}
		return nil
	},
}

var showLimit int

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Re-render a cached aggregation result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openCache()
		if err != nil {
			return err
		}
		if cache == nil {
			return fmt.Errorf("run cache is disabled in the config")
		}
		defer cache.Close()

		e, err := cache.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Run %s  %s(%s) by %s on %s\n\n",
			e.ID, e.Combiner, e.ValueColumn, e.GroupColumn, e.Input)
		fmt.Print(tally.RenderResult(e.Groups, showLimit))
		return nil
	},
}

func init() {
	showCmd.Flags().IntVar(&showLimit, "limit", 0, "Preview group limit (0 shows all)")
}
