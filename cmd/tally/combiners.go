package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/tally/combiners"
)

var combinersCmd = &cobra.Command{
	Use:   "combiners",
	Short: "List registered combining functions",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range combiners.List() {
			desc, err := combiners.Describe(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s %s\n", name, desc)
		}
		return nil
	},
}
