// Stats command summarizes an entity's record set.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <entity>",
	Short: "Show record metrics for an entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		summary, err := s.ctl.Stats()
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(summary)
		}

		fmt.Println(s.def.Display.Title)
		fmt.Println("  total:          ", summary.Total)
		fmt.Println("  active:         ", summary.ActiveLike)
		fmt.Println("  recent:         ", summary.Recent)
		fmt.Printf("  completion rate: %.1f%%\n", summary.CompletionRate)

		if len(summary.Distribution) > 0 {
			label := "status"
			if f := s.def.Display.PrimaryFilter; f != nil {
				label = f.Label
			}
			fmt.Printf("  by %s:\n", label)
			printCounts(summary.Distribution)
		}
		if len(summary.Trend) > 0 {
			label := "day"
			if f := s.def.Display.SecondaryFilter; f != nil {
				label = f.Label
			}
			fmt.Printf("  by %s:\n", label)
			printCounts(summary.Trend)
		}
		return nil
	},
}

// printCounts writes a value count map in sorted key order.
func printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("    %-20s %d\n", k, counts[k])
	}
}
