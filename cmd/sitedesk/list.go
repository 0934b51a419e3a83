// List command shows an entity's records with search and filters.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

var (
	flagSearch    string
	flagPrimary   string
	flagSecondary string
	flagRecent    int
)

var listCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "List records with optional search and filters",
	Long: `List shows an entity's records. The search term matches the entity's
configured search fields case-insensitively; the primary and secondary
filters compare against the entity's configured filter fields. Search and
filters compose with logical AND.

Example:
  sitedesk list rfis
  sitedesk list rfis --search roof
  sitedesk list rfis --filter Open --filter2 High
  sitedesk list rfis --recent 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		var records []entity.Record
		if flagRecent > 0 {
			records, err = s.ctl.Recent(flagRecent)
		} else {
			s.ctl.SetSearch(flagSearch)
			if flagPrimary != "" {
				s.ctl.SetPrimaryFilter(flagPrimary)
			}
			if flagSecondary != "" {
				s.ctl.SetSecondaryFilter(flagSecondary)
			}
			records, err = s.ctl.Records()
		}
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(records)
		}
		if len(records) == 0 {
			fmt.Println("No records found")
			return nil
		}
		for _, rec := range records {
			printRecordLine(s.def, rec)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagSearch, "search", "", "search term matched against the configured search fields")
	listCmd.Flags().StringVar(&flagPrimary, "filter", "", "primary filter value (All disables)")
	listCmd.Flags().StringVar(&flagSecondary, "filter2", "", "secondary filter value (All disables)")
	listCmd.Flags().IntVar(&flagRecent, "recent", 0, "show only the N most recently created records")
}
