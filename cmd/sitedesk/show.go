// Show command displays one record in full.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

var showCmd = &cobra.Command{
	Use:   "show <entity> <id>",
	Short: "Show one record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.ctl.View(args[1]); err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "%s %s not found\n", s.def.Display.ItemName, args[1])
				os.Exit(exitUserError)
			}
			return err
		}

		if flagJSON {
			return printJSON(s.ctl.Selected())
		}
		printRecordDetail(s.def, s.ctl.Selected())
		return nil
	},
}
