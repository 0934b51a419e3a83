// Update command edits a record from key=value field arguments.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

var updateCmd = &cobra.Command{
	Use:   "update <entity> <id> [field=value...]",
	Short: "Update a record",
	Long: `Update merges key=value field arguments into an existing record.
Unspecified fields keep their values.

Example:
  sitedesk update rfis RFI-001 status=Answered`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		inputs, err := parseFieldArgs(args[2:])
		if err != nil {
			return err
		}

		if err := s.ctl.Edit(args[1]); err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "%s %s not found\n", s.def.Display.ItemName, args[1])
				os.Exit(exitUserError)
			}
			return err
		}

		rec, err := s.ctl.SubmitEdit(inputs)
		if err != nil {
			if errs := s.ctl.FormErrors(); len(errs) > 0 {
				fmt.Fprintf(os.Stderr, "Could not update %s %s:\n", s.def.Display.ItemName, args[1])
				printFieldErrors(errs)
				os.Exit(exitUserError)
			}
			return err
		}

		if flagJSON {
			return printJSON(rec)
		}
		printStatus(s.ctl)
		return nil
	},
}
