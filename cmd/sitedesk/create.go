// Create command adds a record from key=value field arguments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <entity> [field=value...]",
	Short: "Create a record",
	Long: `Create adds a record built from key=value field arguments. Values are
parsed by each field's declared type; required fields must be present.

Example:
  sitedesk create rfis title="Clarify detail" question="Which detail governs?" priority=High`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		inputs, err := parseFieldArgs(args[1:])
		if err != nil {
			return err
		}

		rec, err := s.ctl.Create(inputs)
		if err != nil {
			if errs := s.ctl.FormErrors(); len(errs) > 0 {
				fmt.Fprintf(os.Stderr, "Could not create %s:\n", s.def.Display.ItemName)
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
