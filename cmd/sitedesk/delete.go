// Delete command removes a record, with a confirmation step.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <entity> <id>",
	Short: "Delete a record",
	Long: `Delete removes a record. Deletion must be confirmed: without --yes the
command only reports what would be deleted.

Example:
  sitedesk delete rfis RFI-001 --yes`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		id := args[1]

		// First call arms the confirmation and deletes nothing.
		if _, err := s.ctl.Delete(id); err != nil {
			return err
		}
		if !flagYes {
			printStatus(s.ctl)
			fmt.Println("Re-run with --yes to delete")
			return nil
		}

		removed, err := s.ctl.Delete(id)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprintf(os.Stderr, "%s %s not found\n", s.def.Display.ItemName, id)
			os.Exit(exitUserError)
		}

		printStatus(s.ctl)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&flagYes, "yes", false, "confirm the deletion")
}
