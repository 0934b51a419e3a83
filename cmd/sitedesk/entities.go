// Entities command lists the registered entity types.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "List the registered entity types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		if flagJSON {
			type row struct {
				Name     string `json:"name"`
				Title    string `json:"title"`
				IDPrefix string `json:"id_prefix"`
			}
			var rows []row
			for _, name := range reg.Names() {
				def, err := reg.Get(name)
				if err != nil {
					return err
				}
				rows = append(rows, row{Name: def.Name, Title: def.Display.Title, IDPrefix: def.IDPrefix})
			}
			return printJSON(rows)
		}

		for _, name := range reg.Names() {
			def, err := reg.Get(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-15s %-25s prefix %s\n", def.Name, def.Display.Title, def.IDPrefix)
		}
		return nil
	},
}
