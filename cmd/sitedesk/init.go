// Init command for the sitedesk CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/internal/seed"
	"github.com/sitedesk/sitedesk/pkg/entity"
)

var flagSeed bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize sitedesk storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if flagSeed {
			reg, err := loadRegistry()
			if err != nil {
				fmt.Fprintln(os.Stderr, "init:", err)
				os.Exit(exitSysError)
			}
			open := func(def entity.Definition) entity.Store {
				return backend.Store(def.Name, def.Schema)
			}
			if err := seed.Apply(reg, open); err != nil {
				fmt.Fprintln(os.Stderr, "init:", err)
				os.Exit(exitSysError)
			}
		}

		fmt.Println("Sitedesk initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		if flagSeed {
			fmt.Println("  sample data loaded")
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&flagSeed, "seed", false, "load sample records into empty entities")
}
