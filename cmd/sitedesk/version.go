// Version command for the sitedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitedesk/sitedesk/pkg/sitedesk"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sitedesk version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sitedesk", sitedesk.Version)
	},
}
