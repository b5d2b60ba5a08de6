package cmd

import (
	serviceInfo "github.com/hmartiniano/variant-catalog/models/constants/service-info"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of catalogctl",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("catalogctl %s\n", serviceInfo.SERVICE_VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
