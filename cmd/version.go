package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dockhand",
		Long:  `All software has versions. This is dockhand's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// The version template in root.go handles --version; this
			// explicit subcommand is the conventional spelling.
			fmt.Printf("dockhand version %s\n", rootCmd.Version)
		},
	}
}
