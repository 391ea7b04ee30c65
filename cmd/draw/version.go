package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "draw %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
			return err
		},
	}
}
