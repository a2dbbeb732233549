package main

import (
	"fmt"

	"returnfilers/pkg/handlers"

	"github.com/spf13/cobra"
)

var (
	commit = "none"
	date   = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\ncommit: %s\nbuilt: %s\n", handlers.ServiceName, handlers.Version, commit, date)
			return nil
		},
	}
}
