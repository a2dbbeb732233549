package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "returnfilers",
		Short:         "ReturnFilers site API: settings, theming and lead capture",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or JSON config file")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newSettingsCmd(flags))
	cmd.AddCommand(newColorsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
