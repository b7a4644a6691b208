// Package cli wires the command line: the HTTP server plus small offline
// helpers that share the same store and computation code.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appVersion = "1.0.0"

func NewRootCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:           "station-attendance",
		Short:         "Station attendance API and monthly overtime tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("station-attendance v{{.Version}}\n")
	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides PORT)")

	cmd.AddCommand(newServeCommand(), newHoursCommand(), newExportCommand())
	return cmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
