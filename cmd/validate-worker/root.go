package main

import (
	"github.com/spf13/cobra"
)

var exitCode int

// configPath is shared by the serve and run commands.
var configPath string

// Build the cobra command that handles our command line tool.
func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "validate-worker COMMAND [args]",
		Short: "Batch validation worker",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the worker config file")

	rootCmd.AddCommand(
		serveCmd(),
		runCmd(),
	)

	return rootCmd
}

func Execute() int {
	rootCmd := rootCommand()

	if err := rootCmd.Execute(); err != nil {
		exitCode = -1
	}
	return exitCode
}
