package main

import (
	"github.com/spf13/cobra"

	"github.com/helixbio/validate-worker/plugin"
)

const workerIdentifier = "validate-worker"

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the worker over GRPC for a host runtime",
		RunE: func(cmd *cobra.Command, args []string) error {
			return plugin.Serve(&plugin.ServeOpts{
				Worker: plugin.NewWorkerImpl(workerIdentifier, configPath),
			})
		},
	}
}
