// Package plugin serves the worker as a go-plugin GRPC service and hosts
// the worker implementation the service delegates to.
package plugin

import (
	"context"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"

	"log/slog"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
	"github.com/turbot/go-kit/helpers"
	"google.golang.org/grpc"

	"github.com/helixbio/validate-worker/grpc/shared"
	"github.com/helixbio/validate-worker/logging"
)

// ServeOpts are the configurations to serve the worker.
type ServeOpts struct {
	Worker ValidateWorker
}

const WorkerStartupFailureMessage = "Worker startup failed: "

// Serve creates and starts the GRPC server which serves the worker. It is
// called from the main function of the worker binary.
func Serve(opts *ServeOpts) error {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("%s%s", WorkerStartupFailureMessage, helpers.ToError(r).Error())
			// write to stdout so the host runtime can extract the error message
			fmt.Println(msg)
		}
	}()

	w := opts.Worker

	// initialize logger
	logging.Initialize(w.Identifier())

	ctx := context.Background()
	if err := w.Init(ctx); err != nil {
		return err
	}
	// shutdown the worker when done
	defer func() {
		if err := w.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown worker", "error", err)
		}
	}()

	if _, found := os.LookupEnv("VALIDATE_WORKER_PPROF"); found {
		setupPprof()
	}

	pluginMap := map[string]plugin.Plugin{
		w.Identifier(): &shared.ValidateWorkerGRPCPlugin{Impl: NewWorkerServer(w)},
	}
	plugin.Serve(&plugin.ServeConfig{
		Plugins:         pluginMap,
		GRPCServer:      newGRPCServer,
		HandshakeConfig: shared.Handshake,
		// disable server logging
		Logger: hclog.New(&hclog.LoggerOptions{Level: hclog.Off}),
	})
	return nil
}

func newGRPCServer(options []grpc.ServerOption) *grpc.Server {
	return grpc.NewServer(options...)
}

func setupPprof() {
	go func() {
		listener, err := net.Listen("tcp", "localhost:0")
		if err != nil {
			slog.Error("Error starting pprof", "error", err)
			return
		}
		slog.Info("pprof listening", "addr", listener.Addr().String())
		if err := http.Serve(listener, nil); err != nil {
			slog.Error("Error starting pprof", "error", err)
		}
	}()
}
