package plugin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/helixbio/validate-worker/config"
	"github.com/helixbio/validate-worker/context_values"
	"github.com/helixbio/validate-worker/events"
	"github.com/helixbio/validate-worker/fetcher"
	"github.com/helixbio/validate-worker/grpc/proto"
	"github.com/helixbio/validate-worker/observable"
	"github.com/helixbio/validate-worker/processor"
	"github.com/helixbio/validate-worker/rate_limiter"
	"github.com/helixbio/validate-worker/store"
	"github.com/helixbio/validate-worker/types"
	"github.com/helixbio/validate-worker/validator"
)

// WorkerImpl should be created via NewWorkerImpl.
type WorkerImpl struct {
	observable.ObservableImpl

	identifier string
	configPath string

	workerConfig *config.WorkerConfig
	registry     *store.Registry
	runner       *processor.BatchRunner
}

func NewWorkerImpl(identifier, configPath string) *WorkerImpl {
	return &WorkerImpl{
		identifier: identifier,
		configPath: configPath,
	}
}

// Identifier returns the worker name
func (w *WorkerImpl) Identifier() string {
	return w.identifier
}

// Init implements [plugin.ValidateWorker]. It loads the config and builds
// the store registry, fetcher, validator and batch runner.
func (w *WorkerImpl) Init(context.Context) error {
	workerConfig, err := config.Load(w.configPath)
	if err != nil {
		return fmt.Errorf("failed to load worker config: %w", err)
	}
	w.workerConfig = workerConfig

	w.registry = store.NewRegistry(workerConfig.ConnectionConfig())

	var f *fetcher.Fetcher
	if workerConfig.Downloads != nil {
		limiter := rate_limiter.NewDownloadLimiter("downloads", workerConfig.Downloads)
		f = fetcher.NewWithLimiter(w.registry, limiter)
	} else {
		f = fetcher.New(w.registry)
	}

	v := validator.New(workerConfig.ValidatorCommand, workerConfig.ValidatorTimeout())

	rowProcessor := processor.NewRowProcessor(f, v)
	rowProcessor.ScratchRoot = workerConfig.ScratchRoot

	w.runner = processor.NewBatchRunner(rowProcessor)
	// forward batch events to the worker's own observers
	if err := w.runner.AddObserver(w); err != nil {
		return err
	}

	slog.Info("worker initialised",
		"identifier", w.identifier,
		"validator_command", workerConfig.ValidatorCommand,
		"validator_timeout", workerConfig.ValidatorTimeout())
	return nil
}

// Shutdown closes every store handle the registry accumulated.
func (w *WorkerImpl) Shutdown(context.Context) error {
	if w.registry != nil {
		w.registry.Clear()
	}
	return nil
}

// Notify implements [observable.Observer] - the worker observes its batch
// runner and republishes to the observers registered with the worker.
func (w *WorkerImpl) Notify(ctx context.Context, event events.Event) error {
	return w.NotifyObservers(ctx, event)
}

// RunBatch processes the request's rows and returns one result record per
// row, in input order.
func (w *WorkerImpl) RunBatch(ctx context.Context, req *proto.RunBatchRequest) (*proto.RunBatchResponse, error) {
	if w.runner == nil {
		return nil, fmt.Errorf("worker not initialised")
	}

	ctx = context_values.WithExecutionId(ctx, req.GetExecutionId())
	slog.Info("RunBatch", "execution_id", req.GetExecutionId(), "rows", len(req.GetRows()))

	if err := w.NotifyObservers(ctx, events.NewStartedEvent(req.GetExecutionId())); err != nil {
		slog.Warn("error notifying observers of batch start", "error", err)
	}

	rows := make([]*types.DispatchRow, 0, len(req.GetRows()))
	for _, p := range req.GetRows() {
		rows = append(rows, types.DispatchRowFromProto(p))
	}

	results := w.runner.Run(ctx, rows)

	resp := &proto.RunBatchResponse{
		ExecutionId: req.GetExecutionId(),
		Results:     make([]*proto.ResultRecord, 0, len(results)),
	}
	for _, result := range results {
		resp.Results = append(resp.Results, result.ToProto())
	}
	return resp, nil
}
