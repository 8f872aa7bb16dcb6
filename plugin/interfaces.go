package plugin

import (
	"context"

	"github.com/helixbio/validate-worker/grpc/proto"
	"github.com/helixbio/validate-worker/observable"
)

// ValidateWorker is the interface the worker implementation must satisfy.
type ValidateWorker interface {
	// Identifier returns the worker name
	Identifier() string

	// AddObserver adds an observer to the worker to receive batch events
	AddObserver(observable.Observer) error

	// RunBatch processes one dispatch batch and returns one result record
	// per input row
	RunBatch(ctx context.Context, req *proto.RunBatchRequest) (*proto.RunBatchResponse, error)

	// Init loads the config and builds the processing pipeline
	Init(context.Context) error

	// Shutdown releases the store handles accumulated during processing
	Shutdown(context.Context) error
}
