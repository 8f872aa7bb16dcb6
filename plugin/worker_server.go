package plugin

import (
	"context"

	"github.com/helixbio/validate-worker/grpc/proto"
	"github.com/helixbio/validate-worker/schema"
	"github.com/helixbio/validate-worker/types"
)

// WorkerServer wraps the worker implementation for the GRPC interface.
// AddObserver has a different signature on each side - the wrapping lets
// worker components publish plain events without knowing about GRPC.
type WorkerServer struct {
	impl ValidateWorker
}

func NewWorkerServer(impl ValidateWorker) *WorkerServer {
	return &WorkerServer{impl: impl}
}

func (s *WorkerServer) AddObserver(stream proto.ValidateWorker_AddObserverServer) error {
	// wrap the stream in an ObserverWrapper to map between worker events and proto events
	if err := s.impl.AddObserver(NewObserverWrapper(stream)); err != nil {
		return err
	}

	// hold stream open
	<-stream.Context().Done()

	return stream.Context().Err()
}

func (s *WorkerServer) RunBatch(ctx context.Context, req *proto.RunBatchRequest) (*proto.RunBatchResponse, error) {
	return s.impl.RunBatch(ctx, req)
}

// Describe reports the worker identifier and the columns of the result
// table, in output order.
func (s *WorkerServer) Describe() (*proto.DescribeResponse, error) {
	return &proto.DescribeResponse{
		Identifier:    s.impl.Identifier(),
		ResultColumns: schema.Columns(types.ResultRecord{}),
	}, nil
}
