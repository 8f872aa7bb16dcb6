package shared

import (
	"context"

	"github.com/helixbio/validate-worker/grpc/proto"
)

// ValidateWorkerClientWrapper is an implementation of ValidateWorkerClient that talks over GRPC.
type ValidateWorkerClientWrapper struct{ client proto.ValidateWorkerClient }

func (c *ValidateWorkerClientWrapper) AddObserver() (proto.ValidateWorker_AddObserverClient, error) {
	return c.client.AddObserver(context.Background(), &proto.AddObserverRequest{})
}

func (c *ValidateWorkerClientWrapper) RunBatch(req *proto.RunBatchRequest) (*proto.RunBatchResponse, error) {
	return c.client.RunBatch(context.Background(), req)
}

func (c *ValidateWorkerClientWrapper) Describe() (*proto.DescribeResponse, error) {
	return c.client.Describe(context.Background(), &proto.DescribeRequest{})
}

// ValidateWorkerServerWrapper is the gRPC server that ValidateWorkerClient talks to.
type ValidateWorkerServerWrapper struct {
	proto.UnimplementedValidateWorkerServer
	// Impl is the real implementation
	Impl ValidateWorkerServer
}

func (s *ValidateWorkerServerWrapper) AddObserver(_ *proto.AddObserverRequest, server proto.ValidateWorker_AddObserverServer) error {
	return s.Impl.AddObserver(server)
}

func (s *ValidateWorkerServerWrapper) RunBatch(ctx context.Context, req *proto.RunBatchRequest) (*proto.RunBatchResponse, error) {
	// validate the request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.Impl.RunBatch(ctx, req)
}

func (s *ValidateWorkerServerWrapper) Describe(_ context.Context, _ *proto.DescribeRequest) (*proto.DescribeResponse, error) {
	return s.Impl.Describe()
}
