package shared

import (
	"context"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"

	"github.com/helixbio/validate-worker/grpc/proto"
)

// Handshake is a common handshake that is shared by worker and host.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "VALIDATE_WORKER",
	MagicCookieValue: "validate worker",
}

// ValidateWorkerServer is the service interface the worker exposes to the
// host runtime.
type ValidateWorkerServer interface {
	AddObserver(stream proto.ValidateWorker_AddObserverServer) error
	RunBatch(ctx context.Context, req *proto.RunBatchRequest) (*proto.RunBatchResponse, error)
	Describe() (*proto.DescribeResponse, error)
}

// ValidateWorkerClient is the client interface the host uses to talk to
// the worker.
type ValidateWorkerClient interface {
	AddObserver() (proto.ValidateWorker_AddObserverClient, error)
	RunBatch(req *proto.RunBatchRequest) (*proto.RunBatchResponse, error)
	Describe() (*proto.DescribeResponse, error)
}

// ValidateWorkerGRPCPlugin is the implementation of plugin.GRPCPlugin so we can serve/consume this.
type ValidateWorkerGRPCPlugin struct {
	// GRPCPlugin must still implement the Plugin interface
	plugin.Plugin
	// Impl is the concrete worker implementation.
	Impl ValidateWorkerServer
}

func (p *ValidateWorkerGRPCPlugin) GRPCServer(broker *plugin.GRPCBroker, s *grpc.Server) error {
	proto.RegisterValidateWorkerServer(s, &ValidateWorkerServerWrapper{Impl: p.Impl})
	return nil
}

func (p *ValidateWorkerGRPCPlugin) GRPCClient(ctx context.Context, broker *plugin.GRPCBroker, c *grpc.ClientConn) (interface{}, error) {
	return &ValidateWorkerClientWrapper{client: proto.NewValidateWorkerClient(c)}, nil
}
