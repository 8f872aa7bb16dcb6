package plugin

import (
	"context"
	"fmt"

	"github.com/helixbio/validate-worker/events"
	"github.com/helixbio/validate-worker/grpc/proto"
)

// ObserverWrapper maps between the proto observer stream and the worker
// Observer interface.
type ObserverWrapper struct {
	protoObserver proto.ValidateWorker_AddObserverServer
}

func NewObserverWrapper(protoObserver proto.ValidateWorker_AddObserverServer) ObserverWrapper {
	return ObserverWrapper{protoObserver: protoObserver}
}

// Notify implements the Observer interface but sends to a proto stream
func (o ObserverWrapper) Notify(_ context.Context, e events.Event) error {
	if p, ok := e.(events.ProtoEvent); ok {
		return o.protoObserver.Send(p.ToProto())
	}
	return fmt.Errorf("event %v does not implement ProtoEvent", e)
}
