package events

import "github.com/helixbio/validate-worker/grpc/proto"

type Event interface {
	IsEvent()
}

// ProtoEvent is implemented by events which can be sent to the host
// runtime over the observer stream.
type ProtoEvent interface {
	ToProto() *proto.Event
}

type Base struct {
}

func (b *Base) IsEvent() {}
