package events

import "github.com/helixbio/validate-worker/grpc/proto"

// Started signals that batch processing has begun.
type Started struct {
	Base
	ExecutionId string
}

func NewStartedEvent(executionId string) *Started {
	return &Started{
		ExecutionId: executionId,
	}
}

func (s *Started) ToProto() *proto.Event {
	return proto.NewStartedEvent(s.ExecutionId)
}
