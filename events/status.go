package events

import (
	"github.com/helixbio/validate-worker/grpc/proto"
	"github.com/helixbio/validate-worker/types"
)

// Status is a running tally of row outcomes within one batch.
type Status struct {
	Base
	ExecutionId   string
	RowsProcessed int
	RowsPassed    int
	RowsFailed    int
}

func NewStatusEvent(executionId string) *Status {
	return &Status{
		ExecutionId: executionId,
	}
}

func (s *Status) ToProto() *proto.Event {
	return proto.NewStatusEvent(int64(s.RowsProcessed), int64(s.RowsPassed), int64(s.RowsFailed))
}

func (s *Status) Update(event Event) {
	switch e := event.(type) {
	case *RowProcessed:
		s.RowsProcessed++
		if e.Result.Status == types.StatusPass {
			s.RowsPassed++
		} else {
			s.RowsFailed++
		}
	}
}

func (s *Status) Equals(status *Status) bool {
	if status == nil {
		return false
	}

	return s.RowsProcessed == status.RowsProcessed &&
		s.RowsPassed == status.RowsPassed &&
		s.RowsFailed == status.RowsFailed
}
