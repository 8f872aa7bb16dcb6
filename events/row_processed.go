package events

import (
	"github.com/helixbio/validate-worker/grpc/proto"
	"github.com/helixbio/validate-worker/types"
)

// RowProcessed carries the result record of one completed dispatch row.
type RowProcessed struct {
	Base
	ExecutionId string
	Result      *types.ResultRecord
}

func NewRowProcessedEvent(executionId string, result *types.ResultRecord) *RowProcessed {
	return &RowProcessed{
		ExecutionId: executionId,
		Result:      result,
	}
}

func (r *RowProcessed) ToProto() *proto.Event {
	return proto.NewRowProcessedEvent(r.ExecutionId, r.Result.ToProto())
}
