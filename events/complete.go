package events

import "github.com/helixbio/validate-worker/grpc/proto"

// Complete signals that every row of the batch has produced a result
// record. Err is always nil in normal operation - row failures are
// reported through their result records, not here.
type Complete struct {
	Base
	ExecutionId string
	RowCount    int
	Err         error
}

func NewCompletedEvent(executionId string, rowCount int, err error) *Complete {
	return &Complete{
		ExecutionId: executionId,
		RowCount:    rowCount,
		Err:         err,
	}
}

func (c *Complete) ToProto() *proto.Event {
	return proto.NewCompleteEvent(c.ExecutionId, c.RowCount, c.Err)
}
