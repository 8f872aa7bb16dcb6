package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixbio/validate-worker/types"
)

func Test_Status_Update(t *testing.T) {
	status := NewStatusEvent("exec-1")

	status.Update(NewRowProcessedEvent("exec-1", types.NewPassRecord("s3://h/containers/c/paths/a.fa", "ok")))
	status.Update(NewRowProcessedEvent("exec-1", types.NewFailRecord("s3://h/containers/c/paths/b.fa", 2, "no match")))
	status.Update(NewRowProcessedEvent("exec-1", types.NewFailRecord("s3://h/containers/c/paths/c.fa", -1, "fetch failed")))

	assert.Equal(t, 3, status.RowsProcessed)
	assert.Equal(t, 1, status.RowsPassed)
	assert.Equal(t, 2, status.RowsFailed)
}

func Test_Status_Equals(t *testing.T) {
	a := NewStatusEvent("exec-1")
	b := NewStatusEvent("exec-2")
	assert.True(t, a.Equals(b))

	b.Update(NewRowProcessedEvent("exec-2", types.NewPassRecord("s3://h/containers/c/paths/a.fa", "ok")))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
}

func Test_Status_ToProto(t *testing.T) {
	status := NewStatusEvent("exec-1")
	status.Update(NewRowProcessedEvent("exec-1", types.NewPassRecord("s3://h/containers/c/paths/a.fa", "ok")))

	p := status.ToProto().GetStatusEvent()
	assert.Equal(t, int64(1), p.RowsProcessed)
	assert.Equal(t, int64(1), p.RowsPassed)
	assert.Equal(t, int64(0), p.RowsFailed)
}
