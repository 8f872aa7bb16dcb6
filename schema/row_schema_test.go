package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixbio/validate-worker/types"
)

func Test_Columns_ResultRecord(t *testing.T) {
	// the output column contract: fixed names, fixed order
	assert.Equal(t,
		[]string{"sequence_path", "status", "exit_code", "message"},
		Columns(types.ResultRecord{}))
}

func Test_Columns_UntaggedFieldsSnakeCased(t *testing.T) {
	type row struct {
		SequencePath string
		ExitCode     int
	}
	assert.Equal(t, []string{"sequence_path", "exit_code"}, Columns(row{}))
}

func Test_Values_AlignWithColumns(t *testing.T) {
	r := types.NewFailRecord("s3://x/containers/a/paths/s.fa", 3, "bad data")
	values := Values(r)
	assert.Len(t, values, len(Columns(r)))
	assert.Equal(t, []string{"s3://x/containers/a/paths/s.fa", "fail", "3", "bad data"}, values)
}
