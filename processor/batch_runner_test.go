package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixbio/validate-worker/context_values"
	"github.com/helixbio/validate-worker/events"
	"github.com/helixbio/validate-worker/types"
)

// capturingObserver snapshots the counts of each status event at notify
// time - the runner mutates and resends the same status instance.
type capturingObserver struct {
	rowEvents      []*events.RowProcessed
	statusTallies  [][3]int
	completeEvents []*events.Complete
}

func (o *capturingObserver) Notify(_ context.Context, event events.Event) error {
	switch e := event.(type) {
	case *events.RowProcessed:
		o.rowEvents = append(o.rowEvents, e)
	case *events.Status:
		o.statusTallies = append(o.statusTallies, [3]int{e.RowsProcessed, e.RowsPassed, e.RowsFailed})
	case *events.Complete:
		o.completeEvents = append(o.completeEvents, e)
	}
	return nil
}

func newBatchFixture(t *testing.T) (*testFixture, *BatchRunner, *capturingObserver) {
	t.Helper()
	f := newFixture(t, standardObjects)
	p := NewRowProcessor(f.fetcher, writeValidator(t, `grep -q ACGT "$1" && echo "ok" || { echo "no match" >&2; exit 2; }`))
	p.ScratchRoot = f.scratchRoot
	runner := NewBatchRunner(p)
	observer := &capturingObserver{}
	assert.NoError(t, runner.AddObserver(observer))
	return f, runner, observer
}

func Test_BatchRunner_OrderAndIsolation(t *testing.T) {
	f, runner, _ := newBatchFixture(t)

	rows := []*types.DispatchRow{
		standardRow(f),
		// label object does not exist; this row fails without touching the rest
		{
			SequencePath:  f.mkLocator("sample.fa"),
			LabelPath:     f.mkLocator("missing.lbl"),
			ThirdDataPath: f.mkLocator("sample.dat"),
		},
		standardRow(f),
	}

	ctx := context_values.WithExecutionId(context.Background(), "exec-1")
	results := runner.Run(ctx, rows)

	assert.Len(t, results, len(rows))
	for i, result := range results {
		assert.Equal(t, rows[i].SequencePath, result.SequencePath)
	}

	assert.Equal(t, types.StatusPass, results[0].Status)
	assert.Equal(t, types.StatusFail, results[1].Status)
	assert.Equal(t, -1, results[1].ExitCode)
	assert.Equal(t, types.StatusPass, results[2].Status)
}

func Test_BatchRunner_StatusIffZeroExit(t *testing.T) {
	f := newFixture(t, standardObjects)
	p := NewRowProcessor(f.fetcher, writeValidator(t, `[ -s "$2" ] || exit 7
echo "ok"`))
	p.ScratchRoot = f.scratchRoot
	runner := NewBatchRunner(p)

	results := runner.Run(context.Background(), []*types.DispatchRow{standardRow(f)})

	assert.Len(t, results, 1)
	for _, result := range results {
		if result.ExitCode == 0 {
			assert.Equal(t, types.StatusPass, result.Status)
		} else {
			assert.Equal(t, types.StatusFail, result.Status)
		}
	}
}

func Test_BatchRunner_Events(t *testing.T) {
	f, runner, observer := newBatchFixture(t)

	rows := []*types.DispatchRow{
		standardRow(f),
		{
			SequencePath:  f.mkLocator("sample.fa"),
			LabelPath:     f.mkLocator("missing.lbl"),
			ThirdDataPath: f.mkLocator("sample.dat"),
		},
	}

	ctx := context_values.WithExecutionId(context.Background(), "exec-2")
	runner.Run(ctx, rows)

	assert.Len(t, observer.rowEvents, 2)
	assert.Equal(t, "exec-2", observer.rowEvents[0].ExecutionId)
	assert.Equal(t, types.StatusPass, observer.rowEvents[0].Result.Status)
	assert.Equal(t, types.StatusFail, observer.rowEvents[1].Result.Status)

	assert.Equal(t, [][3]int{{1, 1, 0}, {2, 1, 1}}, observer.statusTallies)

	assert.Len(t, observer.completeEvents, 1)
	assert.Equal(t, 2, observer.completeEvents[0].RowCount)
	assert.NoError(t, observer.completeEvents[0].Err)
}

func Test_BatchRunner_EmptyBatch(t *testing.T) {
	_, runner, observer := newBatchFixture(t)

	results := runner.Run(context.Background(), nil)

	assert.Empty(t, results)
	assert.Empty(t, observer.rowEvents)
	assert.Len(t, observer.completeEvents, 1)
	assert.Equal(t, 0, observer.completeEvents[0].RowCount)
}
