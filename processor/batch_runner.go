package processor

import (
	"context"
	"log/slog"

	"github.com/helixbio/validate-worker/context_values"
	"github.com/helixbio/validate-worker/events"
	"github.com/helixbio/validate-worker/observable"
	"github.com/helixbio/validate-worker/types"
)

// BatchRunner iterates the rows of one dispatch batch through the row
// processor. Rows are processed strictly sequentially - the store registry
// reuses client handles without synchronisation - and the output always
// has the same length and order as the input.
type BatchRunner struct {
	observable.ObservableImpl

	processor *RowProcessor
}

func NewBatchRunner(processor *RowProcessor) *BatchRunner {
	return &BatchRunner{
		processor: processor,
	}
}

// Run processes the batch and returns one result record per input row.
// A row's failure never affects any other row and never aborts the batch.
func (r *BatchRunner) Run(ctx context.Context, rows []*types.DispatchRow) []*types.ResultRecord {
	executionId, _ := context_values.ExecutionIdFromContext(ctx)

	status := events.NewStatusEvent(executionId)
	results := make([]*types.ResultRecord, 0, len(rows))

	for _, row := range rows {
		result := r.processor.ProcessRow(ctx, row)
		results = append(results, result)

		rowEvent := events.NewRowProcessedEvent(executionId, result)
		status.Update(rowEvent)
		if err := r.NotifyObservers(ctx, rowEvent); err != nil {
			slog.Warn("error notifying observers of processed row", "error", err)
		}
		if err := r.NotifyObservers(ctx, status); err != nil {
			slog.Warn("error notifying observers of status", "error", err)
		}
	}

	if err := r.NotifyObservers(ctx, events.NewCompletedEvent(executionId, len(results), nil)); err != nil {
		slog.Warn("error notifying observers of completion", "error", err)
	}

	return results
}
