// Package processor contains the per-row orchestration: fetch the three
// objects a dispatch row addresses, invoke the validator against them and
// map the outcome to a result record. Every failure mode is contained at
// the row boundary.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/turbot/go-kit/helpers"

	"github.com/helixbio/validate-worker/fetcher"
	"github.com/helixbio/validate-worker/types"
	"github.com/helixbio/validate-worker/validator"
)

// RowProcessor processes one dispatch row at a time. It never returns an
// error - any failure while processing a row is converted into a fail
// record for that row.
type RowProcessor struct {
	fetcher   *fetcher.Fetcher
	validator *validator.Validator

	// ScratchRoot is the parent directory for per-row scratch dirs. Empty
	// means the system temp dir.
	ScratchRoot string
}

func NewRowProcessor(f *fetcher.Fetcher, v *validator.Validator) *RowProcessor {
	return &RowProcessor{
		fetcher:   f,
		validator: v,
	}
}

// ProcessRow fetches the row's three objects into a scoped scratch dir,
// runs the validator and returns exactly one result record. The scratch
// dir and its contents are removed on every exit path, before the record
// is returned.
func (p *RowProcessor) ProcessRow(ctx context.Context, row *types.DispatchRow) (result *types.ResultRecord) {
	slog.Info("Processing dispatch row", "sequence_path", row.SequencePath)

	// nothing may escape the row boundary
	defer func() {
		if r := recover(); r != nil {
			slog.Error("row processing panic", "sequence_path", row.SequencePath, "error", r)
			result = types.NewFailRecord(row.SequencePath, -1, helpers.ToError(r).Error())
		}
	}()

	scratchDir, err := os.MkdirTemp(p.ScratchRoot, "validate-row-")
	if err != nil {
		return types.NewFailRecord(row.SequencePath, -1, fmt.Sprintf("failed to create scratch dir: %s", err))
	}
	defer os.RemoveAll(scratchDir)

	// fetch the three objects in fixed order; the first failure fails the
	// row and the remaining fetches are skipped
	var localPaths []string
	for _, loc := range []string{row.SequencePath, row.LabelPath, row.ThirdDataPath} {
		localPath, err := p.fetcher.Fetch(ctx, loc, scratchDir)
		if err != nil {
			slog.Error("fetch failed", "sequence_path", row.SequencePath, "error", err)
			return types.NewFailRecord(row.SequencePath, -1, err.Error())
		}
		localPaths = append(localPaths, localPath)
	}

	outcome, err := p.validator.Run(ctx, localPaths[0], localPaths[1], localPaths[2])
	if err != nil {
		slog.Error("validator invocation failed", "sequence_path", row.SequencePath, "error", err)
		return types.NewFailRecord(row.SequencePath, -1, err.Error())
	}

	if outcome.TimedOut {
		return types.NewFailRecord(row.SequencePath, -1,
			fmt.Sprintf("validation timed out after %s", p.validator.Timeout()))
	}

	if outcome.ExitCode != 0 {
		return types.NewFailRecord(row.SequencePath, outcome.ExitCode, strings.TrimSpace(outcome.Stderr))
	}

	return types.NewPassRecord(row.SequencePath, strings.TrimSpace(outcome.Stdout))
}
