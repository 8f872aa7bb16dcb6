package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/helixbio/validate-worker/grpc/proto"
	"github.com/helixbio/validate-worker/logging"
	"github.com/helixbio/validate-worker/plugin"
	"github.com/helixbio/validate-worker/schema"
	"github.com/helixbio/validate-worker/types"
)

func runCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "run DISPATCH_FILE",
		Short: "Process a dispatch CSV locally and write the result table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatchFile(cmd, args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "result file (default stdout)")

	return cmd
}

func runBatchFile(cmd *cobra.Command, dispatchPath, outputPath string) error {
	logging.Initialize(workerIdentifier)

	rows, err := readDispatchFile(dispatchPath)
	if err != nil {
		return err
	}

	w := plugin.NewWorkerImpl(workerIdentifier, configPath)
	ctx := cmd.Context()
	if err := w.Init(ctx); err != nil {
		return err
	}
	defer func() { _ = w.Shutdown(ctx) }()

	resp, err := w.RunBatch(ctx, &proto.RunBatchRequest{
		ExecutionId: "local",
		Rows:        rows,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return writeResultFile(out, resp.Results)
}

// readDispatchFile reads the dispatch CSV. The three locator columns are
// required; any other columns are ignored.
func readDispatchFile(dispatchPath string) ([]*proto.DispatchRow, error) {
	f, err := os.Open(dispatchPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dispatch file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dispatch header: %w", err)
	}

	columnIndex := make(map[string]int, len(header))
	for i, name := range header {
		columnIndex[name] = i
	}
	required := []string{"sequence_path", "label_path", "third_data_path"}
	for _, name := range required {
		if _, ok := columnIndex[name]; !ok {
			return nil, fmt.Errorf("dispatch file missing required column %q", name)
		}
	}

	var rows []*proto.DispatchRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dispatch row: %w", err)
		}
		rows = append(rows, &proto.DispatchRow{
			SequencePath:  record[columnIndex["sequence_path"]],
			LabelPath:     record[columnIndex["label_path"]],
			ThirdDataPath: record[columnIndex["third_data_path"]],
		})
	}
	return rows, nil
}

func writeResultFile(out io.Writer, results []*proto.ResultRecord) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(schema.Columns(types.ResultRecord{})); err != nil {
		return err
	}
	for _, result := range results {
		record := types.ResultRecordFromProto(result)
		if err := writer.Write(schema.Values(*record)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
