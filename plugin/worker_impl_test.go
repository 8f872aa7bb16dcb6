package plugin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixbio/validate-worker/events"
	"github.com/helixbio/validate-worker/grpc/proto"
	"github.com/helixbio/validate-worker/types"
)

func newTestWorker(t *testing.T, validatorBody string) (*WorkerImpl, func(string) string) {
	t.Helper()

	root := t.TempDir()
	for p, contents := range map[string]string{
		"sample.fa":  "ACGT",
		"sample.lbl": "labels",
		"sample.dat": "aux",
	} {
		assert.NoError(t, os.MkdirAll(filepath.Join(root, "refs"), 0755))
		assert.NoError(t, os.WriteFile(filepath.Join(root, "refs", p), []byte(contents), 0644))
	}

	script := filepath.Join(t.TempDir(), "validate.sh")
	assert.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"+validatorBody), 0755))

	configPath := filepath.Join(t.TempDir(), "worker.hcl")
	hclBody := fmt.Sprintf(`
validator_command      = %q
validator_timeout_secs = 5

connections {
  file_store_root = %q
}
`, script, root)
	assert.NoError(t, os.WriteFile(configPath, []byte(hclBody), 0644))

	w := NewWorkerImpl("validate-worker-test", configPath)
	assert.NoError(t, w.Init(context.Background()))
	t.Cleanup(func() { _ = w.Shutdown(context.Background()) })

	mkLocator := func(objectPath string) string {
		return fmt.Sprintf("file://localhost/containers/refs/paths/%s", objectPath)
	}
	return w, mkLocator
}

type recordingObserver struct {
	events []events.Event
}

func (o *recordingObserver) Notify(_ context.Context, event events.Event) error {
	o.events = append(o.events, event)
	return nil
}

func Test_WorkerImpl_RunBatch(t *testing.T) {
	w, mkLocator := newTestWorker(t, `echo "ok"`)
	observer := &recordingObserver{}
	assert.NoError(t, w.AddObserver(observer))

	req := &proto.RunBatchRequest{
		ExecutionId: "exec-1",
		Rows: []*proto.DispatchRow{
			{
				SequencePath:  mkLocator("sample.fa"),
				LabelPath:     mkLocator("sample.lbl"),
				ThirdDataPath: mkLocator("sample.dat"),
			},
			{
				SequencePath:  mkLocator("sample.fa"),
				LabelPath:     mkLocator("missing.lbl"),
				ThirdDataPath: mkLocator("sample.dat"),
			},
		},
	}

	resp, err := w.RunBatch(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "exec-1", resp.ExecutionId)
	assert.Len(t, resp.Results, 2)
	assert.Equal(t, types.StatusPass, resp.Results[0].Status)
	assert.Equal(t, int32(0), resp.Results[0].ExitCode)
	assert.Equal(t, types.StatusFail, resp.Results[1].Status)
	assert.Equal(t, int32(-1), resp.Results[1].ExitCode)

	// started, then per row a row event and a status event, then complete
	var started, complete int
	for _, e := range observer.events {
		switch e.(type) {
		case *events.Started:
			started++
		case *events.Complete:
			complete++
		}
	}
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, complete)
	assert.Len(t, observer.events, 6)
}

func Test_WorkerImpl_RunBatchUninitialised(t *testing.T) {
	w := NewWorkerImpl("validate-worker-test", "")
	_, err := w.RunBatch(context.Background(), &proto.RunBatchRequest{})
	assert.Error(t, err)
}

func Test_WorkerServer_Describe(t *testing.T) {
	w, _ := newTestWorker(t, `echo "ok"`)
	s := NewWorkerServer(w)

	resp, err := s.Describe()

	assert.NoError(t, err)
	assert.Equal(t, "validate-worker-test", resp.Identifier)
	assert.Equal(t, []string{"sequence_path", "status", "exit_code", "message"}, resp.ResultColumns)
}
