package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixbio/validate-worker/grpc/proto"
)

func writeDispatchFile(t *testing.T, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "dispatch.csv")
	assert.NoError(t, os.WriteFile(p, []byte(contents), 0644))
	return p
}

func Test_readDispatchFile(t *testing.T) {
	p := writeDispatchFile(t, `sequence_path,label_path,third_data_path
s3://h/containers/c/paths/a.fa,s3://h/containers/c/paths/a.lbl,s3://h/containers/c/paths/a.dat
s3://h/containers/c/paths/b.fa,s3://h/containers/c/paths/b.lbl,s3://h/containers/c/paths/b.dat
`)

	rows, err := readDispatchFile(p)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "s3://h/containers/c/paths/a.fa", rows[0].SequencePath)
	assert.Equal(t, "s3://h/containers/c/paths/b.dat", rows[1].ThirdDataPath)
}

func Test_readDispatchFile_ExtraColumnsIgnored(t *testing.T) {
	p := writeDispatchFile(t, `batch_id,third_data_path,sequence_path,label_path
7,s3://h/containers/c/paths/a.dat,s3://h/containers/c/paths/a.fa,s3://h/containers/c/paths/a.lbl
`)

	rows, err := readDispatchFile(p)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "s3://h/containers/c/paths/a.fa", rows[0].SequencePath)
	assert.Equal(t, "s3://h/containers/c/paths/a.lbl", rows[0].LabelPath)
	assert.Equal(t, "s3://h/containers/c/paths/a.dat", rows[0].ThirdDataPath)
}

func Test_readDispatchFile_MissingColumn(t *testing.T) {
	p := writeDispatchFile(t, `sequence_path,label_path
a,b
`)

	_, err := readDispatchFile(p)

	assert.ErrorContains(t, err, "third_data_path")
}

func Test_writeResultFile(t *testing.T) {
	var buf bytes.Buffer
	results := []*proto.ResultRecord{
		{SequencePath: "s3://h/containers/c/paths/a.fa", Status: "pass", ExitCode: 0, Message: "ok"},
		{SequencePath: "s3://h/containers/c/paths/b.fa", Status: "fail", ExitCode: 2, Message: "no match"},
	}

	assert.NoError(t, writeResultFile(&buf, results))

	assert.Equal(t, `sequence_path,status,exit_code,message
s3://h/containers/c/paths/a.fa,pass,0,ok
s3://h/containers/c/paths/b.fa,fail,2,no match
`, buf.String())
}
