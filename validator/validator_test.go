package validator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// writeScript writes an executable shell script and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "validate.sh")
	assert.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"+body), 0755))
	return p
}

func touch(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(p, nil, 0644))
	return p
}

func Test_Run_Pass(t *testing.T) {
	script := writeScript(t, `echo "ok: $1 $2 $3"`)
	v := New(script, 10*time.Second)

	seq, label, aux := touch(t, "s.fa"), touch(t, "l.lbl"), touch(t, "a.dat")
	outcome, err := v.Run(context.Background(), seq, label, aux)
	assert.NoError(t, err)
	assert.Equal(t, 0, outcome.ExitCode)
	assert.False(t, outcome.TimedOut)
	// the three paths are passed positionally, in order
	assert.Contains(t, outcome.Stdout, seq+" "+label+" "+aux)
}

func Test_Run_NonZeroExit(t *testing.T) {
	script := writeScript(t, "echo 'bad data' >&2\nexit 3")
	v := New(script, 10*time.Second)

	outcome, err := v.Run(context.Background(), "s", "l", "a")
	assert.NoError(t, err)
	assert.Equal(t, 3, outcome.ExitCode)
	assert.False(t, outcome.TimedOut)
	assert.Contains(t, outcome.Stderr, "bad data")
}

func Test_Run_Timeout(t *testing.T) {
	script := writeScript(t, "sleep 10")
	v := New(script, 100*time.Millisecond)

	start := time.Now()
	outcome, err := v.Run(context.Background(), "s", "l", "a")
	assert.NoError(t, err)
	assert.True(t, outcome.TimedOut)
	assert.Equal(t, -1, outcome.ExitCode)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func Test_Run_MissingExecutable(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "no-such-validator"), 10*time.Second)

	_, err := v.Run(context.Background(), "s", "l", "a")
	assert.Error(t, err)
}

func Test_New_DefaultTimeout(t *testing.T) {
	v := New("/opt/validation/validate.sh", 0)
	assert.Equal(t, DefaultTimeout, v.Timeout())
}
