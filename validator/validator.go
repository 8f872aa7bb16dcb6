// Package validator invokes the external validation executable as a
// bounded-duration subprocess.
package validator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultTimeout is the wall-clock bound applied to one validator
// invocation when no timeout is configured.
const DefaultTimeout = 600 * time.Second

// Outcome is the result of a completed validator invocation. TimedOut is
// set when the process was killed for exceeding the time bound, in which
// case ExitCode is -1.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// Validator runs the external validation executable. The invocation
// convention is fixed by the deployment image: a single call with three
// positional arguments - sequence file, label file, auxiliary-data file -
// exiting 0 on success.
type Validator struct {
	command string
	timeout time.Duration
}

func New(command string, timeout time.Duration) *Validator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Validator{command: command, timeout: timeout}
}

func (v *Validator) Command() string {
	return v.command
}

func (v *Validator) Timeout() time.Duration {
	return v.timeout
}

// Run invokes the validator against the three local files, capturing
// stdout and stderr. A non-zero exit is not an error - it is reported
// through the Outcome. An error return means the process could not be run
// at all (e.g. the executable is missing).
func (v *Validator) Run(ctx context.Context, sequencePath, labelPath, auxPath string) (*Outcome, error) {
	runCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, v.command, sequencePath, labelPath, auxPath)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	outcome := &Outcome{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		// the deadline firing kills the process and surfaces as a run
		// error; distinguish it from a real non-zero exit
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			outcome.ExitCode = -1
			outcome.TimedOut = true
			return outcome, nil
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
			return outcome, nil
		}

		return nil, fmt.Errorf("failed to invoke validator %s: %w", v.command, err)
	}

	return outcome, nil
}
