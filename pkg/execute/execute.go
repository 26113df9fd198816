package execute

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
)

var (
	ErrEmptyCommand = errors.New("execute: empty command")
	ErrTimeout      = errors.New("execute: command timed out")
	ErrCanceled     = errors.New("execute: command canceled")
	ErrNilContext   = errors.New("execute: context cannot be nil")
)

type ExecResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int // -1 when the process did not exit normally
	Err      error
}

func (r *ExecResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

func (r *ExecResult) String() string {
	return fmt.Sprintf("ExecResult{ExitCode: %d, Stdout: %d bytes, Stderr: %d bytes, Err: %v}",
		r.ExitCode, len(r.Stdout), len(r.Stderr), r.Err)
}

func (r *ExecResult) Error() string {
	stderr := bytes.TrimSpace(r.Stderr)
	switch {
	case r.Err != nil && len(stderr) > 0:
		return fmt.Sprintf("exit code %d: %v: %s", r.ExitCode, r.Err, stderr)
	case r.Err != nil:
		return fmt.Sprintf("exit code %d: %v", r.ExitCode, r.Err)
	case r.ExitCode != 0:
		return fmt.Sprintf("exit code %d: %s", r.ExitCode, stderr)
	}
	return ""
}

func (r *ExecResult) Unwrap() error {
	return r.Err
}

// AsError returns r as an error when the command failed, nil otherwise.
func (r *ExecResult) AsError() error {
	if r.Success() {
		return nil
	}
	return r
}

func CommandWithContext(ctx context.Context, name string, args ...string) *ExecResult {
	result := &ExecResult{ExitCode: -1}

	if name == "" {
		result.Err = ErrEmptyCommand
		return result
	}

	if ctx == nil {
		result.Err = ErrNilContext
		return result
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()
	result.ExitCode = extractExitCode(err)
	result.Err = wrapError(ctx, err)

	return result
}

func extractExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return status.ExitStatus()
		}
	}

	return -1
}

func wrapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.Is(ctx.Err(), context.Canceled):
		return fmt.Errorf("%w: %v", ErrCanceled, err)
	default:
		return err
	}
}
