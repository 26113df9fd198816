package execute

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCommandWithContext(t *testing.T) {
	requireShell(t)

	res := CommandWithContext(t.Context(), "sh", "-c", "echo out; echo err >&2")
	require.True(t, res.Success(), res.String())
	assert.Equal(t, "out\n", string(res.Stdout))
	assert.Equal(t, "err\n", string(res.Stderr))
	assert.NoError(t, res.AsError())
}

func TestCommandExitCode(t *testing.T) {
	requireShell(t)

	res := CommandWithContext(t.Context(), "sh", "-c", "echo nope >&2; exit 3")
	assert.False(t, res.Success())
	assert.Equal(t, 3, res.ExitCode)

	err := res.AsError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit code 3")
	assert.Contains(t, err.Error(), "nope")

	var ee *exec.ExitError
	assert.ErrorAs(t, err, &ee)
}

func TestCommandErrors(t *testing.T) {
	res := CommandWithContext(t.Context(), "")
	assert.ErrorIs(t, res.Err, ErrEmptyCommand)
	assert.Equal(t, -1, res.ExitCode)

	res = CommandWithContext(nil, "true")
	assert.ErrorIs(t, res.Err, ErrNilContext)
}

func TestCommandTimeout(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	res := CommandWithContext(ctx, "sh", "-c", "sleep 5")
	assert.ErrorIs(t, res.Err, ErrTimeout)
	assert.Equal(t, -1, res.ExitCode)
}
