package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{320 * KB, "320 KB"},
		{MB, "1 MB"},
		{GB + GB/2, "1.50 GB"},
		{16 * GB, "16 GB"},
		{3 * TB, "3 TB"},
		{2048 * TB, "2 PB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanSize(tt.in))
		})
	}
}

func TestCombineErrors(t *testing.T) {
	assert.NoError(t, CombineErrors(nil))
	assert.NoError(t, CombineErrors([]error{nil, nil}))

	e1 := errors.New("one")
	assert.Same(t, e1, CombineErrors([]error{nil, e1}))

	e2 := errors.New("two")
	err := CombineErrors([]error{e1, e2})
	require.Error(t, err)
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))

	assert.True(t, FileExists(p))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(""))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}
