package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithax-cc/hwident/pkg/node"
)

type fakeCollector struct {
	name string
	err  error
	done bool
}

func (f *fakeCollector) Name() string { return f.name }

func (f *fakeCollector) Collect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.err != nil {
		return f.err
	}
	f.done = true
	return nil
}

func (f *fakeCollector) Node() *node.Node {
	n := node.New(f.name, node.Plain)
	n.Set("Name", f.name, 0)
	return n
}

func TestManagerCollect(t *testing.T) {
	boom := errors.New("boom")
	a := &fakeCollector{name: "cpuid"}
	b := &fakeCollector{name: "smbios", err: boom}

	m := NewManager(a, b)
	err := m.Collect(t.Context())
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "smbios: boom")
	assert.True(t, a.done)
	assert.Equal(t, 1, m.Collected())

	root := m.Node()
	assert.Equal(t, "hwident", root.Name)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "cpuid", root.Children[0].Name)
}

func TestManagerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	m := NewManager(&fakeCollector{name: "cpuid"})
	assert.ErrorIs(t, m.Collect(ctx), context.Canceled)
	assert.Zero(t, m.Collected())
	assert.Empty(t, m.Node().Children)
}

func TestManagerSetModule(t *testing.T) {
	tests := []struct {
		module  string
		want    []string
		wantErr error
	}{
		{"", []string{"cpuid", "smbios"}, nil},
		{ModuleAll, []string{"cpuid", "smbios"}, nil},
		{"smbios", []string{"smbios"}, nil},
		{"raid", []string{"cpuid", "smbios"}, ErrUnknownModule},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			m := NewManager(&fakeCollector{name: "cpuid"}, &fakeCollector{name: "smbios"})
			err := m.SetModule(tt.module)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, m.Modules())
		})
	}
}
