package cpuid

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "No error"},
		{"code", ErrNoCPUID, "CPUID instruction is not supported"},
		{"wrapped", fmt.Errorf("load: %w", ErrCPUUnknown), "Unsupported processor"},
		{"foreign", errors.New("boom"), "Unknown error"},
		{"invalid range", ErrInvRange, "Invalid given range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}

	assert.Equal(t, "Unknown error", Code(-100).Error())
}
