package main

import (
	"context"
	"testing"
	"time"

	"github.com/reglet-dev/enigma/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonOptions_ApplyToContext(t *testing.T) {
	t.Parallel()

	t.Run("with timeout", func(t *testing.T) {
		t.Parallel()
		opts := CommonOptions{Timeout: 100 * time.Millisecond}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(100*time.Millisecond), deadline, 10*time.Millisecond)
	})

	t.Run("no timeout", func(t *testing.T) {
		t.Parallel()
		opts := CommonOptions{Timeout: 0}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}

func TestCommonOptions_ValidateFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    CommonOptions
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid options",
			opts:    CommonOptions{Format: "text", GroupSize: 5},
			wantErr: false,
		},
		{
			name:    "valid format json",
			opts:    CommonOptions{Format: "json"},
			wantErr: false,
		},
		{
			name:    "grouping disabled",
			opts:    CommonOptions{Format: "yaml", GroupSize: 0},
			wantErr: false,
		},
		{
			name:    "invalid format",
			opts:    CommonOptions{Format: "xml"},
			wantErr: true,
			errMsg:  "invalid format",
		},
		{
			name:    "table is not a transcript format",
			opts:    CommonOptions{Format: "table"},
			wantErr: true,
			errMsg:  "invalid format",
		},
		{
			name:    "negative group size",
			opts:    CommonOptions{Format: "text", GroupSize: -1},
			wantErr: true,
			errMsg:  "invalid group size",
		},
		{
			name:    "negative timeout",
			opts:    CommonOptions{Format: "text", Timeout: -time.Second},
			wantErr: true,
			errMsg:  "invalid timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.opts.ValidateFlags()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultCommonOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultCommonOptions()
	assert.Equal(t, "text", opts.Format)
	assert.Equal(t, 5, opts.GroupSize)
	assert.Zero(t, opts.Timeout)
}

func TestCommonOptions_Resolve(t *testing.T) {
	t.Parallel()

	settings := &system.Config{Format: "yaml", GroupSize: 4, Suffix: ".out"}

	t.Run("settings fill unset flags", func(t *testing.T) {
		t.Parallel()
		opts := DefaultCommonOptions()
		cmd := &cobra.Command{}
		opts.RegisterFlags(cmd)

		opts.Resolve(cmd, settings)
		assert.Equal(t, "yaml", opts.Format)
		assert.Equal(t, 4, opts.GroupSize)
	})

	t.Run("flags win over settings", func(t *testing.T) {
		t.Parallel()
		opts := DefaultCommonOptions()
		cmd := &cobra.Command{}
		opts.RegisterFlags(cmd)
		require.NoError(t, cmd.Flags().Parse([]string{"--format", "json", "--group-size", "0"}))

		opts.Resolve(cmd, settings)
		assert.Equal(t, "json", opts.Format)
		assert.Equal(t, 0, opts.GroupSize)
	})
}
