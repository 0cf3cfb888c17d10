package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reglet-dev/enigma/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineLoader_Load(t *testing.T) {
	loader := NewMachineLoader()

	for _, path := range []string{"testdata/default.conf", "testdata/default.yaml"} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			cfg, err := loader.Load(path)
			require.NoError(t, err)
			assert.Equal(t, path, cfg.Source)
			assert.Equal(t, 5, cfg.Slots)
		})
	}
}

func TestMachineLoader_LoadMissing(t *testing.T) {
	_, err := NewMachineLoader().Load("testdata/missing.conf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open configuration")
}

func TestMachineLoader_LoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"alphabet: ABCD\nslots: 2\npawls: 1\nrotors:\n  - {name: R, kind: reflector, cycles: \"(AB)\"}\n"), 0o600))

	_, err := NewMachineLoader().Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, values.ErrMalformedCycles)
	assert.Contains(t, err.Error(), path)
}

func TestMachineLoader_LoadFromReaderFormat(t *testing.T) {
	_, err := NewMachineLoader().LoadFromReader(strings.NewReader("ABCD 2 1\nR R (AC) (BD)\n"), "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported configuration format")

	cfg, err := NewMachineLoader().LoadFromReader(strings.NewReader("ABCD 2 1\nR R (AC) (BD)\n"), "")
	require.NoError(t, err)
	assert.Empty(t, cfg.Source)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, "yaml", formatForPath("m.yaml"))
	assert.Equal(t, "yaml", formatForPath("dir/M.YML"))
	assert.Equal(t, "conf", formatForPath("default.conf"))
	assert.Equal(t, "conf", formatForPath("machine"))
}
