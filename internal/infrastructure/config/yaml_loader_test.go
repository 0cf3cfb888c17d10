package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML_Default(t *testing.T) {
	f, err := os.Open("testdata/default.yaml")
	require.NoError(t, err)
	defer f.Close()

	cfg, err := ParseYAML(f)
	require.NoError(t, err)

	assert.Equal(t, "A-Z", cfg.Alphabet)
	assert.Equal(t, 5, cfg.Slots)
	assert.Equal(t, 3, cfg.Pawls)
	require.Len(t, cfg.Rotors, 8)
	assert.Equal(t, RotorSpec{
		Name:    "I",
		Kind:    "moving",
		Notches: "Q",
		Cycles:  "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)",
	}, cfg.Rotors[0])
	assert.NoError(t, cfg.Validate())
}

func TestParseYAML_MatchesConf(t *testing.T) {
	yamlFile, err := os.Open("testdata/default.yaml")
	require.NoError(t, err)
	defer yamlFile.Close()
	fromYAML, err := ParseYAML(yamlFile)
	require.NoError(t, err)

	confFile, err := os.Open("testdata/default.conf")
	require.NoError(t, err)
	defer confFile.Close()
	fromConf, err := ParseConf(confFile)
	require.NoError(t, err)

	setting, err := ParseSetting("* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)", 5)
	require.NoError(t, err)

	convert := func(cfg *MachineConfig) string {
		m, err := cfg.Build()
		require.NoError(t, err)
		require.NoError(t, setting.Apply(m))
		return m.ConvertMessage("FROM HIS SHOULDER HIAWATHA")
	}

	assert.Equal(t, "QVPQSOKOILPUBKJZPISFXDW", convert(fromYAML))
	assert.Equal(t, convert(fromConf), convert(fromYAML))
}

func TestParseYAML_SchemaErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "missing rotors",
			input:    "alphabet: A-Z\nslots: 5\npawls: 3\n",
			contains: "rotors",
		},
		{
			name:     "too few slots",
			input:    "alphabet: A-Z\nslots: 1\npawls: 0\nrotors:\n  - {name: B, kind: reflector, cycles: \"(AB)\"}\n",
			contains: "/slots",
		},
		{
			name:     "unknown kind",
			input:    "alphabet: A-Z\nslots: 2\npawls: 1\nrotors:\n  - {name: B, kind: spinning, cycles: \"(AB)\"}\n",
			contains: "/rotors/0/kind",
		},
		{
			name:     "name with space",
			input:    "alphabet: A-Z\nslots: 2\npawls: 1\nrotors:\n  - {name: \"B 2\", kind: reflector, cycles: \"(AB)\"}\n",
			contains: "/rotors/0/name",
		},
		{
			name:     "unknown field",
			input:    "alphabet: A-Z\nslots: 2\npawls: 1\nring: 3\nrotors:\n  - {name: B, kind: reflector, cycles: \"(AB)\"}\n",
			contains: "machine validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParseYAML_InvalidYAML(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("alphabet: [[["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}
