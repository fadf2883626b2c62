package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tamc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Lenient)
	assert.Equal(t, 10, cfg.MaxErrors)
	assert.True(t, cfg.Listing)
	assert.Zero(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Config
	}{
		{
			name: "empty",
			text: "",
			want: Config{MaxErrors: 10, Listing: true},
		},
		{
			name: "partial",
			text: "lenient: true\n",
			want: Config{Lenient: true, MaxErrors: 10, Listing: true},
		},
		{
			name: "all",
			text: "lenient: true\nmaxErrors: 3\nlisting: false\nverbose: 7\n",
			want: Config{Lenient: true, MaxErrors: 3, Listing: false, Verbose: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"unknown_key", "colour: blue\n", "parsing config"},
		{"bad_type", "maxErrors: many\n", "parsing config"},
		{"negative_limit", "maxErrors: -1\n", "maxErrors must not be negative, got -1"},
		{"negative_verbose", "verbose: -2\n", "verbose must not be negative, got -2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.text)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config "+path)
}

func TestLoadDefaultFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(DefaultFile, []byte("listing: false\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Listing)
}
