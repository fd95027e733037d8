package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, 10, cfg.Capacity)
	require.Equal(t, ".", cfg.DataDir)
	require.Equal(t, "> ", cfg.Prompt)
	require.True(t, cfg.Bootstrap)
	require.NoError(t, cfg.Validate())
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.toml", FormatTOML},
		{"a.yaml", FormatYAML},
		{"a.YML", FormatYAML},
		{"noext", FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
	require.Equal(t, "yaml", FormatYAML.String())
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "matshell.toml", `
capacity = 4
data_dir = "/tmp/mats"
seed = 42
bootstrap = false
log_level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Capacity)
	require.Equal(t, "/tmp/mats", cfg.DataDir)
	require.Equal(t, uint64(42), cfg.Seed)
	require.False(t, cfg.Bootstrap)
	require.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep defaults.
	require.Equal(t, "> ", cfg.Prompt)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "matshell.yaml", `
capacity: 3
prompt: "mat> "
log_format: json
metrics_textfile: /tmp/m.prom
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Capacity)
	require.Equal(t, "mat> ", cfg.Prompt)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "/tmp/m.prom", cfg.MetricsTextfile)
	require.True(t, cfg.Bootstrap)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("MATSHELL_TEST_DIR", "/data/x")
	path := writeFile(t, "env.toml", `data_dir = "$MATSHELL_TEST_DIR/m"`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/data/x/m", cfg.DataDir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero capacity", "capacity = 0"},
		{"bad level", `log_level = "loud"`},
		{"bad format", `log_format = "xml"`},
		{"empty dir", `data_dir = ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "c.toml", tt.body))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_ParseAndMissing(t *testing.T) {
	_, err := Load(writeFile(t, "broken.toml", "capacity = ["))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "env.yaml", "capacity: 7\n")
	t.Setenv(EnvConfigPath, path)
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Capacity)
}

func TestLoadFromEnv_FallsBackToDefault(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}
