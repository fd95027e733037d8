package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		cfgFile, verbose = "", false
		shellNoBoot, inspectHeaderOnly = false, false
	})
	err := rootCmd.Execute()

	return out.String(), err
}

func TestShellThenInspect(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "matshell.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level = \"error\"\ncapacity = 3\n"), 0o600))

	out, err := execute(t, "create x 1 2\nwrite x\nexit\n",
		"shell", "--config", cfgPath, "--data-dir", dir, "--seed", "9")
	require.NoError(t, err)
	require.Contains(t, out, "Created Matrix (x,1,2)")
	require.FileExists(t, filepath.Join(dir, "temp_mat"))
	require.FileExists(t, filepath.Join(dir, "x"))

	out, err = execute(t, "", "inspect", filepath.Join(dir, "x"))
	require.NoError(t, err)
	require.Contains(t, out, "Matrix Contents (x):\nDIM = (1,2)\n0 0 \n")

	out, err = execute(t, "", "inspect", "--header", filepath.Join(dir, "temp_mat"))
	require.NoError(t, err)
	require.Contains(t, out, "name:         temp_mat")
	require.Contains(t, out, "dim:          (5,5)")
	require.Contains(t, out, "encoded size: 122 bytes")
}

func TestShell_BadConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("capacity: -2\n"), 0o600))

	_, err := execute(t, "", "shell", "--config", cfgPath)
	require.Error(t, err)
}

func TestShell_NoBootstrap(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "c.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level = \"error\"\n"), 0o600))

	_, err := execute(t, "exit\n", "shell", "--config", cfgPath, "--data-dir", dir, "--no-bootstrap")
	require.NoError(t, err)
	require.NoFileExists(t, filepath.Join(dir, "temp_mat"))
}

func TestInspect_MissingFile(t *testing.T) {
	_, err := execute(t, "", "inspect", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, out, "matshell v"+Version)
}
