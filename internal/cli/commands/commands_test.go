package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shtest/internal/cli"
	"shtest/internal/config"
	"shtest/internal/exitcodes"
	"shtest/internal/ui"
)

// execute runs a freshly registered root command with args
func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer

	rootCmd := &cobra.Command{Use: "shtest <directory>"}
	rootCmd.SetOut(&errOut)
	rootCmd.SetErr(&errOut)
	cfg := config.New()
	var flags cli.Flags
	NewCommands(cfg, &out, &errOut, ui.NewPalette(false)).Register(rootCmd, &flags, cfg)

	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	cmd, err := rootCmd.ExecuteContextC(context.Background())
	code = cli.Report(&errOut, cmd, err)
	return code, out.String(), errOut.String()
}

func testDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestRunCommand(t *testing.T) {
	t.Run("exit code is the largest test exit code", func(t *testing.T) {
		dir := testDir(t, map[string]string{"x.sh": "exit 0\n", "y.sh": "exit 1\n", "z.sh": "exit 255\n"})

		code, stdout, _ := execute(t, dir)

		assert.Equal(t, 255, code)
		assert.Contains(t, stdout, "PASS")
		assert.Contains(t, stdout, "FAIL")
	})

	t.Run("all passing", func(t *testing.T) {
		dir := testDir(t, map[string]string{"a.sh": "exit 0\n"})

		code, stdout, stderr := execute(t, dir)

		assert.Equal(t, exitcodes.Success, code)
		assert.Contains(t, stdout, dir+"/a.sh")
		assert.Empty(t, stderr)
	})

	t.Run("summary", func(t *testing.T) {
		dir := testDir(t, map[string]string{"a.sh": "exit 0\n", "b.sh": "exit 2\n", "notes.txt": ""})

		code, stdout, _ := execute(t, "--summary", dir)

		assert.Equal(t, 2, code)
		assert.Contains(t, stdout, "1 passed, 1 failed, 1 skipped")
	})

	t.Run("filter", func(t *testing.T) {
		dir := testDir(t, map[string]string{"a.sh": "exit 0\n", "b.sh": "exit 2\n"})

		code, stdout, _ := execute(t, "--filter", "a*", dir)

		assert.Equal(t, exitcodes.Success, code)
		assert.NotContains(t, stdout, "b.sh")
	})

	t.Run("missing argument is a usage error", func(t *testing.T) {
		code, stdout, stderr := execute(t)

		assert.Equal(t, exitcodes.Usage, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Usage:")
	})

	t.Run("too many arguments is a usage error", func(t *testing.T) {
		code, _, _ := execute(t, "one", "two")
		assert.Equal(t, exitcodes.Usage, code)
	})

	t.Run("unknown flag is a usage error", func(t *testing.T) {
		code, _, stderr := execute(t, "--parallel", "tests")

		assert.Equal(t, exitcodes.Usage, code)
		assert.Contains(t, stderr, "unknown flag")
	})

	t.Run("missing directory is a runtime error", func(t *testing.T) {
		code, _, stderr := execute(t, "/non/existent/path")

		assert.Equal(t, exitcodes.RuntimeErr, code)
		assert.Contains(t, stderr, "Error: test directory does not exist")
	})

	t.Run("completion is treated as a directory", func(t *testing.T) {
		code, _, stderr := execute(t, "completion")

		assert.Equal(t, exitcodes.RuntimeErr, code)
		assert.Contains(t, stderr, "test directory does not exist: completion")
	})

	t.Run("debug logging goes to stderr", func(t *testing.T) {
		dir := testDir(t, map[string]string{"a.sh": "exit 0\n", "notes.txt": ""})

		code, stdout, stderr := execute(t, "--debug", dir)

		assert.Equal(t, exitcodes.Success, code)
		assert.NotContains(t, stdout, "level=")
		assert.Contains(t, stderr, "not a recognized test")
	})
}

func TestListCommand(t *testing.T) {
	dir := testDir(t, map[string]string{"a.sh": "exit 9\n", "b.sh": "exit 9\n", "notes.txt": ""})

	t.Run("lists shell tests without running them", func(t *testing.T) {
		code, stdout, _ := execute(t, "list", dir)

		assert.Equal(t, exitcodes.Success, code)
		assert.Contains(t, stdout, "Found 2 test file(s)")
		assert.Contains(t, stdout, "a.sh")
		assert.NotContains(t, stdout, "notes.txt")
		assert.NotContains(t, stdout, "FAIL")
	})

	t.Run("filter", func(t *testing.T) {
		code, stdout, _ := execute(t, "list", "--filter", "b*", dir)

		assert.Equal(t, exitcodes.Success, code)
		assert.Contains(t, stdout, "Found 1 test file(s)")
	})

	t.Run("missing argument", func(t *testing.T) {
		code, _, _ := execute(t, "list")
		assert.Equal(t, exitcodes.Usage, code)
	})
}
