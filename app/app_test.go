package app

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storiesascode/storiesascode/internal/owasp"
	"github.com/storiesascode/storiesascode/internal/project"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(resetFlags)

	require.NoError(t, rootCmd.Execute())

	return out.String()
}

func resetFlags() {
	blueprintPath, outPath, softDelete, dumpJSON, devMode = "", "", false, false, false
	owaspStories, printMetrics = false, false
}

// runStd executes args against the process stdout and stderr and returns what was written to each.
func runStd(t *testing.T, args ...string) (string, string) {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	drain := func(r io.Reader) <-chan string {
		c := make(chan string, 1)

		go func() {
			var buf bytes.Buffer

			_, _ = io.Copy(&buf, r)
			c <- buf.String()
		}()

		return c
	}

	outC, errC := drain(outR), drain(errR)

	os.Stdout, os.Stderr = outW, errW

	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetArgs(args)

	execErr := rootCmd.Execute()

	_ = outW.Close()
	_ = errW.Close()
	os.Stdout, os.Stderr = stdout, stderr

	t.Cleanup(func() {
		resetFlags()
		log.Logger = zerolog.Nop()
	})

	require.NoError(t, execErr)

	return <-outC, <-errC
}

func TestGenerate(t *testing.T) {
	raw := run(t, "generate", "--config", "../etc/", "--blueprint", "../etc/blueprints/todo.yaml")

	var out project.Output
	require.NoError(t, json.Unmarshal([]byte(raw), &out))

	assert.Equal(t, "Todo App", out.Name)
	assert.Len(t, out.Models, 4)
	assert.Len(t, out.UserTypes, 3)
	assert.Len(t, out.Stories, 56)
}

func TestGenerate_DevModeKeepsStdoutJSON(t *testing.T) {
	stdout, stderr := runStd(t, "generate", "--dev", "--config", "../etc/", "--blueprint", "../etc/blueprints/todo.yaml")

	var out project.Output
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Len(t, out.Stories, 56)

	assert.Contains(t, stderr, "blueprint built")
	assert.Contains(t, stderr, "stories generated")
}

func TestGenerate_Metrics(t *testing.T) {
	stdout, stderr := runStd(t, "generate", "--dev", "--metrics", "--config", "../etc/",
		"--blueprint", "../etc/blueprints/todo.yaml")

	var out project.Output
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))

	assert.Contains(t, stderr, "# TYPE stories_log_statements_total counter")
	assert.Contains(t, stderr, `level="debug"`)
}

func TestGenerate_OWASP(t *testing.T) {
	raw := run(t, "generate", "--config", "../etc/", "--blueprint", "../etc/blueprints/todo.yaml", "--owasp")

	var out project.Output
	require.NoError(t, json.Unmarshal([]byte(raw), &out))

	require.Len(t, out.Stories, 56+owasp.Count())
	assert.Len(t, out.UserTypes, 4)

	security := out.Stories[56:]
	assert.Equal(t, owasp.DefaultUserTypeName, security[0].AsA)
	assert.Equal(t, []string{owasp.Label}, security[0].Labels)
}

func TestGenerate_OutInMissingDirectory(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{
		"generate", "--config", "../etc/", "--blueprint", "../etc/blueprints/todo.yaml",
		"--out", filepath.Join(t.TempDir(), "missing", "project.json"),
	})
	t.Cleanup(resetFlags)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestGenerate_SoftDeleteToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "project.json")

	stdout := run(t, "generate", "--config", "../etc/", "--blueprint", "../etc/blueprints/todo.yaml",
		"--soft-delete", "--out", file)
	assert.Empty(t, stdout)

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "to be able to soft delete Todos")
	assert.NotContains(t, string(raw), `"iWant": "to delete Todos"`)
}

func TestGenerate_UnknownBlueprint(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"generate", "--config", "../etc/", "--blueprint", "../etc/blueprints/missing.yaml"})
	t.Cleanup(resetFlags)

	require.Error(t, rootCmd.Execute())
}

func TestConfigDump(t *testing.T) {
	assert.Contains(t, run(t, "config", "--config", "../etc/"), `title = "stories"`)
	assert.Contains(t, run(t, "config", "--config", "../etc/", "--json"), `"title": "stories"`)
}
