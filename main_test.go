package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/ndjson/internal/config"
	"github.com/mcncl/ndjson/internal/errors"
)

func resetCLI(t *testing.T) {
	t.Helper()
	originalCLI := CLI
	t.Cleanup(func() { CLI = originalCLI })
	CLI.Input = ""
	CLI.Output = ""
	CLI.Check = false
	CLI.Array = false
	CLI.FromArray = false
	CLI.Summary = false
	CLI.SummaryFormat = ""
	CLI.Config = ""
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.ndjson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_NormalizesStream(t *testing.T) {
	resetCLI(t)

	CLI.Input = writeInput(t, "{\"id\": 1, \"name\": \"one\"}\r\n[1, 2, 3]\ntrue")
	CLI.Output = filepath.Join(t.TempDir(), "out.ndjson")

	require.NoError(t, run(config.NewConfig()))

	out, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.Equal(t, "{\"id\":1,\"name\":\"one\"}\n[1,2,3]\ntrue\n", string(out))
}

func TestRun_ArrayOutput(t *testing.T) {
	resetCLI(t)

	CLI.Input = writeInput(t, "1\n2\n")
	CLI.Output = filepath.Join(t.TempDir(), "out.json")

	cfg := config.NewConfig()
	cfg.Output.Array = true
	require.NoError(t, run(cfg))

	out, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]\n", string(out))
}

func TestRun_FromArray(t *testing.T) {
	resetCLI(t)

	CLI.FromArray = true
	CLI.Input = writeInput(t, "[{\"id\": 1},\n {\"id\": 2}]\n")
	CLI.Output = filepath.Join(t.TempDir(), "out.ndjson")

	require.NoError(t, run(config.NewConfig()))

	out, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.Equal(t, "{\"id\":1}\n{\"id\":2}\n", string(out))
}

func TestRun_FromArray_RejectsNonArray(t *testing.T) {
	resetCLI(t)

	CLI.FromArray = true
	CLI.Input = writeInput(t, "{\"id\": 1}\n")

	err := run(config.NewConfig())
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeInput, appErr.Type)
}

func TestRun_BadLineFailsWhole(t *testing.T) {
	resetCLI(t)

	CLI.Input = writeInput(t, "1\nnotjson\n2\n")
	CLI.Output = filepath.Join(t.TempDir(), "out.ndjson")

	err := run(config.NewConfig())
	require.Error(t, err)

	var lineErr *errors.LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)

	// All-or-nothing: no partial output was written.
	_, statErr := os.Stat(CLI.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_CheckWritesNothing(t *testing.T) {
	resetCLI(t)

	CLI.Check = true
	CLI.Input = writeInput(t, "{\"ok\": true}\n")
	CLI.Output = filepath.Join(t.TempDir(), "out.ndjson")

	require.NoError(t, run(config.NewConfig()))

	_, statErr := os.Stat(CLI.Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_EmptyFile(t *testing.T) {
	resetCLI(t)

	CLI.Input = writeInput(t, "")
	CLI.Output = filepath.Join(t.TempDir(), "out.ndjson")

	require.NoError(t, run(config.NewConfig()))

	out, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.Equal(t, "", string(out))
}

func TestRun_MissingFile(t *testing.T) {
	resetCLI(t)

	CLI.Input = filepath.Join(t.TempDir(), "absent.ndjson")

	err := run(config.NewConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrFileNotFound)
}

func TestLoadConfig_InvalidSummaryFormat(t *testing.T) {
	resetCLI(t)

	CLI.SummaryFormat = "csv"

	_, err := loadConfig()
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeConfig, appErr.Type)
}

func TestLoadConfig_ExplicitFileWithOverrides(t *testing.T) {
	resetCLI(t)

	path := filepath.Join(t.TempDir(), ".ndjson.yml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  array: true\n"), 0644))

	CLI.Config = path
	CLI.Summary = true
	CLI.SummaryFormat = config.FormatYAML

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Output.Array)
	assert.True(t, cfg.Report.Enabled)
	assert.Equal(t, config.FormatYAML, cfg.Report.Format)
}
