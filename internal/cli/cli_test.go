package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ProjectFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"--project", "demo.json"}, &out)

	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "demo.json", cfg.ProjectPath)
	assert.Equal(t, "gantt_chart.svg", cfg.OutputPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_ShorthandFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-p", "demo.hcl"}, &out)

	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "demo.hcl", cfg.ProjectPath)
}

func TestParse_PositionalArgument(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"projects/demo"}, &out)

	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "projects/demo", cfg.ProjectPath)
}

func TestParse_ProjectFlagWinsOverPositional(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"--project", "flagged.json", "positional.json"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "flagged.json", cfg.ProjectPath)
}

func TestParse_OutAndThemeFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"--project", "demo.json", "--out", "chart.svg", "--theme", "dark.yaml"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "chart.svg", cfg.OutputPath)
	assert.Equal(t, "dark.yaml", cfg.ThemePath)
}

func TestParse_NoPathShowsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_HelpExitsCleanly(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"--help"}, &out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"--project", "demo.json", "--log-format", "xml"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid log-format")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"--project", "demo.json", "--log-level", "verbose"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid log-level")
}

func TestParse_LogFlagsAreCaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"--project", "demo.json", "--log-format", "JSON", "--log-level", "DEBUG"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_UnknownFlag(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"--bogus"}, &out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.True(t, strings.Contains(out.String(), "Usage:") || exitErr.Message != "")
}
