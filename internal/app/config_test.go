package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(Config{ProjectPath: "demo.json"})

	require.NoError(t, err)
	assert.Equal(t, "gantt_chart.svg", cfg.OutputPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewConfig_RequiresProjectPath(t *testing.T) {
	_, err := NewConfig(Config{})

	assert.ErrorContains(t, err, "project path must not be empty")
}

func TestNewConfig_KeepsExplicitValues(t *testing.T) {
	cfg, err := NewConfig(Config{
		ProjectPath: "demo.hcl",
		OutputPath:  "out.svg",
		ThemePath:   "theme.yaml",
		LogFormat:   "json",
		LogLevel:    "debug",
	})

	require.NoError(t, err)
	assert.Equal(t, "out.svg", cfg.OutputPath)
	assert.Equal(t, "theme.yaml", cfg.ThemePath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}
