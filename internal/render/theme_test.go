package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/ganttline/internal/project"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, 40.0, theme.DayWidth)
	assert.Equal(t, "red", theme.Colors["CRITICAL"])
	assert.Equal(t, "black", theme.Colors["SYSTEM"])
}

func TestLoadTheme_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
day_width: 60
colors:
  CRITICAL: "#cc0000"
`), 0o644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, 60.0, theme.DayWidth)
	assert.Equal(t, "#cc0000", theme.Colors["CRITICAL"])
	// Untouched fields keep their defaults.
	assert.Equal(t, 48.0, theme.RowHeight)
	assert.Equal(t, "blue", theme.Colors["FREE"])
}

func TestLoadTheme_Errors(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read theme file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("day_width: [not a number"), 0o644))
	_, err = LoadTheme(path)
	assert.ErrorContains(t, err, "failed to decode theme file")
}

func TestColorFor_FallsBackToUnassigned(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "orange", theme.ColorFor(project.TypeFeeding))
	assert.Equal(t, theme.Colors["UNASSIGNED"], theme.ColorFor(project.TaskType(42)))
}
