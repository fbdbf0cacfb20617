package hcldoc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/ganttline/internal/config"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ProjectAndTaskBlocks(t *testing.T) {
	path := writeDoc(t, `
project {
  name       = "Demo"
  start_date = "2025-01-01"
  calendar   = "standard"
}

task "Design" {
  id           = 1
  start        = 0
  finish       = 5
  type         = "CRITICAL"
  chain        = "Main"
  resources    = "Alice"
  remaining    = 2
  tags         = ["ui"]
  url          = "https://example.com/1"
}

task "Build" {
  id           = 2
  start        = 5
  finish       = 9
  predecessors = "1"
}
`)

	doc, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Demo", doc.Info.Name)
	assert.Equal(t, "2025-01-01", doc.Info.StartDate)

	require.Len(t, doc.Tasks, 2)
	design := doc.Tasks[0]
	assert.Equal(t, "Design", design.Name)
	assert.Equal(t, config.Float(1), design.ID)
	assert.Equal(t, config.Float(5), design.Finish)
	assert.Equal(t, config.Float(2), design.Remaining)
	assert.Equal(t, []string{"ui"}, design.Tags)

	build := doc.Tasks[1]
	assert.Equal(t, "1", build.Predecessors)
}

func TestLoad_NumericStringAttributesAreValid(t *testing.T) {
	path := writeDoc(t, `
project {
  start_date = "2025-01-01"
}

task "Quoted" {
  id     = "7"
  start  = "0.5"
  finish = "2"
}
`)

	doc, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, doc.Tasks, 1)
	task := doc.Tasks[0]
	assert.Equal(t, config.Float(7), task.ID)
	assert.Equal(t, config.Float(0.5), task.Start)
	assert.Equal(t, config.Float(2), task.Finish)
}

func TestLoad_AbsentAttributesAreAbsentScalars(t *testing.T) {
	path := writeDoc(t, `
task "Bare" {
  id = 1
}
`)

	doc, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, doc.Tasks, 1)
	task := doc.Tasks[0]
	assert.Equal(t, config.Scalar{}, task.Start)
	assert.Equal(t, config.Scalar{}, task.Finish)
	assert.Equal(t, config.Scalar{}, task.Remaining)
}

func TestLoad_SyntaxErrorIsFatal(t *testing.T) {
	path := writeDoc(t, `task "Broken" {`)

	_, err := NewLoader().Load(context.Background(), path)

	assert.ErrorContains(t, err, "failed to parse HCL file")
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))

	assert.Error(t, err)
}
