package render

import (
	"context"
	"time"

	"github.com/vk/ganttline/internal/project"
)

// Model is the complete input a renderer needs: the final shape produced by
// the pipeline, with every invariant of the project model already
// established.
type Model struct {
	StartDate      time.Time
	Tasks          map[string]*project.Task
	Dependencies   []project.Dependency
	Streams        project.StreamMap
	Calendar       project.CalendarMode
	ProjectName    string
	PublishDate    *time.Time
	SyntheticStart bool

	// Order lists task names in graph order, boundary nodes included, so
	// renderers can iterate deterministically.
	Order []string
}

// NewModel assembles the render model from a parsed project and its
// resolved dependency list. The task map and stream map are shared with the
// project model, matching the in-place mutation contract of the graph
// builder.
func NewModel(m *project.Model, deps []project.Dependency, order []string) *Model {
	return &Model{
		StartDate:      m.Info.StartDate,
		Tasks:          m.Tasks,
		Dependencies:   deps,
		Streams:        m.Streams,
		Calendar:       m.Info.Calendar,
		ProjectName:    m.Info.Name,
		PublishDate:    m.Info.PublishDate,
		SyntheticStart: m.Info.SyntheticStartDate,
		Order:          order,
	}
}

// Renderer consumes a finished model and produces an image.
type Renderer interface {
	Render(ctx context.Context, m *Model) ([]byte, error)
}
