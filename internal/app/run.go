package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/ganttline/internal/ctxlog"
	"github.com/vk/ganttline/internal/dag"
	"github.com/vk/ganttline/internal/project"
	"github.com/vk/ganttline/internal/render"
)

// Run executes the full pipeline: load the raw document, parse it into the
// project model, resolve dependencies, build and augment the graph, then
// hand the finished model to the renderer and write the output file.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	doc, err := a.loader.Load(ctx, a.docPath)
	if err != nil {
		return fmt.Errorf("failed to load project document: %w", err)
	}
	a.logger.Info("Project document loaded.", "path", a.docPath, "task_records", len(doc.Tasks))

	m := project.Parse(ctx, doc)
	deps := project.ResolveDependencies(ctx, m)
	a.logger.Info("Project parsed.", "tasks", len(m.Tasks), "dependencies", len(deps))

	g := dag.Build(ctx, m, deps)
	dag.AddBoundary(ctx, g, m.Tasks, m.Streams)

	model := render.NewModel(m, g.Edges(), g.Names())
	out, err := a.renderer.Render(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to render timeline: %w", err)
	}

	if err := os.WriteFile(a.config.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	a.logger.Info("Timeline written.", "output", a.config.OutputPath, "bytes", len(out))
	return nil
}
