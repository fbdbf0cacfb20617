package app

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vk/ganttline/internal/config"
	"github.com/vk/ganttline/internal/fsutil"
	"github.com/vk/ganttline/internal/hcldoc"
	"github.com/vk/ganttline/internal/jsondoc"
	"github.com/vk/ganttline/internal/render"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	errW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	docPath  string
	renderer render.Renderer
}

// NewApp is the constructor for the main application. It builds an isolated
// logger, resolves the document path to a format-specific loader, and wires
// the renderer.
func NewApp(errW io.Writer, cfg *Config, loader config.Loader, renderer render.Renderer) *App {
	return &App{
		errW:     errW,
		logger:   newLogger(cfg.LogLevel, cfg.LogFormat, errW),
		config:   cfg,
		loader:   loader,
		docPath:  cfg.ProjectPath,
		renderer: renderer,
	}
}

// ResolveLoader turns a project path into the concrete document loader for
// its format, descending into directories to find the first .json or .hcl
// document.
func ResolveLoader(path string) (config.Loader, string, error) {
	resolved := path
	if filepath.Ext(path) == "" {
		found, err := fsutil.FindFirstByExtensions(path, ".json", ".hcl")
		if err != nil {
			return nil, "", fmt.Errorf("no project document found: %w", err)
		}
		resolved = found
	}

	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".json":
		return jsondoc.NewLoader(), resolved, nil
	case ".hcl":
		return hcldoc.NewLoader(), resolved, nil
	default:
		return nil, "", fmt.Errorf("unsupported project document format: %s", resolved)
	}
}
