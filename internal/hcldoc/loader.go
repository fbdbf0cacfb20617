// Package hcldoc loads project documents written in HCL. It is the
// declarative alternative to the JSON input format: a single `project`
// block plus any number of labeled `task` blocks.
package hcldoc

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/ganttline/internal/config"
	"github.com/vk/ganttline/internal/ctxlog"
	"github.com/vk/ganttline/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses an HCL project document and translates it into the
// format-agnostic model. Parse and decode diagnostics are fatal; value-level
// problems are carried through for the project parser to warn about.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var cfg schema.ProjectConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	logger.Debug("HCL document decoded.", "path", path, "task_blocks", len(cfg.Tasks))

	return l.translate(&cfg), nil
}
