// Package jsondoc loads project documents from JSON files in the shape
// described by the project input format: a "project_info" object and a
// "tasks" array.
package jsondoc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vk/ganttline/internal/config"
	"github.com/vk/ganttline/internal/ctxlog"
)

// Loader is the JSON implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new JSON document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// rawDocument mirrors the top-level JSON shape. Both sections decode into
// loose maps so that a single malformed field cannot fail the whole
// document; field-level coercion happens below.
type rawDocument struct {
	ProjectInfo map[string]any   `json:"project_info"`
	Tasks       []map[string]any `json:"tasks"`
}

// Load reads and decodes a JSON project document. An unreadable file or
// invalid JSON is fatal; every field-level oddity is preserved in the
// Document for the parser to handle.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode JSON from %s: %w", path, err)
	}
	logger.Debug("JSON document decoded.", "path", path, "task_records", len(raw.Tasks))

	doc := &config.Document{
		Info: config.InfoRecord{
			Name:        stringField(raw.ProjectInfo, "name"),
			StartDate:   stringField(raw.ProjectInfo, "start_date"),
			PublishDate: stringField(raw.ProjectInfo, "publish_date"),
			Calendar:    stringField(raw.ProjectInfo, "calendar"),
		},
	}

	for _, item := range raw.Tasks {
		doc.Tasks = append(doc.Tasks, config.TaskRecord{
			ID:           config.ParseScalar(item["id"]),
			Name:         stringField(item, "name"),
			Start:        config.ParseScalar(item["start"]),
			Finish:       config.ParseScalar(item["finish"]),
			Type:         stringField(item, "type"),
			Chain:        stringField(item, "chain"),
			Resources:    stringField(item, "resources"),
			Predecessors: stringField(item, "predecessors"),
			Remaining:    config.ParseScalar(item["remaining"]),
			Tags:         tagsField(item, "tags"),
			URL:          stringField(item, "url"),
		})
	}

	return doc, nil
}

// stringField returns the named value when it is a string, and "" otherwise.
func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// tagsField coerces the named value to a string slice. Non-array values and
// non-string elements are dropped, matching the parser's "non-sequence tags
// become empty" rule.
func tagsField(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	var tags []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}
