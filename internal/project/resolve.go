package project

import (
	"context"
	"strconv"
	"strings"

	"github.com/vk/ganttline/internal/ctxlog"
)

// ResolveDependencies maps each task's raw predecessor string (comma
// separated integer ids) onto named edges. Unknown ids are dropped with a
// warning; a field that is not an integer at all drops the task's whole
// predecessor list. Output order follows document order.
func ResolveDependencies(ctx context.Context, m *Model) []Dependency {
	logger := ctxlog.FromContext(ctx)

	var deps []Dependency
	for _, name := range m.Order {
		task := m.Tasks[name]
		if task == nil || task.Predecessors == "" {
			continue
		}

		ids, ok := splitPredecessorIDs(task.Predecessors)
		if !ok {
			logger.Warn("Invalid predecessor format, dropping all predecessors for task.",
				"task", name, "predecessors", task.Predecessors)
			continue
		}

		for _, id := range ids {
			predName, found := m.IDToName[id]
			if !found {
				logger.Warn("Predecessor id not found.", "task", name, "predecessor_id", id)
				continue
			}
			deps = append(deps, Dependency{Predecessor: predName, Successor: name})
		}
	}
	return deps
}

// splitPredecessorIDs splits a comma-separated id string into integers.
// Empty fields are skipped; any non-integer field invalidates the whole
// string.
func splitPredecessorIDs(raw string) ([]int64, bool) {
	var ids []int64
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
