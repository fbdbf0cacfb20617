package layout

import (
	"context"
	"sort"

	"github.com/vk/ganttline/internal/ctxlog"
	"github.com/vk/ganttline/internal/project"
)

// ChainLevels assigns each distinct chain label an integer rank by
// lexicographic sort of the label set. The ordering depends only on the set
// of labels, never on task insertion order, so vertical placement is
// deterministic and testable.
func ChainLevels(streams project.StreamMap) map[string]int {
	seen := make(map[string]bool, len(streams))
	var chains []string
	for _, chain := range streams {
		if !seen[chain] {
			seen[chain] = true
			chains = append(chains, chain)
		}
	}
	sort.Strings(chains)

	levels := make(map[string]int, len(chains))
	for i, chain := range chains {
		levels[chain] = i
	}
	return levels
}

// YLevels computes each task's vertical coordinate: the negation of its
// chain's rank, putting rank 0 at the top once the axis is inverted. A task
// whose chain is missing from the stream map gets coordinate 0 with a
// warning rather than failing the layout.
func YLevels(ctx context.Context, names []string, streams project.StreamMap, levels map[string]int) map[string]int {
	logger := ctxlog.FromContext(ctx)

	y := make(map[string]int, len(names))
	for _, name := range names {
		chain, ok := streams[name]
		if !ok {
			logger.Warn("Task missing chain/stream level, assigning default y=0.", "task", name)
			y[name] = 0
			continue
		}
		level, ok := levels[chain]
		if !ok {
			logger.Warn("Chain has no assigned level, assigning default y=0.", "task", name, "chain", chain)
			y[name] = 0
			continue
		}
		y[name] = -level
	}
	return y
}
