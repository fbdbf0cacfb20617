package dag

import (
	"context"
	"time"

	"github.com/vk/ganttline/internal/ctxlog"
	"github.com/vk/ganttline/internal/project"
)

// Names of the synthetic boundary nodes.
const (
	StartNode = "START"
	EndNode   = "END"
)

// BoundaryChain is the stream label assigned to the boundary nodes.
const BoundaryChain = "System"

// AddBoundary augments the graph with synthetic START and END nodes: START
// gains an edge to every root, every leaf gains an edge to END. The task
// map and stream map are mutated in place so they stay in lockstep with the
// graph.
//
// The call is idempotent: if either boundary node already exists it is a
// no-op, as it is for an empty graph.
func AddBoundary(ctx context.Context, g *Graph, tasks map[string]*project.Task, streams project.StreamMap) {
	logger := ctxlog.FromContext(ctx)

	if g.HasNode(StartNode) || g.HasNode(EndNode) {
		logger.Debug("START/END nodes already exist.")
		return
	}
	if g.Len() == 0 {
		logger.Warn("Graph is empty, cannot add START/END nodes.")
		return
	}

	roots := g.roots(StartNode, EndNode)
	leaves := g.leaves(StartNode, EndNode)
	minStart, maxEnd := dateRange(ctx, g, tasks)

	// START sits one day before the earliest task; END two days after the
	// latest, giving the exit marker visual breathing room.
	startTask := boundaryTask(StartNode, minStart.Add(-24*time.Hour))
	endTask := boundaryTask(EndNode, maxEnd.Add(48*time.Hour))

	g.AddNode(startTask)
	tasks[StartNode] = startTask
	streams[StartNode] = BoundaryChain

	g.AddNode(endTask)
	tasks[EndNode] = endTask
	streams[EndNode] = BoundaryChain

	logger.Debug("Connecting START to roots.", "roots", roots)
	for _, root := range roots {
		if err := g.AddEdge(StartNode, root); err != nil {
			logger.Warn("Failed to connect START to root.", "root", root, "error", err)
		}
	}
	logger.Debug("Connecting leaves to END.", "leaves", leaves)
	for _, leaf := range leaves {
		if err := g.AddEdge(leaf, EndNode); err != nil {
			logger.Warn("Failed to connect leaf to END.", "leaf", leaf, "error", err)
		}
	}
}

// boundaryTask creates a zero-duration SYSTEM task pinned at the given instant.
func boundaryTask(name string, at time.Time) *project.Task {
	return &project.Task{
		ID:    name,
		Name:  name,
		Start: at,
		End:   at,
		Type:  project.TypeSystem,
		Chain: BoundaryChain,
		Tags:  []string{},
	}
}

// dateRange scans the graph's tasks for the earliest start and latest end,
// ignoring boundary nodes and tasks without usable instants. When nothing
// usable exists it falls back to an arbitrary task's start (or now),
// extended by one day, so START/END always get valid placement dates.
func dateRange(ctx context.Context, g *Graph, tasks map[string]*project.Task) (time.Time, time.Time) {
	var minStart, maxEnd time.Time
	for name, t := range tasks {
		if t == nil || name == StartNode || name == EndNode {
			continue
		}
		if !t.Start.IsZero() && (minStart.IsZero() || t.Start.Before(minStart)) {
			minStart = t.Start
		}
		if !t.End.IsZero() && (maxEnd.IsZero() || t.End.After(maxEnd)) {
			maxEnd = t.End
		}
	}

	if minStart.IsZero() || maxEnd.IsZero() {
		ctxlog.FromContext(ctx).Warn("Could not determine date range from tasks, using default range.")
		base := time.Now()
		for _, name := range g.Names() {
			if t, ok := g.Task(name); ok && t != nil && !t.Start.IsZero() {
				base = t.Start
				break
			}
		}
		return base, base.Add(24 * time.Hour)
	}
	return minStart, maxEnd
}
