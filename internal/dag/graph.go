package dag

import (
	"context"
	"fmt"

	"github.com/vk/ganttline/internal/ctxlog"
	"github.com/vk/ganttline/internal/project"
)

// Graph is a directed graph over task names. The pipeline is single
// threaded, so the graph carries no locking; iteration helpers return
// names in insertion order for deterministic output.
type Graph struct {
	nodes map[string]*node
	order []string
}

// node is a single vertex. It is unexported to force interaction through
// the name-keyed API.
type node struct {
	name  string
	task  *project.Task
	preds map[string]*node
	succs map[string]*node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// Build assembles a graph from a parsed model and its resolved dependency
// list. Dependencies always reference known task names by construction, so
// edge errors indicate a programming mistake and are logged, not fatal.
func Build(ctx context.Context, m *project.Model, deps []project.Dependency) *Graph {
	logger := ctxlog.FromContext(ctx)

	g := New()
	for _, name := range m.Order {
		g.AddNode(m.Tasks[name])
	}
	for _, d := range deps {
		if err := g.AddEdge(d.Predecessor, d.Successor); err != nil {
			logger.Warn("Skipping dependency edge.", "from", d.Predecessor, "to", d.Successor, "error", err)
		}
	}

	if err := g.DetectCycles(); err != nil {
		// The timeline can still be drawn for a cyclic graph; the cycle is
		// surfaced so the author can fix the document.
		logger.Warn("Dependency graph contains a cycle.", "error", err)
	}

	logger.Debug("Graph built.", "nodes", g.Len(), "edges", len(g.Edges()))
	return g
}

// AddNode adds a node for the given task, keyed by its name. Re-adding a
// name replaces the stored task but keeps the node's edges.
func (g *Graph) AddNode(t *project.Task) {
	if t == nil {
		return
	}
	if existing, ok := g.nodes[t.Name]; ok {
		existing.task = t
		return
	}
	g.nodes[t.Name] = &node{
		name:  t.Name,
		task:  t,
		preds: make(map[string]*node),
		succs: make(map[string]*node),
	}
	g.order = append(g.order, t.Name)
}

// AddEdge creates a directed edge from predecessor to successor. An error
// is returned if either endpoint is unknown or the edge is self-referential.
func (g *Graph) AddEdge(from, to string) error {
	if from == to {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", from, to)
	}
	fromNode, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("source node not found: %s", from)
	}
	toNode, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("destination node not found: %s", to)
	}
	fromNode.succs[to] = toNode
	toNode.preds[from] = fromNode
	return nil
}

// HasNode reports whether the named node exists.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Task returns the task stored at the named node.
func (g *Graph) Task(name string) (*project.Task, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, false
	}
	return n.task, true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Names returns all node names in insertion order.
func (g *Graph) Names() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

// Edges returns every edge as a dependency pair, ordered by source node
// insertion order and then target insertion order.
func (g *Graph) Edges() []project.Dependency {
	var edges []project.Dependency
	for _, from := range g.order {
		n := g.nodes[from]
		for _, to := range g.order {
			if _, ok := n.succs[to]; ok {
				edges = append(edges, project.Dependency{Predecessor: from, Successor: to})
			}
		}
	}
	return edges
}

// InDegree returns the number of incoming edges for the named node.
func (g *Graph) InDegree(name string) int {
	if n, ok := g.nodes[name]; ok {
		return len(n.preds)
	}
	return 0
}

// OutDegree returns the number of outgoing edges for the named node.
func (g *Graph) OutDegree(name string) int {
	if n, ok := g.nodes[name]; ok {
		return len(n.succs)
	}
	return 0
}

// roots returns nodes with no incoming edges, excluding the given names.
func (g *Graph) roots(exclude ...string) []string {
	return g.filterDegree(func(n *node) int { return len(n.preds) }, exclude)
}

// leaves returns nodes with no outgoing edges, excluding the given names.
func (g *Graph) leaves(exclude ...string) []string {
	return g.filterDegree(func(n *node) int { return len(n.succs) }, exclude)
}

func (g *Graph) filterDegree(degree func(*node) int, exclude []string) []string {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}
	var names []string
	for _, name := range g.order {
		if excluded[name] {
			continue
		}
		if degree(g.nodes[name]) == 0 {
			names = append(names, name)
		}
	}
	return names
}

// DetectCycles checks the graph for cycles using a depth-first search with
// permanent and temporary marks. It returns a non-nil error naming the
// first node found inside a cycle.
func (g *Graph) DetectCycles() error {
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.name] {
			return nil
		}
		if temporary[n.name] {
			return fmt.Errorf("cycle detected involving node '%s'", n.name)
		}
		temporary[n.name] = true
		for _, succ := range n.succs {
			if err := visit(succ); err != nil {
				return err
			}
		}
		delete(temporary, n.name)
		permanent[n.name] = true
		return nil
	}

	for _, name := range g.order {
		if !permanent[name] {
			if err := visit(g.nodes[name]); err != nil {
				return err
			}
		}
	}
	return nil
}
