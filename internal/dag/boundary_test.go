package dag

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/ganttline/internal/project"
)

func boundaryFixture(names ...string) (*Graph, map[string]*project.Task, project.StreamMap) {
	g := New()
	tasks := make(map[string]*project.Task)
	streams := make(project.StreamMap)
	for i, name := range names {
		task := newTask(name, i, i+1)
		g.AddNode(task)
		tasks[name] = task
		streams[name] = project.DefaultChain
	}
	return g, tasks, streams
}

func TestAddBoundary_LinearChain(t *testing.T) {
	g, tasks, streams := boundaryFixture("A", "B")
	require.NoError(t, g.AddEdge("A", "B"))

	AddBoundary(context.Background(), g, tasks, streams)

	require.True(t, g.HasNode(StartNode))
	require.True(t, g.HasNode(EndNode))
	assert.Equal(t, 4, g.Len())

	// A is the only root, B the only leaf.
	assert.Equal(t, 1, g.OutDegree(StartNode))
	assert.Equal(t, 1, g.InDegree("A"))
	assert.Equal(t, 1, g.InDegree(EndNode))
	assert.Equal(t, 1, g.OutDegree("B"))

	// Nothing points into START and nothing leaves END.
	assert.Zero(t, g.InDegree(StartNode))
	assert.Zero(t, g.OutDegree(EndNode))
}

func TestAddBoundary_Placement(t *testing.T) {
	g, tasks, streams := boundaryFixture("A", "B")

	AddBoundary(context.Background(), g, tasks, streams)

	minStart := tasks["A"].Start
	maxEnd := tasks["B"].End

	start := tasks[StartNode]
	end := tasks[EndNode]
	require.NotNil(t, start)
	require.NotNil(t, end)

	assert.Equal(t, minStart.Add(-24*time.Hour), start.Start)
	assert.Equal(t, start.Start, start.End)
	assert.Equal(t, maxEnd.Add(48*time.Hour), end.Start)
	assert.Equal(t, end.Start, end.End)
	assert.Equal(t, project.TypeSystem, start.Type)
	assert.Equal(t, project.TypeSystem, end.Type)
}

func TestAddBoundary_MutatesTaskAndStreamMaps(t *testing.T) {
	g, tasks, streams := boundaryFixture("A")

	AddBoundary(context.Background(), g, tasks, streams)

	assert.Contains(t, tasks, StartNode)
	assert.Contains(t, tasks, EndNode)
	assert.Equal(t, BoundaryChain, streams[StartNode])
	assert.Equal(t, BoundaryChain, streams[EndNode])
}

func TestAddBoundary_Idempotent(t *testing.T) {
	g, tasks, streams := boundaryFixture("A", "B")

	AddBoundary(context.Background(), g, tasks, streams)
	edgesBefore := g.Edges()

	AddBoundary(context.Background(), g, tasks, streams)

	assert.Equal(t, edgesBefore, g.Edges())
	assert.Equal(t, 4, g.Len())
}

func TestAddBoundary_EmptyGraphIsNoOp(t *testing.T) {
	g := New()
	tasks := make(map[string]*project.Task)
	streams := make(project.StreamMap)

	AddBoundary(context.Background(), g, tasks, streams)

	assert.Zero(t, g.Len())
	assert.Empty(t, tasks)
}

func TestAddBoundary_DisconnectedTasksAllLinked(t *testing.T) {
	g, tasks, streams := boundaryFixture("A", "B", "C")

	AddBoundary(context.Background(), g, tasks, streams)

	// With no document edges, every task is both root and leaf.
	assert.Equal(t, 3, g.OutDegree(StartNode))
	assert.Equal(t, 3, g.InDegree(EndNode))
	for _, name := range []string{"A", "B", "C"} {
		assert.Equal(t, 1, g.InDegree(name), name)
		assert.Equal(t, 1, g.OutDegree(name), name)
	}
}

func TestAddBoundary_DateRangeFallback(t *testing.T) {
	g := New()
	task := &project.Task{ID: "1", Name: "A", Chain: project.DefaultChain, Tags: []string{}}
	g.AddNode(task)
	tasks := map[string]*project.Task{"A": task}
	streams := project.StreamMap{"A": project.DefaultChain}

	AddBoundary(context.Background(), g, tasks, streams)

	start := tasks[StartNode]
	end := tasks[EndNode]
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.False(t, start.Start.IsZero())
	assert.True(t, end.Start.After(start.Start))
}
