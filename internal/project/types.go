package project

import "time"

// CalendarMode selects how the timeline treats weekends.
type CalendarMode string

const (
	// CalendarStandard renders a working-week calendar with weekend shading.
	CalendarStandard CalendarMode = "standard"
	// CalendarContinuous renders every day identically.
	CalendarContinuous CalendarMode = "continuous"
)

// DefaultProjectName is used when the document has no project name.
const DefaultProjectName = "Project"

// DefaultChain is the stream label for tasks that declare none.
const DefaultChain = "Unknown"

// Info is the validated project-level metadata.
type Info struct {
	Name        string
	Calendar    CalendarMode
	StartDate   time.Time
	PublishDate *time.Time
	// SyntheticStartDate is true when StartDate was fabricated because the
	// document supplied none. Renderers use it to suppress date-axis labels
	// and publish-date decorations.
	SyntheticStartDate bool
}

// Task is a fully resolved task: offsets turned into instants, durations
// derived, enums validated.
type Task struct {
	ID               string
	Name             string
	Start            time.Time
	End              time.Time
	Total            time.Duration
	Completed        time.Duration
	Remaining        time.Duration
	HasRemainingData bool
	Type             TaskType
	Chain            string
	Resources        string
	Tags             []string
	URL              string

	// Predecessors keeps the raw comma-separated id string for the
	// dependency resolution pass.
	Predecessors string
}

// Dependency is a directed edge between two known task names.
type Dependency struct {
	Predecessor string
	Successor   string
}

// StreamMap maps each task name to its chain label. It is kept in lockstep
// with the graph: every node has exactly one entry.
type StreamMap map[string]string

// Model is the output of the parsing stage: everything downstream stages
// need, built fresh per call.
type Model struct {
	Info  Info
	Tasks map[string]*Task
	// Order lists task names in document order. Maps do not preserve
	// insertion order, and dependency output order must follow it.
	Order    []string
	IDToName map[int64]string
	Streams  StreamMap
}
