package project

import "strings"

// TaskType is the closed set of task classifications. The type is supplied
// by the document, never derived; SYSTEM is reserved for the synthetic
// START/END boundary nodes.
type TaskType int

const (
	TypeUnassigned TaskType = iota
	TypeCritical
	TypeFeeding
	TypeFree
	TypeBuffer
	TypeSystem
)

var taskTypeNames = map[TaskType]string{
	TypeUnassigned: "UNASSIGNED",
	TypeCritical:   "CRITICAL",
	TypeFeeding:    "FEEDING",
	TypeFree:       "FREE",
	TypeBuffer:     "BUFFER",
	TypeSystem:     "SYSTEM",
}

// String returns the canonical upper-case name of the type.
func (t TaskType) String() string {
	if name, ok := taskTypeNames[t]; ok {
		return name
	}
	return "UNASSIGNED"
}

// ParseTaskType matches a raw string against the closed set,
// case-insensitively. The second return is false for unrecognized input,
// letting the caller decide whether a warning is due.
func ParseTaskType(s string) (TaskType, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for t, name := range taskTypeNames {
		if name == upper {
			return t, true
		}
	}
	return TypeUnassigned, false
}
