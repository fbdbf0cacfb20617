package config

import (
	"strconv"
	"strings"
)

// Document is the unified, format-agnostic representation of a raw project
// description: one info record and a sequence of task records, in authoring
// order.
type Document struct {
	Info  InfoRecord
	Tasks []TaskRecord
}

// InfoRecord carries the project-level fields as raw strings. Date and
// calendar validation happens in the project parser.
type InfoRecord struct {
	Name        string
	StartDate   string
	PublishDate string
	Calendar    string
}

// TaskRecord is a single raw task entry. Numeric fields use Scalar so that
// "absent", "present but malformed" and "valid" survive the trip from the
// source format into the parser, which treats each case differently.
type TaskRecord struct {
	ID           Scalar
	Name         string
	Start        Scalar
	Finish       Scalar
	Type         string
	Chain        string
	Resources    string
	Predecessors string
	Remaining    Scalar
	Tags         []string
	URL          string
}

// Scalar is a lenient numeric field. Loaders accept either a native number
// or a numeric string; anything else is recorded as present-but-invalid
// rather than failing the whole document.
type Scalar struct {
	Present bool
	Valid   bool
	Value   float64
}

// Float wraps a known-good value, used by loaders for natively numeric input.
func Float(v float64) Scalar {
	return Scalar{Present: true, Valid: true, Value: v}
}

// Invalid marks a field that was present in the document but not numeric.
func Invalid() Scalar {
	return Scalar{Present: true}
}

// ParseScalar interprets a raw value as a Scalar: numbers pass through,
// numeric strings are parsed, everything else is present-but-invalid, and
// nil is absent.
func ParseScalar(raw any) Scalar {
	switch v := raw.(type) {
	case nil:
		return Scalar{}
	case float64:
		return Float(v)
	case int:
		return Float(float64(v))
	case int64:
		return Float(float64(v))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return Invalid()
		}
		return Float(f)
	default:
		return Invalid()
	}
}

// Int reports the Scalar's value as an integer id. The second return is
// false when the value is absent, invalid, or not a whole number.
func (s Scalar) Int() (int64, bool) {
	if !s.Valid {
		return 0, false
	}
	i := int64(s.Value)
	if float64(i) != s.Value {
		return 0, false
	}
	return i, true
}
