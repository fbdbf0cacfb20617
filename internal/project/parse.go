package project

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/vk/ganttline/internal/config"
	"github.com/vk/ganttline/internal/ctxlog"
)

// timeNow is swapped out by tests that pin "today".
var timeNow = time.Now

// errProjectStartMissing marks an absent start date; it never escapes Parse.
var errProjectStartMissing = errors.New("project start date is missing")

// Parse converts a raw document into a validated project model. It never
// fails: malformed records are skipped or defaulted with a warning, and a
// missing or unparseable project start date triggers the synthetic
// start-date policy rather than an error.
func Parse(ctx context.Context, doc *config.Document) *Model {
	logger := ctxlog.FromContext(ctx)

	m := &Model{
		Tasks:    make(map[string]*Task),
		IDToName: make(map[int64]string),
		Streams:  make(StreamMap),
	}

	m.Info = parseInfo(ctx, doc)

	for _, rec := range doc.Tasks {
		parseTask(ctx, m, rec)
	}

	logger.Debug("Project parsed.",
		"name", m.Info.Name,
		"tasks", len(m.Tasks),
		"calendar", m.Info.Calendar,
		"synthetic_start", m.Info.SyntheticStartDate,
	)
	return m
}

// parseInfo validates the project-level record, including calendar fallback
// and the synthetic start-date policy.
func parseInfo(ctx context.Context, doc *config.Document) Info {
	logger := ctxlog.FromContext(ctx)

	info := Info{Name: doc.Info.Name, Calendar: CalendarStandard}
	if info.Name == "" {
		info.Name = DefaultProjectName
	}

	switch mode := CalendarMode(strings.ToLower(doc.Info.Calendar)); mode {
	case CalendarStandard, CalendarContinuous:
		info.Calendar = mode
	case "":
		// Absent: keep the default without noise.
	default:
		logger.Warn("Invalid calendar type, defaulting to standard.", "calendar", doc.Info.Calendar)
	}

	if doc.Info.PublishDate != "" {
		if t, err := dateparse.ParseAny(doc.Info.PublishDate); err == nil {
			info.PublishDate = &t
		} else {
			logger.Warn("Could not parse project publish date, ignoring it.",
				"publish_date", doc.Info.PublishDate, "error", err)
		}
	}

	start, err := parseStartDate(doc.Info.StartDate)
	if err != nil {
		// Synthetic start-date policy: no usable start date means no usable
		// standard calendar either. Anchor day zero so that the earliest
		// task offset lands on today's midnight.
		minOffset := minStartOffset(doc.Tasks)
		start = midnight(timeNow()).Add(-days(minOffset))
		info.Calendar = CalendarContinuous
		info.SyntheticStartDate = true
		logger.Warn("Invalid or missing project start date, synthesizing one anchored to today.",
			"start_date", doc.Info.StartDate, "min_offset", minOffset, "synthetic_start", start)
	}
	info.StartDate = start

	return info
}

// parseStartDate parses and midnight-normalizes the supplied start date.
func parseStartDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errProjectStartMissing
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}, err
	}
	return midnight(t), nil
}

// parseTask validates one raw record and, when it survives, registers the
// task, its id mapping and its stream entry.
func parseTask(ctx context.Context, m *Model, rec config.TaskRecord) {
	logger := ctxlog.FromContext(ctx)

	id, idOK := rec.ID.Int()
	if !idOK || rec.Name == "" {
		logger.Warn("Skipping task with missing id or name.", "id", rec.ID.Value, "name", rec.Name)
		return
	}

	startOffset := 0.0
	if rec.Start.Present {
		if !rec.Start.Valid {
			logger.Warn("Skipping task due to invalid start offset.", "name", rec.Name, "id", id)
			return
		}
		startOffset = rec.Start.Value
	}
	finishOffset := startOffset
	if rec.Finish.Present {
		if !rec.Finish.Valid {
			logger.Warn("Skipping task due to invalid finish offset.", "name", rec.Name, "id", id)
			return
		}
		finishOffset = rec.Finish.Value
	}

	start := m.Info.StartDate.Add(days(startOffset))
	end := m.Info.StartDate.Add(days(finishOffset))
	if !end.After(start) {
		if finishOffset < startOffset {
			logger.Warn("Task finish offset not after start offset, clamping to zero duration.",
				"name", rec.Name, "id", id, "start", startOffset, "finish", finishOffset)
		}
		end = start
	}
	total := end.Sub(start)

	var remaining time.Duration
	hasRemaining := false
	if rec.Remaining.Present {
		if rec.Remaining.Valid {
			hasRemaining = true
			v := rec.Remaining.Value
			if v < 0 {
				v = 0
			}
			remaining = days(v)
			if remaining > total {
				remaining = total
			}
		} else {
			logger.Warn("Ignoring unparseable remaining duration.", "name", rec.Name, "id", id)
		}
	}

	taskType := TypeUnassigned
	if rec.Type != "" {
		var known bool
		taskType, known = ParseTaskType(rec.Type)
		if !known {
			logger.Warn("Unknown task type, using UNASSIGNED.", "name", rec.Name, "type", rec.Type)
		}
	}

	chain := rec.Chain
	if chain == "" {
		chain = DefaultChain
	}

	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}

	if _, exists := m.Tasks[rec.Name]; exists {
		logger.Warn("Duplicate task name, the earlier definition is overwritten.", "name", rec.Name)
	} else {
		m.Order = append(m.Order, rec.Name)
	}

	m.Tasks[rec.Name] = &Task{
		ID:               strconv.FormatInt(id, 10),
		Name:             rec.Name,
		Start:            start,
		End:              end,
		Total:            total,
		Completed:        total - remaining,
		Remaining:        remaining,
		HasRemainingData: hasRemaining,
		Type:             taskType,
		Chain:            chain,
		Resources:        rec.Resources,
		Tags:             tags,
		URL:              rec.URL,
		Predecessors:     rec.Predecessors,
	}
	m.IDToName[id] = rec.Name
	m.Streams[rec.Name] = chain
}

// minStartOffset scans the raw records for the smallest valid start offset,
// defaulting to 0 when none parse.
func minStartOffset(tasks []config.TaskRecord) float64 {
	min := 0.0
	found := false
	for _, rec := range tasks {
		if !rec.Start.Valid {
			continue
		}
		if !found || rec.Start.Value < min {
			min = rec.Start.Value
			found = true
		}
	}
	return min
}

// days converts a fractional day count into a duration.
func days(v float64) time.Duration {
	return time.Duration(v * float64(24*time.Hour))
}

// midnight truncates a time to the start of its day, preserving location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
