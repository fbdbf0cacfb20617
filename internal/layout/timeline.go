package layout

import (
	"context"
	"math"
	"time"

	"github.com/vk/ganttline/internal/ctxlog"
	"github.com/vk/ganttline/internal/project"
)

// Window is the visible date range of the timeline.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the window width as a fractional day count.
func (w Window) Days() float64 {
	return w.End.Sub(w.Start).Hours() / 24
}

// Contains reports whether t falls strictly inside the window.
func (w Window) Contains(t time.Time) bool {
	return t.After(w.Start) && t.Before(w.End)
}

// ComputeWindow derives the visible date range from the tasks' instants:
// one day of padding before the earliest start and a day and a half after
// the latest end. A missing bound is estimated one day out from the
// available one; with no usable instants at all the window defaults to
// seven days from project start.
func ComputeWindow(ctx context.Context, tasks map[string]*project.Task, projectStart time.Time) Window {
	logger := ctxlog.FromContext(ctx)

	var minStart, maxEnd time.Time
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if !t.Start.IsZero() && (minStart.IsZero() || t.Start.Before(minStart)) {
			minStart = t.Start
		}
		if !t.End.IsZero() && (maxEnd.IsZero() || t.End.After(maxEnd)) {
			maxEnd = t.End
		}
	}

	switch {
	case minStart.IsZero() && maxEnd.IsZero():
		logger.Warn("No valid dates found in tasks for range calculation, using default range.")
		return Window{Start: projectStart, End: projectStart.Add(7 * 24 * time.Hour)}
	case minStart.IsZero():
		minStart = maxEnd.Add(-24 * time.Hour)
	case maxEnd.IsZero():
		maxEnd = minStart.Add(24 * time.Hour)
	}

	return Window{
		Start: minStart.Add(-24 * time.Hour),
		End:   maxEnd.Add(36 * time.Hour),
	}
}

// Origin is the day-index origin: project start truncated to midnight.
// Every displayed date tick converts back to an integer day offset relative
// to this instant.
type Origin struct {
	at time.Time
}

// NewOrigin builds the origin from the project start date.
func NewOrigin(projectStart time.Time) Origin {
	return Origin{at: time.Date(
		projectStart.Year(), projectStart.Month(), projectStart.Day(),
		0, 0, 0, 0, projectStart.Location(),
	)}
}

// Time returns the origin instant.
func (o Origin) Time() time.Time {
	return o.at
}

// DayOffset returns the fractional day offset of t from the origin, the
// plottable coordinate along the temporal axis.
func (o Origin) DayOffset(t time.Time) float64 {
	return t.Sub(o.at).Hours() / 24
}

// DayIndex returns the integer day offset of t from the origin. The value
// is rounded, not truncated: floating-point date arithmetic does not land
// exactly on whole days.
func (o Origin) DayIndex(t time.Time) int {
	return int(math.Round(o.DayOffset(t)))
}
