package render

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vk/ganttline/internal/ctxlog"
	"github.com/vk/ganttline/internal/layout"
	"github.com/vk/ganttline/internal/project"
)

// SVG renders the timeline model into a standalone SVG document.
type SVG struct {
	theme Theme
}

// NewSVG creates an SVG renderer with the given theme.
func NewSVG(theme Theme) *SVG {
	return &SVG{theme: theme}
}

// canvas carries the resolved geometry for one rendering pass.
type canvas struct {
	theme  Theme
	window layout.Window
	origin layout.Origin
	levels map[string]int
	y      map[string]int
	width  float64
	height float64
}

// x converts an instant into a horizontal pixel coordinate.
func (c *canvas) x(t time.Time) float64 {
	return c.theme.MarginLeft + t.Sub(c.window.Start).Hours()/24*c.theme.DayWidth
}

// rowCenter returns the vertical center of the given chain rank.
func (c *canvas) rowCenter(rank int) float64 {
	return c.theme.MarginTop + (float64(rank)+0.5)*c.theme.RowHeight
}

// Render produces the SVG document for a finished model.
func (s *SVG) Render(ctx context.Context, m *Model) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)

	names := m.Order
	if len(names) == 0 {
		names = sortedTaskNames(m.Tasks)
	}

	levels := layout.ChainLevels(m.Streams)
	rows := len(levels)
	if rows == 0 {
		rows = 1
	}

	c := &canvas{
		theme:  s.theme,
		window: layout.ComputeWindow(ctx, m.Tasks, m.StartDate),
		origin: layout.NewOrigin(m.StartDate),
		levels: levels,
	}
	c.y = layout.YLevels(ctx, names, m.Streams, levels)
	c.width = s.theme.MarginLeft + c.window.Days()*s.theme.DayWidth + 40
	c.height = s.theme.MarginTop + float64(rows)*s.theme.RowHeight + s.theme.MarginBottom

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" font-family="sans-serif" font-size="%.0f">`+"\n",
		c.width, c.height, s.theme.FontSize)
	b.WriteString(`<defs><marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" fill="gray"/></marker></defs>` + "\n")
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%.0f" height="%.0f" fill="white"/>`+"\n", c.width, c.height)

	s.writeTitle(&b, c, m)
	if m.Calendar == project.CalendarStandard {
		s.writeWeekendShading(&b, c)
	}
	s.writeAxes(&b, c, m)
	s.writeChainLabels(&b, c)
	s.writeBars(&b, c, m, names)
	s.writeArrows(ctx, &b, c, m)
	s.writePublishLine(&b, c, m)
	s.writeLegend(&b, c, m)

	b.WriteString("</svg>\n")
	logger.Debug("SVG rendered.", "tasks", len(m.Tasks), "width", c.width, "height", c.height)
	return []byte(b.String()), nil
}

func (s *SVG) writeTitle(b *strings.Builder, c *canvas, m *Model) {
	title := m.ProjectName + " - Timeline"
	if m.PublishDate != nil && !m.SyntheticStart {
		title += fmt.Sprintf(" (Data as of: %s)", m.PublishDate.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="%.0f" font-weight="bold">%s</text>`+"\n",
		c.theme.MarginLeft, c.theme.MarginTop/2, s.theme.FontSize+4, xmlEscape(title))
}

// writeWeekendShading draws a light rect over every Saturday and Sunday in
// the window.
func (s *SVG) writeWeekendShading(b *strings.Builder, c *canvas) {
	plotBottom := c.height - c.theme.MarginBottom
	day := time.Date(c.window.Start.Year(), c.window.Start.Month(), c.window.Start.Day(),
		0, 0, 0, 0, c.window.Start.Location())
	for day.Before(c.window.End) {
		wd := day.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			x0 := c.x(day)
			x1 := c.x(day.AddDate(0, 0, 1))
			fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="lightgray" opacity="0.3"/>`+"\n",
				x0, c.theme.MarginTop, x1-x0, plotBottom-c.theme.MarginTop)
		}
		day = day.AddDate(0, 0, 1)
	}
}

// writeAxes draws the per-day grid plus the bottom date labels and the top
// day-index labels. The synthetic-start flag suppresses the date labels:
// fabricated calendar dates would only mislead.
func (s *SVG) writeAxes(b *strings.Builder, c *canvas, m *Model) {
	plotBottom := c.height - c.theme.MarginBottom
	day := time.Date(c.window.Start.Year(), c.window.Start.Month(), c.window.Start.Day(),
		0, 0, 0, 0, c.window.Start.Location())
	if day.Before(c.window.Start) {
		day = day.AddDate(0, 0, 1)
	}
	for !day.After(c.window.End) {
		x := c.x(day)
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="lightgray" stroke-dasharray="4,3"/>`+"\n",
			x, c.theme.MarginTop, x, plotBottom)
		if !m.SyntheticStart {
			fmt.Fprintf(b, `<text class="date-label" x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n",
				x, plotBottom+16, day.Format("Jan 02"))
		}
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" text-anchor="middle" fill="dimgray">%d</text>`+"\n",
			x, c.theme.MarginTop-8, c.origin.DayIndex(day))
		day = day.AddDate(0, 0, 1)
	}
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" text-anchor="middle" fill="dimgray">Day Index (Relative to Project Start)</text>`+"\n",
		(c.theme.MarginLeft+c.width)/2, c.theme.MarginTop-24)
}

func (s *SVG) writeChainLabels(b *strings.Builder, c *canvas) {
	chains := make([]string, 0, len(c.levels))
	for chain := range c.levels {
		chains = append(chains, chain)
	}
	sort.Slice(chains, func(i, j int) bool { return c.levels[chains[i]] < c.levels[chains[j]] })
	for _, chain := range chains {
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" text-anchor="end">%s</text>`+"\n",
			c.theme.MarginLeft-8, c.rowCenter(c.levels[chain])+4, xmlEscape(chain))
	}
}

// writeBars draws a bar per task with duration, a progress strip along the
// bottom edge when remaining data was supplied, and diamond markers for the
// zero-duration boundary nodes.
func (s *SVG) writeBars(b *strings.Builder, c *canvas, m *Model, names []string) {
	for _, name := range names {
		t := m.Tasks[name]
		if t == nil || t.Start.IsZero() || t.End.IsZero() {
			continue
		}
		rank := -c.y[name]
		cy := c.rowCenter(rank)
		color := s.theme.ColorFor(t.Type)

		if t.Total <= 0 {
			s.writeMilestone(b, c, t, cy, color)
			continue
		}

		x0 := c.x(t.Start)
		width := c.x(t.End) - x0
		barTop := cy - s.theme.BarHeight/2

		if t.URL != "" {
			fmt.Fprintf(b, `<a href="%s">`+"\n", xmlEscape(t.URL))
		}
		fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="black" opacity="0.5"/>`+"\n",
			x0, barTop, width, s.theme.BarHeight, color)

		if t.HasRemainingData && t.Completed > 0 {
			progressHeight := s.theme.BarHeight * 0.2
			progressWidth := width * float64(t.Completed) / float64(t.Total)
			fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				x0, barTop+s.theme.BarHeight-progressHeight, progressWidth, progressHeight, color)
		}

		label := t.ID + " " + t.Name
		if t.Resources != "" {
			label += " (" + t.Resources + ")"
		}
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n",
			x0+width/2, cy+4, xmlEscape(label))

		if len(t.Tags) > 0 {
			tags := make([]string, len(t.Tags))
			for i, tag := range t.Tags {
				tags[i] = "#" + tag
			}
			fmt.Fprintf(b, `<text x="%.1f" y="%.1f" text-anchor="end" font-size="%.0f" fill="white">%s</text>`+"\n",
				x0+width-2, barTop+s.theme.BarHeight-4, s.theme.FontSize-3, xmlEscape(strings.Join(tags, " ")))
		}
		if t.URL != "" {
			b.WriteString("</a>\n")
		}
	}
}

// writeMilestone draws the diamond marker used for START/END and other
// zero-duration tasks, annotated with its date.
func (s *SVG) writeMilestone(b *strings.Builder, c *canvas, t *project.Task, cy float64, color string) {
	x := c.x(t.Start)
	r := s.theme.BarHeight / 3
	fmt.Fprintf(b, `<path d="M %.1f %.1f L %.1f %.1f L %.1f %.1f L %.1f %.1f z" fill="%s" stroke="black"/>`+"\n",
		x, cy-r, x+r, cy, x, cy+r, x-r, cy, color)
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f">%s</text>`+"\n",
		x+r+3, cy-r, xmlEscape(t.Start.Format("Jan 02")))
}

// writeArrows draws a line per dependency from the predecessor's end to the
// successor's start, skipping degenerate arrows whose endpoints coincide.
func (s *SVG) writeArrows(ctx context.Context, b *strings.Builder, c *canvas, m *Model) {
	logger := ctxlog.FromContext(ctx)
	for _, d := range m.Dependencies {
		from, okFrom := m.Tasks[d.Predecessor]
		to, okTo := m.Tasks[d.Successor]
		if !okFrom || !okTo || from.End.IsZero() || to.Start.IsZero() {
			logger.Warn("Skipping arrow due to missing task data.", "from", d.Predecessor, "to", d.Successor)
			continue
		}
		x1, y1 := c.x(from.End), c.rowCenter(-c.y[d.Predecessor])
		x2, y2 := c.x(to.Start), c.rowCenter(-c.y[d.Successor])
		if abs(x1-x2) < 0.5 && abs(y1-y2) < 0.5 {
			continue
		}
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="gray" marker-end="url(#arrow)"/>`+"\n",
			x1, y1, x2, y2)
	}
}

// writePublishLine draws a dashed vertical rule at the publish date when it
// falls inside the window. Suppressed for synthetic start dates.
func (s *SVG) writePublishLine(b *strings.Builder, c *canvas, m *Model) {
	if m.PublishDate == nil || m.SyntheticStart || !c.window.Contains(*m.PublishDate) {
		return
	}
	x := c.x(*m.PublishDate)
	plotBottom := c.height - c.theme.MarginBottom
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="blue" stroke-dasharray="6,4" stroke-width="1.5"/>`+"\n",
		x, c.theme.MarginTop, x, plotBottom)
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" fill="blue">Publish Date (%s)</text>`+"\n",
		x+4, c.theme.MarginTop+12, m.PublishDate.Format("2006-01-02"))
}

// writeLegend emits a swatch per task type actually used in the model.
func (s *SVG) writeLegend(b *strings.Builder, c *canvas, m *Model) {
	used := make(map[project.TaskType]bool)
	for _, t := range m.Tasks {
		used[t.Type] = true
	}
	order := []project.TaskType{
		project.TypeUnassigned, project.TypeCritical, project.TypeFeeding,
		project.TypeFree, project.TypeBuffer, project.TypeSystem,
	}
	x := c.theme.MarginLeft
	y := c.height - c.theme.MarginBottom + 40
	for _, tt := range order {
		if !used[tt] {
			continue
		}
		fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="12" height="12" fill="%s"/>`+"\n", x, y-10, s.theme.ColorFor(tt))
		label := titleCase(tt.String())
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f">%s</text>`+"\n", x+16, y, label)
		x += 16 + float64(len(label))*s.theme.FontSize*0.65 + 20
	}
}

func sortedTaskNames(tasks map[string]*project.Task) []string {
	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
