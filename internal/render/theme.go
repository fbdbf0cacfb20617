package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/ganttline/internal/project"
)

// Theme holds the presentation knobs of the SVG renderer. Zero fields in a
// loaded theme fall back to the defaults, so a theme file only needs to
// name what it changes.
type Theme struct {
	DayWidth     float64           `yaml:"day_width"`
	RowHeight    float64           `yaml:"row_height"`
	BarHeight    float64           `yaml:"bar_height"`
	MarginLeft   float64           `yaml:"margin_left"`
	MarginTop    float64           `yaml:"margin_top"`
	MarginBottom float64           `yaml:"margin_bottom"`
	FontSize     float64           `yaml:"font_size"`
	Colors       map[string]string `yaml:"colors"`
}

// DefaultTheme returns the built-in presentation defaults, including the
// task-type color table.
func DefaultTheme() Theme {
	return Theme{
		DayWidth:     40,
		RowHeight:    48,
		BarHeight:    24,
		MarginLeft:   150,
		MarginTop:    70,
		MarginBottom: 70,
		FontSize:     11,
		Colors: map[string]string{
			"UNASSIGNED": "purple",
			"CRITICAL":   "red",
			"FEEDING":    "orange",
			"FREE":       "blue",
			"BUFFER":     "gray",
			"SYSTEM":     "black",
		},
	}
}

// LoadTheme reads a YAML theme file and merges it over the defaults.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	var overlay Theme
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Theme{}, fmt.Errorf("failed to decode theme file %s: %w", path, err)
	}
	return DefaultTheme().merge(overlay), nil
}

// merge overlays the non-zero fields of the given theme onto the receiver.
func (t Theme) merge(o Theme) Theme {
	if o.DayWidth > 0 {
		t.DayWidth = o.DayWidth
	}
	if o.RowHeight > 0 {
		t.RowHeight = o.RowHeight
	}
	if o.BarHeight > 0 {
		t.BarHeight = o.BarHeight
	}
	if o.MarginLeft > 0 {
		t.MarginLeft = o.MarginLeft
	}
	if o.MarginTop > 0 {
		t.MarginTop = o.MarginTop
	}
	if o.MarginBottom > 0 {
		t.MarginBottom = o.MarginBottom
	}
	if o.FontSize > 0 {
		t.FontSize = o.FontSize
	}
	for name, color := range o.Colors {
		t.Colors[name] = color
	}
	return t
}

// ColorFor returns the fill color for a task type, falling back to the
// UNASSIGNED color for anything unmapped.
func (t Theme) ColorFor(tt project.TaskType) string {
	if c, ok := t.Colors[tt.String()]; ok {
		return c
	}
	return t.Colors["UNASSIGNED"]
}
