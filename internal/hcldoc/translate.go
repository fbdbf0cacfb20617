// This file translates the HCL schema structs into the format-agnostic
// document model defined in the config package.

package hcldoc

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/ganttline/internal/config"
	"github.com/vk/ganttline/internal/schema"
)

// translate converts a decoded ProjectConfig into a config.Document.
func (l *Loader) translate(cfg *schema.ProjectConfig) *config.Document {
	doc := &config.Document{}
	if cfg.Project != nil {
		doc.Info = config.InfoRecord{
			Name:        cfg.Project.Name,
			StartDate:   cfg.Project.StartDate,
			PublishDate: cfg.Project.PublishDate,
			Calendar:    cfg.Project.Calendar,
		}
	}
	for _, t := range cfg.Tasks {
		doc.Tasks = append(doc.Tasks, config.TaskRecord{
			ID:           scalarFromCty(t.ID),
			Name:         t.Name,
			Start:        scalarFromCty(t.Start),
			Finish:       scalarFromCty(t.Finish),
			Type:         t.Type,
			Chain:        t.Chain,
			Resources:    t.Resources,
			Predecessors: t.Predecessors,
			Remaining:    scalarFromCty(t.Remaining),
			Tags:         t.Tags,
			URL:          t.URL,
		})
	}
	return doc
}

// scalarFromCty applies the lenient numeric rules to an HCL attribute value:
// unset is absent, a value convertible to number (including numeric strings)
// is valid, anything else is present-but-invalid.
func scalarFromCty(v cty.Value) config.Scalar {
	if v == cty.NilVal || v.IsNull() {
		return config.Scalar{}
	}
	converted, err := convert.Convert(v, cty.Number)
	if err != nil {
		return config.Invalid()
	}
	f, _ := converted.AsBigFloat().Float64()
	return config.Float(f)
}
