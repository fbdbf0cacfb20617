// Package schema defines the HCL-tagged structs a project document decodes
// into before translation to the format-agnostic config model.
package schema

import (
	"github.com/zclconf/go-cty/cty"
)

// Project represents the `project` block of an HCL project document.
type Project struct {
	Name        string `hcl:"name,optional"`
	StartDate   string `hcl:"start_date,optional"`
	PublishDate string `hcl:"publish_date,optional"`
	Calendar    string `hcl:"calendar,optional"`
}

// Task represents a `task "<name>"` block. Numeric attributes decode to
// cty.Value so that string-typed numbers ("5") survive into translation,
// where the lenient conversion rules apply.
type Task struct {
	Name         string    `hcl:"name,label"`
	ID           cty.Value `hcl:"id,optional"`
	Start        cty.Value `hcl:"start,optional"`
	Finish       cty.Value `hcl:"finish,optional"`
	Type         string    `hcl:"type,optional"`
	Chain        string    `hcl:"chain,optional"`
	Resources    string    `hcl:"resources,optional"`
	Predecessors string    `hcl:"predecessors,optional"`
	Remaining    cty.Value `hcl:"remaining,optional"`
	Tags         []string  `hcl:"tags,optional"`
	URL          string    `hcl:"url,optional"`
}

// ProjectConfig is the top-level structure of an HCL project document.
type ProjectConfig struct {
	Project *Project `hcl:"project,block"`
	Tasks   []*Task  `hcl:"task,block"`
}
