package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/agentx-labs/new-component/internal/config"
)

// Output file extensions.
const (
	ComponentExt = "tsx"
	IndexExt     = "ts"
)

// DefaultTemplate is the template used when none is selected.
const DefaultTemplate = "component"

// Selection names the project and template to scaffold from.
type Selection struct {
	Project  string
	Template string
}

// DefaultSelection returns the "default" project and "component" template.
func DefaultSelection() Selection {
	return Selection{Project: config.DefaultProject, Template: DefaultTemplate}
}

// Paths are the output locations derived for one component, relative to the
// working directory unless the configured dir is absolute.
type Paths struct {
	ParentDir     string // configured template dir
	ComponentDir  string // <dir>/<name>
	ComponentFile string // <dir>/<name>/<name>.tsx
	IndexFile     string // <dir>/<name>/index.ts
}

// Plan is everything the pipeline needs for one run. It is not modified after
// NewPlan returns.
type Plan struct {
	ComponentName string
	Selection     Selection
	Template      config.TemplateConfig
	Paths         Paths
}

// ErrEmptyName is returned for an empty component name.
var ErrEmptyName = errors.New("component name must not be empty")

// NewPlan looks up the template settings for sel and derives the output
// paths. A project/template pair missing from cfg yields a
// *config.LookupError.
func NewPlan(cfg *config.Config, componentName string, sel Selection) (*Plan, error) {
	if componentName == "" {
		return nil, ErrEmptyName
	}

	tc, err := cfg.Lookup(sel.Project, sel.Template)
	if err != nil {
		return nil, fmt.Errorf("resolving template configuration: %w", err)
	}

	componentDir := filepath.Join(tc.Dir, componentName)
	return &Plan{
		ComponentName: componentName,
		Selection:     sel,
		Template:      tc,
		Paths: Paths{
			ParentDir:     filepath.Clean(tc.Dir),
			ComponentDir:  componentDir,
			ComponentFile: filepath.Join(componentDir, componentName+"."+ComponentExt),
			IndexFile:     filepath.Join(componentDir, "index."+IndexExt),
		},
	}, nil
}
