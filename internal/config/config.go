package config

import (
	"encoding/json"
	"fmt"
	"sort"
)

// DefaultProject is the project name that selects the top-level "default"
// bucket instead of an entry under "project".
const DefaultProject = "default"

// Top-level keys understood by the resolver.
const (
	keyDefault = "default"
	keyProject = "project"
)

// TemplateConfig is the per-template setting selected for a scaffold run.
type TemplateConfig struct {
	Dir   string `json:"dir"`
	Index *bool  `json:"index,omitempty"`
}

// WantsIndex reports whether an index file should be written. Only an
// explicit false disables it.
func (t TemplateConfig) WantsIndex() bool {
	return t.Index == nil || *t.Index
}

// Bucket maps template names to their settings.
type Bucket map[string]TemplateConfig

// Config is the effective configuration after all layers are merged.
type Config struct {
	Default Bucket            `json:"default"`
	Project map[string]Bucket `json:"project,omitempty"`

	// Extra holds top-level keys the resolver does not interpret.
	Extra map[string]json.RawMessage `json:"-"`
}

// Resolved is the effective configuration together with the layers it was
// built from, in merge order.
type Resolved struct {
	Config *Config
	Layers []Layer
}

// Defaults returns the built-in layer.
func Defaults() Fragment {
	return Fragment{
		keyDefault: json.RawMessage(`{"component":{"dir":"src/components","index":true}}`),
	}
}

// Resolve loads the global and local override files for env and merges them
// over the built-in defaults.
func Resolve(env Environment) (*Resolved, error) {
	layers := []Layer{
		{Name: "defaults", Status: StatusLoaded, Fragment: Defaults()},
		LoadLayer("global", env.GlobalPath()),
		LoadLayer("local", env.LocalPath()),
	}

	fragments := make([]Fragment, len(layers))
	for i, l := range layers {
		fragments[i] = l.Fragment
	}

	cfg, err := Decode(Merge(fragments...))
	if err != nil {
		return nil, err
	}
	return &Resolved{Config: cfg, Layers: layers}, nil
}

// Decode converts a merged fragment into a typed Config.
func Decode(frag Fragment) (*Config, error) {
	cfg := &Config{Extra: map[string]json.RawMessage{}}
	for key, raw := range frag {
		var err error
		switch key {
		case keyDefault:
			err = json.Unmarshal(raw, &cfg.Default)
		case keyProject:
			err = json.Unmarshal(raw, &cfg.Project)
		default:
			cfg.Extra[key] = raw
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %q configuration: %w", key, err)
		}
	}
	return cfg, nil
}

// Lookup selects the template settings for a project/template pair. The
// "default" project reads the top-level bucket; any other name must exist
// under "project". There is no fallback between the two.
func (c *Config) Lookup(project, template string) (TemplateConfig, error) {
	var (
		bucket Bucket
		ok     bool
	)
	if project == DefaultProject {
		bucket, ok = c.Default, c.Default != nil
	} else {
		bucket, ok = c.Project[project]
	}
	if !ok || bucket == nil {
		return TemplateConfig{}, &LookupError{Project: project, Template: template, Reason: ReasonProjectNotFound}
	}

	tc, ok := bucket[template]
	if !ok {
		return TemplateConfig{}, &LookupError{
			Project:   project,
			Template:  template,
			Reason:    ReasonTemplateNotFound,
			Available: sortedKeys(bucket),
		}
	}
	if tc.Dir == "" {
		return TemplateConfig{}, &LookupError{Project: project, Template: template, Reason: ReasonMissingDir}
	}
	return tc, nil
}

// Projects returns the configured non-default project names, sorted.
func (c *Config) Projects() []string {
	names := make([]string, 0, len(c.Project))
	for name := range c.Project {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(b Bucket) []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
