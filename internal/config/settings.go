package config

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings keys. Each is also a CLI flag name and, upper-cased with the
// branding prefix, an environment variable (e.g., NEW_COMPONENT_TEMPLATES_DIR).
const (
	KeyProject      = "project"
	KeyTemplate     = "template"
	KeyFormatter    = "formatter"
	KeyTemplatesDir = "templates-dir"
	KeyNoColor      = "no-color"
	KeyVerbose      = "verbose"
)

// Settings are the tool options that come from flags and the environment,
// as opposed to the component configuration read from JSON files.
type Settings struct {
	Project      string
	Template     string
	Formatter    string
	TemplatesDir string
	NoColor      bool
	Verbose      bool
}

// LoadSettings resolves settings with precedence flag > environment > flag
// default. Only flags present in fs are bound.
func LoadSettings(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	return &Settings{
		Project:      v.GetString(KeyProject),
		Template:     v.GetString(KeyTemplate),
		Formatter:    v.GetString(KeyFormatter),
		TemplatesDir: v.GetString(KeyTemplatesDir),
		NoColor:      v.GetBool(KeyNoColor),
		Verbose:      v.GetBool(KeyVerbose),
	}, nil
}
