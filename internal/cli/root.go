package cli

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/agentx-labs/new-component/internal/config"
	"github.com/agentx-labs/new-component/internal/format"
	"github.com/agentx-labs/new-component/internal/scaffold"
	"github.com/agentx-labs/new-component/internal/templates"
	"github.com/agentx-labs/new-component/internal/version"
	"github.com/spf13/cobra"
)

// Flags that replace scaffolding with an informational action.
const (
	flagListTemplates = "list-templates"
	flagShowConfig    = "show-config"
	flagCheckConfig   = "check-config"
)

// NewRootCmd builds the root command. Each call returns an independent
// command tree.
func NewRootCmd(info version.Info) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <componentName>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a component directory from a template, writing the
component file and an index file that re-exports it.

Configuration is read from ` + branding.ConfigFile() + ` in your home directory and
in the current directory; the local file replaces top-level keys of the global one.`,
		Example: "  " + branding.CLIName() + " button\n" +
			"  " + branding.CLIName() + " home-page -t page -p web",
		Version:       info.Short(),
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSettings(cmd.Flags())
			if err != nil {
				return err
			}

			switch {
			case flagSet(cmd, flagListTemplates):
				return runListTemplates(cmd, s)
			case flagSet(cmd, flagShowConfig):
				return runShowConfig(cmd, s)
			case flagSet(cmd, flagCheckConfig):
				return runCheckConfig(cmd)
			}

			return runCreate(cmd, s, args[0])
		},
	}
	cmd.SetVersionTemplate(info.String() + "\n")

	f := cmd.Flags()
	f.StringP(config.KeyProject, "p", config.DefaultProject, "Project whose templates to use")
	f.StringP(config.KeyTemplate, "t", scaffold.DefaultTemplate, templateUsage())
	f.String(config.KeyFormatter, format.NameAuto, fmt.Sprintf("Formatter: %s", strings.Join(format.Names(), ", ")))
	f.String(config.KeyTemplatesDir, "", "Read templates from this directory instead of the built-in set")
	f.Bool(config.KeyNoColor, false, "Disable colored output")
	f.BoolP(config.KeyVerbose, "v", false, "Print diagnostic logs to stderr")
	f.Bool(flagListTemplates, false, "List available templates and exit")
	f.Bool(flagShowConfig, false, "Print the effective configuration and exit")
	f.Bool(flagCheckConfig, false, "Validate configuration files against the schema and exit")
	cmd.MarkFlagsMutuallyExclusive(flagListTemplates, flagShowConfig, flagCheckConfig)

	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(v, commit, date string) error {
	return NewRootCmd(version.New(v, commit, date)).Execute()
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if flagSet(cmd, flagListTemplates) || flagSet(cmd, flagShowConfig) || flagSet(cmd, flagCheckConfig) {
		return cobra.NoArgs(cmd, args)
	}
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one component name, got %d arguments", len(args))
	}
	return nil
}

func flagSet(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	return err == nil && v
}

// templateUsage lists the built-in template names in the -t help text.
func templateUsage() string {
	names, err := templates.Builtin().List()
	if err != nil || len(names) == 0 {
		return "Template to scaffold from"
	}
	return fmt.Sprintf("Template to scaffold from (built-in: %s)", strings.Join(names, ", "))
}
