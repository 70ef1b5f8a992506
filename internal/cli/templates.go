package cli

import (
	"fmt"

	"github.com/agentx-labs/new-component/internal/config"
	"github.com/agentx-labs/new-component/internal/templates"
	"github.com/spf13/cobra"
)

// templateSource returns the on-disk template directory when one is
// configured, the built-in set otherwise.
func templateSource(s *config.Settings, env config.Environment) (templates.Source, error) {
	if s.TemplatesDir == "" {
		return templates.Builtin(), nil
	}
	src, err := templates.Dir(env.Abs(s.TemplatesDir))
	if err != nil {
		return nil, err
	}
	return src, nil
}

func runListTemplates(cmd *cobra.Command, s *config.Settings) error {
	env, err := config.CurrentEnvironment()
	if err != nil {
		return err
	}
	src, err := templateSource(s, env)
	if err != nil {
		return err
	}
	names, err := src.List()
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintf(out, "No templates found in %s.\n", src.Origin())
		return nil
	}
	fmt.Fprintf(out, "Templates (%s):\n", src.Origin())
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
