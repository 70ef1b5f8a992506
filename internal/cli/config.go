package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/agentx-labs/new-component/internal/config"
	"github.com/spf13/cobra"
)

// runShowConfig prints each layer's status followed by the effective
// configuration and the template the current flags select.
func runShowConfig(cmd *cobra.Command, s *config.Settings) error {
	env, err := config.CurrentEnvironment()
	if err != nil {
		return err
	}
	res, err := config.Resolve(env)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Layers:")
	for _, l := range res.Layers {
		path := l.Path
		if path == "" {
			path = "(built-in)"
		}
		fmt.Fprintf(out, "  %-9s %-10s %s\n", l.Name, l.Status, path)
		if l.Err != nil {
			fmt.Fprintf(out, "            %v\n", l.Err)
		}
	}

	data, err := json.MarshalIndent(res.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Effective configuration:")
	fmt.Fprintln(out, string(data))

	fmt.Fprintln(out)
	tc, err := res.Config.Lookup(s.Project, s.Template)
	if err != nil {
		fmt.Fprintf(out, "Selected: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "Selected: project %q, template %q -> %s (index: %t)\n", s.Project, s.Template, tc.Dir, tc.WantsIndex())
	return nil
}

// errInvalidConfig is returned when any override file fails validation.
var errInvalidConfig = errors.New("configuration check failed")

// runCheckConfig validates the global and local override files against the
// configuration schema. Missing files are skipped.
func runCheckConfig(cmd *cobra.Command) error {
	env, err := config.CurrentEnvironment()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, path := range []string{env.GlobalPath(), env.LocalPath()} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(out, "%s: not found, skipped\n", path)
			continue
		}

		result, err := config.CheckFile(path)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failed = true
			continue
		}
		if result.Valid {
			fmt.Fprintf(out, "%s: ok\n", path)
			continue
		}
		failed = true
		fmt.Fprintf(out, "%s: %d issue(s)\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  %s\n", issue)
		}
	}

	if failed {
		return errInvalidConfig
	}
	return nil
}
