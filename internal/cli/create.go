package cli

import (
	"errors"
	"fmt"

	"github.com/agentx-labs/new-component/internal/config"
	"github.com/agentx-labs/new-component/internal/format"
	"github.com/agentx-labs/new-component/internal/scaffold"
	"github.com/agentx-labs/new-component/internal/ui"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// runCreate scaffolds componentName. An existing component directory is
// reported to the user and is not an error.
func runCreate(cmd *cobra.Command, s *config.Settings, componentName string) error {
	logger := ui.NewLogger(cmd.ErrOrStderr(), s.Verbose)

	env, err := config.CurrentEnvironment()
	if err != nil {
		return err
	}

	res, err := config.Resolve(env)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logLayers(logger, res.Layers)

	plan, err := scaffold.NewPlan(res.Config, componentName, scaffold.Selection{
		Project:  s.Project,
		Template: s.Template,
	})
	if err != nil {
		return err
	}

	src, err := templateSource(s, env)
	if err != nil {
		return err
	}
	logger.Debug("template source", "origin", src.Origin(), "template", s.Template)

	formatter, err := format.Select(s.Formatter, env.WorkDir)
	if err != nil {
		return err
	}
	logger.Debug("formatter selected", "requested", s.Formatter, "using", formatterName(formatter))
	if _, ok := formatter.(format.Basic); ok && (s.Formatter == format.NameAuto || s.Formatter == "") {
		logger.Warn("prettier not found, falling back to the basic formatter; quote, semicolon and trailing comma style will not be enforced")
	}

	console := newConsole(cmd, s)
	p := &scaffold.Pipeline{
		Fs:        afero.NewOsFs(),
		WorkDir:   env.WorkDir,
		Templates: src,
		Renderer:  &scaffold.Renderer{Formatter: formatter},
		Reporter:  console,
		Logger:    logger,
	}

	result, err := p.Run(cmd.Context(), plan)
	var collision *scaffold.CollisionError
	if errors.As(err, &collision) {
		console.Error(collision.Error())
		return nil
	}
	if err != nil {
		logger.Debug("scaffold stopped", "created", result.DirsCreated, "written", result.FilesWritten)
		return err
	}
	return nil
}

func newConsole(cmd *cobra.Command, s *config.Settings) *ui.Console {
	out := cmd.OutOrStdout()
	return ui.NewConsole(out, ui.WithColor(!s.NoColor && ui.IsTerminal(out)))
}

func logLayers(logger *log.Logger, layers []config.Layer) {
	for _, l := range layers {
		if l.Status == config.StatusMalformed {
			logger.Debug("ignoring malformed configuration file", "layer", l.Name, "path", l.Path, "err", l.Err)
			continue
		}
		logger.Debug("configuration layer", "layer", l.Name, "path", l.Path, "status", l.Status)
	}
}

func formatterName(f format.Formatter) string {
	switch f.(type) {
	case *format.Prettier:
		return format.NamePrettier
	case format.Basic:
		return format.NameBasic
	case format.None:
		return format.NameNone
	default:
		return fmt.Sprintf("%T", f)
	}
}
