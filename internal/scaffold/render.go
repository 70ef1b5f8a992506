package scaffold

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentx-labs/new-component/internal/casing"
	"github.com/agentx-labs/new-component/internal/format"
)

// Placeholder is replaced everywhere in a template by the PascalCase
// component name.
const Placeholder = "COMPONENT_NAME"

// Renderer turns template text into formatted source.
type Renderer struct {
	Formatter format.Formatter
}

// Substitute replaces every Placeholder in text with the PascalCase form of
// componentName.
func (r *Renderer) Substitute(text, componentName string) (string, error) {
	name, err := casing.ToPascalCase(componentName)
	if err != nil {
		return "", fmt.Errorf("deriving component identifier: %w", err)
	}
	return strings.ReplaceAll(text, Placeholder, name), nil
}

// Format pretty-prints text with the configured formatter. Formatter errors
// are returned as is.
func (r *Renderer) Format(ctx context.Context, text, filename string) (string, error) {
	if r.Formatter == nil {
		return text, nil
	}
	return r.Formatter.Format(ctx, text, filename)
}

// Render substitutes and formats in one step.
func (r *Renderer) Render(ctx context.Context, text, componentName, filename string) (string, error) {
	out, err := r.Substitute(text, componentName)
	if err != nil {
		return "", err
	}
	return r.Format(ctx, out, filename)
}

// IndexSource returns the barrel file re-exporting the component module.
func IndexSource(componentName string) string {
	return fmt.Sprintf("export * from \"./%[1]s\";\nexport { default } from \"./%[1]s\";\n", componentName)
}
