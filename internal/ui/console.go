package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette used by the console output.
var (
	colorRed        = lipgloss.Color("#D81010")
	colorGreen      = lipgloss.Color("#8ED700")
	colorBlue       = lipgloss.Color("#00BAFF")
	colorGold       = lipgloss.Color("#FFCC00")
	colorMediumGray = lipgloss.Color("#808080")
	colorDarkGray   = lipgloss.Color("#5A5A5A")
)

// Console prints scaffold progress to a writer, optionally in color.
type Console struct {
	out    io.Writer
	color  bool
	sample Sampler

	name      lipgloss.Style
	dir       lipgloss.Style
	template  lipgloss.Style
	rule      lipgloss.Style
	check     lipgloss.Style
	success   lipgloss.Style
	muted     lipgloss.Style
	errTitle  lipgloss.Style
	errDetail lipgloss.Style
}

// Option configures a Console.
type Option func(*Console)

// WithColor forces color on or off.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.color = enabled
	}
}

// WithSampler replaces the affirmation sampler (useful for testing).
func WithSampler(s Sampler) Option {
	return func(c *Console) {
		c.sample = s
	}
}

// NewConsole returns a Console writing to out. Color defaults to on when out
// is a terminal.
func NewConsole(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:    out,
		color:  IsTerminal(out),
		sample: RandomSample,

		name:      lipgloss.NewStyle().Bold(true).Foreground(colorGold),
		dir:       lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		template:  lipgloss.NewStyle().Foreground(colorGreen),
		rule:      lipgloss.NewStyle().Foreground(colorDarkGray),
		check:     lipgloss.NewStyle().Foreground(colorGreen),
		success:   lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		muted:     lipgloss.NewStyle().Foreground(colorMediumGray),
		errTitle:  lipgloss.NewStyle().Bold(true).Foreground(colorRed),
		errDetail: lipgloss.NewStyle().Foreground(colorRed),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) paint(s lipgloss.Style, text string) string {
	if !c.color {
		return text
	}
	return s.Render(text)
}

// Intro prints the banner naming the component, its directory and template.
func (c *Console) Intro(name, dir, template string) {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "✨  Creating the %s component ✨\n", c.paint(c.name, name))
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Directory:  %s\n", c.paint(c.dir, dir))
	fmt.Fprintf(c.out, "Template:   %s\n", c.paint(c.template, template))
	fmt.Fprintln(c.out, c.paint(c.rule, strings.Repeat("=", 41)))
	fmt.Fprintln(c.out)
}

// ItemCompleted prints a checkmarked progress line.
func (c *Console) ItemCompleted(text string) {
	fmt.Fprintf(c.out, "%s %s\n", c.paint(c.check, "✓"), text)
}

// Conclusion prints the success banner with a sampled affirmation.
func (c *Console) Conclusion() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.paint(c.success, "Component created!"))
	fmt.Fprintln(c.out, c.paint(c.muted, c.sample(Affirmations)))
	fmt.Fprintln(c.out)
}

// Error prints a user-facing failure message.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.paint(c.errTitle, "Error creating component."))
	fmt.Fprintln(c.out, c.paint(c.errDetail, msg))
	fmt.Fprintln(c.out)
}
