package format

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Prettier formats source by piping it through the prettier CLI.
type Prettier struct {
	Bin   string
	Style Style
	// Dir is the working directory for the subprocess, so project-level
	// prettier plugins resolve.
	Dir string
}

// ExecError is returned when prettier exits non-zero, typically on a syntax
// error in the rendered template.
type ExecError struct {
	Filename string
	ExitCode int
	Stderr   string
}

func (e *ExecError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "no output"
	}
	return fmt.Sprintf("prettier failed on %s (exit %d): %s", e.Filename, e.ExitCode, msg)
}

// Args returns the prettier command-line arguments for filename.
func (p *Prettier) Args(filename string) []string {
	args := []string{"--stdin-filepath", filename}
	if !p.Style.Semi {
		args = append(args, "--no-semi")
	}
	if p.Style.SingleQuote {
		args = append(args, "--single-quote")
	}
	if p.Style.TrailingComma != "" {
		args = append(args, "--trailing-comma", p.Style.TrailingComma)
	}
	return args
}

// Format implements Formatter.
func (p *Prettier) Format(ctx context.Context, src, filename string) (string, error) {
	cmd := exec.CommandContext(ctx, p.Bin, p.Args(filename)...)
	cmd.Dir = p.Dir
	cmd.Stdin = strings.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExecError{Filename: filename, ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return "", fmt.Errorf("running prettier: %w", err)
	}
	return stdout.String(), nil
}
