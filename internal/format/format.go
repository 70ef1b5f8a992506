package format

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Formatter pretty-prints source text. filename is used to pick a parser and
// in error messages; nothing is read from or written to it.
type Formatter interface {
	Format(ctx context.Context, src, filename string) (string, error)
}

// Style holds the fixed output style.
type Style struct {
	Semi          bool
	SingleQuote   bool
	TrailingComma string
}

// DefaultStyle is double quotes, semicolons and ES5 trailing commas.
var DefaultStyle = Style{Semi: true, SingleQuote: false, TrailingComma: "es5"}

// Formatter names accepted by Select.
const (
	NameAuto     = "auto"
	NamePrettier = "prettier"
	NameBasic    = "basic"
	NameNone     = "none"
)

// Names lists the formatter names accepted by Select.
func Names() []string {
	return []string{NameAuto, NamePrettier, NameBasic, NameNone}
}

// Select returns the formatter registered under name. "auto" prefers a
// prettier binary installed in workDir/node_modules or on PATH and falls back
// to Basic.
func Select(name, workDir string) (Formatter, error) {
	switch name {
	case NameAuto, "":
		if bin, err := LookPrettier(workDir); err == nil {
			return &Prettier{Bin: bin, Style: DefaultStyle, Dir: workDir}, nil
		}
		return Basic{}, nil
	case NamePrettier:
		bin, err := LookPrettier(workDir)
		if err != nil {
			return nil, err
		}
		return &Prettier{Bin: bin, Style: DefaultStyle, Dir: workDir}, nil
	case NameBasic:
		return Basic{}, nil
	case NameNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown formatter %q: supported formatters are %s",
			name, strings.Join(Names(), ", "))
	}
}

// LookPrettier finds a prettier binary, checking the project's
// node_modules/.bin before PATH.
func LookPrettier(workDir string) (string, error) {
	if workDir != "" {
		local := filepath.Join(workDir, "node_modules", ".bin", "prettier")
		if info, err := os.Stat(local); err == nil && !info.IsDir() {
			return local, nil
		}
	}
	bin, err := exec.LookPath("prettier")
	if err != nil {
		return "", fmt.Errorf("prettier formatter requires a prettier binary: %w", err)
	}
	return bin, nil
}

// None returns its input unchanged.
type None struct{}

// Format implements Formatter.
func (None) Format(_ context.Context, src, _ string) (string, error) {
	return src, nil
}
