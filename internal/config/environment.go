package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/new-component/internal/branding"
)

// Environment holds the process-level lookups the resolver depends on. It is
// captured once at startup and passed down explicitly.
type Environment struct {
	HomeDir string
	WorkDir string
}

// CurrentEnvironment captures the user's home directory and the working
// directory of the running process.
func CurrentEnvironment() (Environment, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Environment{}, fmt.Errorf("resolving working directory: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Without a home directory there is simply no global layer.
		home = ""
	}
	return Environment{HomeDir: home, WorkDir: wd}, nil
}

// GlobalPath returns the global override file path, or "" when no home
// directory is known.
func (e Environment) GlobalPath() string {
	if e.HomeDir == "" {
		return ""
	}
	return filepath.Join(e.HomeDir, branding.ConfigFile())
}

// LocalPath returns the project override file path.
func (e Environment) LocalPath() string {
	return filepath.Join(e.WorkDir, branding.ConfigFile())
}

// Abs resolves p against the working directory unless it is already absolute.
func (e Environment) Abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(e.WorkDir, p)
}
