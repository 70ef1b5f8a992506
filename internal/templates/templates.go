package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// Ext is the file extension of template files.
const Ext = ".js"

//go:embed builtin/*.js
var builtinFS embed.FS

// ErrNotFound is returned when a named template does not exist. It matches
// fs.ErrNotExist.
var ErrNotFound = fmt.Errorf("template not found: %w", fs.ErrNotExist)

// Source provides template text by name.
type Source interface {
	// Load returns the raw text of the named template.
	Load(name string) (string, error)
	// List returns the available template names, sorted.
	List() ([]string, error)
	// Origin describes where templates are read from.
	Origin() string
}

// FSSource reads templates from the top level of an fs.FS.
type FSSource struct {
	fsys   fs.FS
	origin string
}

// NewFSSource returns a Source over fsys. origin is used in messages only.
func NewFSSource(fsys fs.FS, origin string) *FSSource {
	return &FSSource{fsys: fsys, origin: origin}
}

// Builtin returns the templates embedded in the binary.
func Builtin() *FSSource {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// builtin/ is embedded at compile time.
		panic(err)
	}
	return NewFSSource(sub, "built-in")
}

// Dir returns a Source reading templates from a directory on disk.
func Dir(dir string) (*FSSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates path %s is not a directory", dir)
	}
	return NewFSSource(os.DirFS(dir), dir), nil
}

// Load implements Source.
func (s *FSSource) Load(name string) (string, error) {
	file := name + Ext
	if name == "" || strings.Contains(name, "/") || !fs.ValidPath(file) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	data, err := fs.ReadFile(s.fsys, file)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q in %s templates", ErrNotFound, name, s.origin)
	}
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", file, err)
	}
	return string(data), nil
}

// List implements Source.
func (s *FSSource) List() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing %s templates: %w", s.origin, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != Ext {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	sort.Strings(names)
	return names, nil
}

// Origin implements Source.
func (s *FSSource) Origin() string { return s.origin }
