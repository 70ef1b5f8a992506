//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentx-labs/new-component/internal/cli"
	"github.com/agentx-labs/new-component/internal/version"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, holds the global override file
	ProjectDir string // working directory, holds the local override file
}

// setupTestEnv points HOME and the working directory at fresh temp
// directories and clears settings that could leak in from the environment.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	for _, key := range []string{"PROJECT", "TEMPLATE", "FORMATTER", "TEMPLATES_DIR", "NO_COLOR"} {
		t.Setenv("NEW_COMPONENT_"+key, "")
	}
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(env.ProjectDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	if err := os.MkdirAll(filepath.Join(env.ProjectDir, "src"), 0755); err != nil {
		t.Fatalf("creating src: %v", err)
	}
	return env
}

// stagePrettier installs a shell script as the project's local prettier.
func stagePrettier(t *testing.T, projectDir, script string) {
	t.Helper()
	writeFile(t, filepath.Join(projectDir, "node_modules", ".bin", "prettier"), script)
	if err := os.Chmod(filepath.Join(projectDir, "node_modules", ".bin", "prettier"), 0755); err != nil {
		t.Fatalf("chmod prettier: %v", err)
	}
}

// run executes the CLI with args and returns its combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd(version.New("0.0.0-test", "test", "today"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file, got directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected %s to not exist", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s to exist: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}
