package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/agentx-labs/new-component/internal/config"
	"github.com/agentx-labs/new-component/internal/format"
	"github.com/agentx-labs/new-component/internal/templates"
	"github.com/spf13/afero"
)

const workDir = "/work"

type recorder struct {
	intro       []string
	items       []string
	conclusions int
	errors      []string
}

func (r *recorder) Intro(name, dir, template string) { r.intro = []string{name, dir, template} }
func (r *recorder) ItemCompleted(text string)        { r.items = append(r.items, text) }
func (r *recorder) Conclusion()                      { r.conclusions++ }
func (r *recorder) Error(msg string)                 { r.errors = append(r.errors, msg) }

func testSource() templates.Source {
	return templates.NewFSSource(fstest.MapFS{
		"component.js": {Data: []byte("export const COMPONENT_NAME = 1;")},
		"broken.js":    {Data: []byte("export const COMPONENT_NAME = (;")},
	}, "test")
}

func newTestPipeline(t *testing.T, fs afero.Fs, dir string) (*Pipeline, *recorder) {
	t.Helper()
	rec := &recorder{}
	return &Pipeline{
		Fs:        fs,
		WorkDir:   dir,
		Templates: testSource(),
		Renderer:  &Renderer{Formatter: format.Basic{}},
		Reporter:  rec,
	}, rec
}

func memFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(filepath.Join(workDir, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	return fs
}

func mustPlan(t *testing.T, tc config.TemplateConfig, name, template string) *Plan {
	t.Helper()
	cfg := &config.Config{Default: config.Bucket{template: tc}}
	plan, err := NewPlan(cfg, name, Selection{Project: config.DefaultProject, Template: template})
	if err != nil {
		t.Fatalf("NewPlan() error: %v", err)
	}
	return plan
}

func readFile(t *testing.T, fs afero.Fs, rel string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, filepath.Join(workDir, rel))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func TestPipeline_Run(t *testing.T) {
	fs := memFs(t)
	p, rec := newTestPipeline(t, fs, workDir)
	plan := mustPlan(t, config.TemplateConfig{Dir: "src/components"}, "button", "component")

	res, err := p.Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if got := readFile(t, fs, "src/components/button/button.tsx"); got != "export const Button = 1;\n" {
		t.Errorf("component = %q", got)
	}
	wantIndex := "export * from \"./button\";\nexport { default } from \"./button\";\n"
	if got := readFile(t, fs, "src/components/button/index.ts"); got != wantIndex {
		t.Errorf("index = %q", got)
	}

	if !reflect.DeepEqual(rec.intro, []string{"button", filepath.Join("src/components", "button"), "component"}) {
		t.Errorf("intro = %v", rec.intro)
	}
	if !reflect.DeepEqual(rec.items, []string{MsgDirCreated, MsgComponentBuilt, MsgIndexBuilt}) {
		t.Errorf("items = %v", rec.items)
	}
	if rec.conclusions != 1 {
		t.Errorf("conclusions = %d, want 1", rec.conclusions)
	}

	wantDirs := []string{"src/components", filepath.Join("src/components", "button")}
	if !reflect.DeepEqual(res.DirsCreated, wantDirs) {
		t.Errorf("DirsCreated = %v, want %v", res.DirsCreated, wantDirs)
	}
	if len(res.FilesWritten) != 2 || res.IndexSkipped {
		t.Errorf("FilesWritten = %v, IndexSkipped = %v", res.FilesWritten, res.IndexSkipped)
	}
	if res.Final != StateConclusion {
		t.Errorf("Final = %s", res.Final)
	}
}

func TestPipeline_Collision(t *testing.T) {
	fs := memFs(t)
	p, _ := newTestPipeline(t, fs, workDir)
	plan := mustPlan(t, config.TemplateConfig{Dir: "src/components"}, "button", "component")

	if _, err := p.Run(context.Background(), plan); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	path := filepath.Join(workDir, plan.Paths.ComponentFile)
	if err := afero.WriteFile(fs, path, []byte("edited"), 0644); err != nil {
		t.Fatal(err)
	}

	p2, rec := newTestPipeline(t, fs, workDir)
	_, err := p2.Run(context.Background(), plan)

	var ce *CollisionError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *CollisionError", err)
	}
	if ce.Dir != plan.Paths.ComponentDir {
		t.Errorf("Dir = %q, want %q", ce.Dir, plan.Paths.ComponentDir)
	}
	var se *StepError
	if !errors.As(err, &se) || se.State != StateCollisionCheck {
		t.Errorf("step = %v, want collision-check", err)
	}
	if got := readFile(t, fs, plan.Paths.ComponentFile); got != "edited" {
		t.Errorf("existing file was modified: %q", got)
	}
	if len(rec.items) != 0 || rec.conclusions != 0 {
		t.Errorf("unexpected progress after collision: %v", rec.items)
	}
}

func TestPipeline_MissingTemplateLeavesDirectory(t *testing.T) {
	fs := memFs(t)
	p, rec := newTestPipeline(t, fs, workDir)
	plan := mustPlan(t, config.TemplateConfig{Dir: "src/components"}, "dialog", "modal")

	res, err := p.Run(context.Background(), plan)
	if !errors.Is(err, templates.ErrNotFound) {
		t.Fatalf("error = %v, want templates.ErrNotFound", err)
	}
	var se *StepError
	if !errors.As(err, &se) || se.State != StateLoadTemplate {
		t.Errorf("step = %v, want load-template", err)
	}

	ok, _ := afero.DirExists(fs, filepath.Join(workDir, plan.Paths.ComponentDir))
	if !ok {
		t.Error("component directory should be left behind")
	}
	if len(res.FilesWritten) != 0 {
		t.Errorf("FilesWritten = %v, want none", res.FilesWritten)
	}
	if len(rec.items) != 0 {
		t.Errorf("items = %v, want no progress before the template is read", rec.items)
	}
}

func TestPipeline_IndexDisabled(t *testing.T) {
	fs := memFs(t)
	p, rec := newTestPipeline(t, fs, workDir)
	no := false
	plan := mustPlan(t, config.TemplateConfig{Dir: "src", Index: &no}, "card", "component")

	res, err := p.Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !res.IndexSkipped {
		t.Error("IndexSkipped = false")
	}
	if ok, _ := afero.Exists(fs, filepath.Join(workDir, plan.Paths.IndexFile)); ok {
		t.Error("index file should not be written")
	}
	if !reflect.DeepEqual(rec.items, []string{MsgDirCreated, MsgComponentBuilt}) {
		t.Errorf("items = %v", rec.items)
	}
	if !reflect.DeepEqual(res.DirsCreated, []string{filepath.Join("src", "card")}) {
		t.Errorf("DirsCreated = %v, existing parent should not be recreated", res.DirsCreated)
	}
}

func TestPipeline_MissingGrandparent(t *testing.T) {
	tests := []struct {
		name string
		fs   func(t *testing.T) (afero.Fs, string)
	}{
		{"memory", func(t *testing.T) (afero.Fs, string) { return memFs(t), workDir }},
		{"os", func(t *testing.T) (afero.Fs, string) { return afero.NewOsFs(), t.TempDir() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, dir := tt.fs(t)
			p, rec := newTestPipeline(t, fs, dir)
			plan := mustPlan(t, config.TemplateConfig{Dir: "a/b/c"}, "button", "component")

			_, err := p.Run(context.Background(), plan)
			var se *StepError
			if !errors.As(err, &se) || se.State != StateEnsureParentDir {
				t.Fatalf("error = %v, want ensure-parent-dir failure", err)
			}
			if !errors.Is(err, os.ErrNotExist) {
				t.Errorf("error = %v, want os.ErrNotExist", err)
			}
			if ok, _ := afero.Exists(fs, filepath.Join(dir, "a")); ok {
				t.Error("no directories should be created")
			}
			if len(rec.items) != 0 {
				t.Errorf("items = %v", rec.items)
			}
		})
	}
}

func TestPipeline_FormatterErrorPropagates(t *testing.T) {
	fs := memFs(t)
	p, rec := newTestPipeline(t, fs, workDir)
	plan := mustPlan(t, config.TemplateConfig{Dir: "src"}, "button", "broken")

	_, err := p.Run(context.Background(), plan)
	var syn *format.SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("error = %v, want *format.SyntaxError", err)
	}
	var se *StepError
	if !errors.As(err, &se) || se.State != StateFormatAndWriteComponent {
		t.Errorf("step = %v", err)
	}
	if ok, _ := afero.Exists(fs, filepath.Join(workDir, plan.Paths.ComponentFile)); ok {
		t.Error("component file should not be written")
	}
	if rec.conclusions != 0 {
		t.Error("conclusion reported after failure")
	}
}

func TestPipeline_CanceledContext(t *testing.T) {
	fs := memFs(t)
	p, _ := newTestPipeline(t, fs, workDir)
	plan := mustPlan(t, config.TemplateConfig{Dir: "src"}, "button", "component")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Run(ctx, plan)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if ok, _ := afero.Exists(fs, filepath.Join(workDir, "src", "button")); ok {
		t.Error("nothing should be created after cancellation")
	}
}

func TestState_String(t *testing.T) {
	if StateMaybeWriteIndex.String() != "maybe-write-index" {
		t.Errorf("String() = %q", StateMaybeWriteIndex.String())
	}
	if State(42).String() != "state(42)" {
		t.Errorf("String() = %q", State(42).String())
	}
}

func TestCollisionError_Message(t *testing.T) {
	err := &CollisionError{Dir: "src/components/button"}
	want := "Looks like this component already exists! There's already a component at src/components/button.\nPlease delete this directory and try again."
	if err.Error() != want {
		t.Errorf("Error() = %q", err.Error())
	}
}
