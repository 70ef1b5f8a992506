package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentx-labs/new-component/internal/templates"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// State is a step of the scaffold pipeline.
type State int

// Pipeline states, in execution order.
const (
	StateInit State = iota
	StateEnsureParentDir
	StateCollisionCheck
	StateCreateComponentDir
	StateLoadTemplate
	StateSubstitute
	StateFormatAndWriteComponent
	StateMaybeWriteIndex
	StateConclusion
)

var stateNames = [...]string{
	"init",
	"ensure-parent-dir",
	"collision-check",
	"create-component-dir",
	"load-template",
	"substitute",
	"format-and-write-component",
	"maybe-write-index",
	"conclusion",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Progress messages reported as items complete.
const (
	MsgDirCreated     = "Directory created."
	MsgComponentBuilt = "Component built and saved to disk."
	MsgIndexBuilt     = "Index file built and saved to disk."
)

// Reporter receives user-facing progress.
type Reporter interface {
	Intro(name, dir, template string)
	ItemCompleted(text string)
	Conclusion()
	Error(msg string)
}

// Pipeline performs the filesystem side effects of a Plan.
type Pipeline struct {
	Fs        afero.Fs
	WorkDir   string // relative plan paths resolve against this; empty leaves them as is
	Templates templates.Source
	Renderer  *Renderer
	Reporter  Reporter
	Logger    *log.Logger
}

// Result lists what a run created, as plan-relative paths.
type Result struct {
	DirsCreated  []string
	FilesWritten []string
	IndexSkipped bool
	Final        State
}

type run struct {
	plan     *Plan
	result   *Result
	template string
	source   string
}

type step struct {
	state State
	fn    func(context.Context, *run) error
}

// Run executes the states in order and stops at the first failure. Nothing
// created before the failure is removed. The returned error is a *StepError;
// a pre-existing component directory surfaces as a wrapped *CollisionError.
func (p *Pipeline) Run(ctx context.Context, plan *Plan) (*Result, error) {
	r := &run{plan: plan, result: &Result{}}
	steps := []step{
		{StateInit, p.init},
		{StateEnsureParentDir, p.ensureParentDir},
		{StateCollisionCheck, p.collisionCheck},
		{StateCreateComponentDir, p.createComponentDir},
		{StateLoadTemplate, p.loadTemplate},
		{StateSubstitute, p.substitute},
		{StateFormatAndWriteComponent, p.formatAndWriteComponent},
		{StateMaybeWriteIndex, p.maybeWriteIndex},
		{StateConclusion, p.conclusion},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return r.result, &StepError{State: s.state, Err: err}
		}
		p.logger().Debug("entering state", "state", s.state, "component", plan.ComponentName)
		r.result.Final = s.state
		if err := s.fn(ctx, r); err != nil {
			p.logger().Debug("state failed", "state", s.state, "err", err)
			return r.result, &StepError{State: s.state, Err: err}
		}
	}
	return r.result, nil
}

func (p *Pipeline) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard)
	}
	return p.Logger
}

func (p *Pipeline) abs(rel string) string {
	if p.WorkDir == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.WorkDir, rel)
}

func (p *Pipeline) report(fn func(Reporter)) {
	if p.Reporter != nil {
		fn(p.Reporter)
	}
}

func (p *Pipeline) init(_ context.Context, r *run) error {
	p.report(func(rep Reporter) {
		rep.Intro(r.plan.ComponentName, r.plan.Paths.ComponentDir, r.plan.Selection.Template)
	})
	return nil
}

// ensureParentDir creates the configured directory when absent. Only the
// last path element is created; a missing grandparent is an error.
func (p *Pipeline) ensureParentDir(_ context.Context, r *run) error {
	dir := p.abs(r.plan.Paths.ParentDir)
	exists, err := afero.Exists(p.Fs, dir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", r.plan.Paths.ParentDir, err)
	}
	if exists {
		return nil
	}
	if err := p.mkdir(dir); err != nil {
		return fmt.Errorf("creating %s: %w", r.plan.Paths.ParentDir, err)
	}
	r.result.DirsCreated = append(r.result.DirsCreated, r.plan.Paths.ParentDir)
	return nil
}

func (p *Pipeline) collisionCheck(_ context.Context, r *run) error {
	exists, err := afero.Exists(p.Fs, p.abs(r.plan.Paths.ComponentDir))
	if err != nil {
		return fmt.Errorf("checking %s: %w", r.plan.Paths.ComponentDir, err)
	}
	if exists {
		return &CollisionError{Dir: r.plan.Paths.ComponentDir}
	}
	return nil
}

func (p *Pipeline) createComponentDir(_ context.Context, r *run) error {
	if err := p.mkdir(p.abs(r.plan.Paths.ComponentDir)); err != nil {
		return fmt.Errorf("creating %s: %w", r.plan.Paths.ComponentDir, err)
	}
	r.result.DirsCreated = append(r.result.DirsCreated, r.plan.Paths.ComponentDir)
	return nil
}

// mkdir creates a single directory and fails when its parent is missing,
// including on filesystems whose Mkdir would create parents implicitly.
func (p *Pipeline) mkdir(dir string) error {
	parent := filepath.Dir(dir)
	if parent != dir {
		ok, err := afero.DirExists(p.Fs, parent)
		if err != nil {
			return err
		}
		if !ok {
			return &os.PathError{Op: "mkdir", Path: dir, Err: os.ErrNotExist}
		}
	}
	return p.Fs.Mkdir(dir, 0755)
}

// loadTemplate reads the template. The directory is only reported as created
// once its template is known to exist.
func (p *Pipeline) loadTemplate(_ context.Context, r *run) error {
	text, err := p.Templates.Load(r.plan.Selection.Template)
	if err != nil {
		return err
	}
	r.template = text
	p.report(func(rep Reporter) { rep.ItemCompleted(MsgDirCreated) })
	return nil
}

func (p *Pipeline) substitute(_ context.Context, r *run) error {
	out, err := p.Renderer.Substitute(r.template, r.plan.ComponentName)
	if err != nil {
		return err
	}
	r.source = out
	return nil
}

func (p *Pipeline) formatAndWriteComponent(ctx context.Context, r *run) error {
	out, err := p.Renderer.Format(ctx, r.source, r.plan.Paths.ComponentFile)
	if err != nil {
		return err
	}
	if err := p.writeFile(r, r.plan.Paths.ComponentFile, out); err != nil {
		return err
	}
	p.report(func(rep Reporter) { rep.ItemCompleted(MsgComponentBuilt) })
	return nil
}

func (p *Pipeline) maybeWriteIndex(ctx context.Context, r *run) error {
	if !r.plan.Template.WantsIndex() {
		r.result.IndexSkipped = true
		p.logger().Debug("index file disabled", "template", r.plan.Selection.Template)
		return nil
	}
	out, err := p.Renderer.Format(ctx, IndexSource(r.plan.ComponentName), r.plan.Paths.IndexFile)
	if err != nil {
		return err
	}
	if err := p.writeFile(r, r.plan.Paths.IndexFile, out); err != nil {
		return err
	}
	p.report(func(rep Reporter) { rep.ItemCompleted(MsgIndexBuilt) })
	return nil
}

func (p *Pipeline) conclusion(_ context.Context, _ *run) error {
	p.report(func(rep Reporter) { rep.Conclusion() })
	return nil
}

func (p *Pipeline) writeFile(r *run, rel, content string) error {
	if err := afero.WriteFile(p.Fs, p.abs(rel), []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	r.result.FilesWritten = append(r.result.FilesWritten, rel)
	return nil
}
