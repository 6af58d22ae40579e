// Package build sequences a site generation run: validate the output
// location, build the template environment, load the routing table, create
// the output directory, copy static assets, and render every route. Each step
// is a Stage; the first failure aborts the run.
package build

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitegen/internal/assets"
	"git.home.luguber.info/inful/sitegen/internal/config"
	siteerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/render"
	"git.home.luguber.info/inful/sitegen/internal/templating"
)

// Input directory layout.
const (
	ConfigFileName = "config.json"
	TemplatesDir   = "templates"
	StaticDir      = "static"
	DefaultOutput  = "html"
)

// Options configures a build run.
type Options struct {
	InputDir string
	Output   string    // empty: SITEGEN_OUTPUT, then <InputDir>/html
	Verbose  bool      // emit one progress line per copied file and rendered page
	Stdout   io.Writer // progress line destination; defaults to os.Stdout
}

// State carries mutable state across stages.
type State struct {
	opts       Options
	outputRoot string
	env        *templating.Environment
	routes     []config.Route
	site       *config.Site
	Report     *Report
}

// OutputRoot returns the resolved output directory. Empty until the validate
// stage has run.
func (st *State) OutputRoot() string { return st.outputRoot }

// Run executes a full build and returns its report. On error the output tree
// may be partially populated; nothing is rolled back.
func Run(opts Options) (*Report, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if err := config.LoadEnv(); err != nil {
		slog.Debug("could not load .env file", logfields.Error(err))
	}

	st := &State{opts: opts, Report: newReport()}
	stages := []Stage{
		{Name: "validate", Run: stageValidate},
		{Name: "environment", Run: stageEnvironment},
		{Name: "load-config", Run: stageLoadConfig},
		{Name: "create-output", Run: stageCreateOutput},
		{Name: "copy-static", Run: stageCopyStatic},
		{Name: "render", Run: stageRender},
	}

	err := runStages(st, stages)
	st.Report.finish(err)
	if err == nil {
		slog.Debug("build complete",
			logfields.Path(st.outputRoot),
			logfields.Count(st.Report.PagesRendered),
			logfields.DurationMS(float64(st.Report.Duration().Microseconds())/1000))
	}
	return st.Report, err
}

// stageValidate resolves the output root and refuses to touch a pre-existing
// one. Merging into prior output is never allowed, unlike the per-file merge
// the static copier performs inside a single run.
func stageValidate(st *State) error {
	out := st.opts.Output
	if out == "" {
		out = config.OutputOverride()
	}
	if out == "" {
		out = filepath.Join(st.opts.InputDir, DefaultOutput)
	}
	if _, err := os.Stat(out); err == nil {
		return siteerrors.Newf(siteerrors.CategoryValidation, "output directory already exists: %s", out)
	} else if !os.IsNotExist(err) {
		return siteerrors.Wrapf(err, siteerrors.CategoryValidation, "stat output directory %s", out)
	}
	st.outputRoot = out
	return nil
}

func stageEnvironment(st *State) error {
	env, err := templating.NewEnvironment(filepath.Join(st.opts.InputDir, TemplatesDir))
	if err != nil {
		return err
	}
	st.env = env
	return nil
}

func stageLoadConfig(st *State) error {
	routes, err := config.LoadRoutes(filepath.Join(st.opts.InputDir, ConfigFileName))
	if err != nil {
		return err
	}
	site, err := config.LoadSite(st.opts.InputDir)
	if err != nil {
		return err
	}
	st.routes = routes
	st.site = site
	return nil
}

func stageCreateOutput(st *State) error {
	if err := os.MkdirAll(st.outputRoot, 0o755); err != nil {
		return siteerrors.Wrapf(err, siteerrors.CategoryFilesystem, "create output directory %s", st.outputRoot)
	}
	return nil
}

func stageCopyStatic(st *State) error {
	var progress assets.ProgressFunc
	if st.opts.Verbose {
		progress = func(src, dst string) {
			fmt.Fprintf(st.opts.Stdout, "Copied %s -> %s\n", src, dst)
		}
	}
	copied, err := assets.CopyTree(filepath.Join(st.opts.InputDir, StaticDir), st.outputRoot, progress)
	st.Report.FilesCopied = copied
	return err
}

func stageRender(st *State) error {
	r := render.New(st.env, st.outputRoot).WithSite(st.site.Bindings())
	if st.opts.Verbose {
		r.WithProgress(func(template, dst string) {
			fmt.Fprintf(st.opts.Stdout, "Rendered %s -> %s\n", template, dst)
		})
	}
	rendered, err := r.RenderAll(st.routes)
	st.Report.PagesRendered = rendered
	return err
}
