// Package render turns route records into files on disk: one
// <output>/<url>/index.html per route.
package render

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"git.home.luguber.info/inful/sitegen/internal/config"
	siteerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/templating"
)

// OutputFileName is the file written under each route's directory.
const OutputFileName = "index.html"

// ProgressFunc receives one callback per rendered route.
type ProgressFunc func(template, dst string)

// Renderer renders routes through a template environment into an output root.
type Renderer struct {
	env        *templating.Environment
	outputRoot string
	site       map[string]any
	progress   ProgressFunc
	seen       map[string]string // destination path -> url of the route that claimed it
}

// New creates a renderer writing under outputRoot.
func New(env *templating.Environment, outputRoot string) *Renderer {
	return &Renderer{
		env:        env,
		outputRoot: outputRoot,
		seen:       make(map[string]string),
	}
}

// WithSite injects site-wide bindings under the "site" key of every render,
// unless the route context already defines one.
func (r *Renderer) WithSite(site map[string]any) *Renderer {
	r.site = site
	return r
}

// WithProgress registers a per-route progress callback.
func (r *Renderer) WithProgress(fn ProgressFunc) *Renderer {
	r.progress = fn
	return r
}

// RenderAll renders every route in order, stopping at the first failure.
// Returns the number of pages written.
func (r *Renderer) RenderAll(routes []config.Route) (int, error) {
	for i, route := range routes {
		if _, err := r.RenderRoute(route); err != nil {
			return i, err
		}
	}
	return len(routes), nil
}

// RenderRoute renders a single route and writes its output file, returning
// the destination path.
func (r *Renderer) RenderRoute(route config.Route) (string, error) {
	// One leading slash makes the url relative; more than one is the
	// config author's problem and surfaces as a literal directory name.
	url := strings.TrimPrefix(route.URL, "/")
	name := strings.TrimPrefix(route.Template, "/")

	tpl, err := r.env.Resolve(name)
	if err != nil {
		return "", err
	}

	out, err := tpl.Render(r.bindings(route.Context))
	if err != nil {
		return "", err
	}

	dst := filepath.Join(r.outputRoot, filepath.FromSlash(url), OutputFileName)
	if prev, claimed := r.seen[dst]; claimed {
		return "", siteerrors.Newf(siteerrors.CategoryValidation,
			"routes '%s' and '%s' both map to %s", prev, route.URL, dst)
	}
	r.seen[dst] = route.URL

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", siteerrors.Wrapf(err, siteerrors.CategoryFilesystem, "create directory for %s", dst)
	}
	if err := atomic.WriteFile(dst, strings.NewReader(out)); err != nil {
		return "", siteerrors.Wrapf(err, siteerrors.CategoryFilesystem, "write %s", dst)
	}

	slog.Debug("rendered route", logfields.URL(route.URL), logfields.Template(name), logfields.Path(dst))
	if r.progress != nil {
		r.progress(route.Template, dst)
	}
	return dst, nil
}

// bindings merges the site block into the route context without mutating it.
func (r *Renderer) bindings(context map[string]any) map[string]any {
	if r.site == nil {
		return context
	}
	if _, shadowed := context["site"]; shadowed {
		return context
	}
	merged := make(map[string]any, len(context)+1)
	for k, v := range context {
		merged[k] = v
	}
	merged["site"] = r.site
	return merged
}
