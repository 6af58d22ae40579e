// Package templating provides a filesystem-based template environment.
// Template names are paths relative to a fixed root directory; templates are
// parsed lazily on first resolution and cached for the rest of the run.
//
// Names with an .html, .htm, or .xml extension parse through html/template,
// so every interpolated context value is escaped for the target markup unless
// explicitly marked safe. All other names parse through text/template with no
// escaping. The escape rule is a property of the output name, not a global
// toggle.
package templating

import (
	"bytes"
	htmltemplate "html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	siteerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// Environment resolves template names to parsed templates under a root
// directory. Immutable after construction apart from the internal parse
// cache; the build is single-threaded so no locking is needed.
type Environment struct {
	root  string
	funcs texttemplate.FuncMap
	cache map[string]*Template
}

// Template is one parsed template, ready to render. Exactly one of the two
// engine fields is set, depending on the autoescape rule for the name.
type Template struct {
	Name string
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewEnvironment creates an environment rooted at the given template
// directory. Construction fails only when the root is unusable; individual
// templates are resolved lazily.
func NewEnvironment(root string) (*Environment, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, siteerrors.Newf(siteerrors.CategoryValidation, "template directory not found: %s", root)
		}
		return nil, siteerrors.Wrapf(err, siteerrors.CategoryValidation, "stat template directory %s", root)
	}
	if !info.IsDir() {
		return nil, siteerrors.Newf(siteerrors.CategoryValidation, "template root is not a directory: %s", root)
	}
	return &Environment{
		root:  root,
		funcs: builtinFuncs(),
		cache: make(map[string]*Template),
	}, nil
}

// Autoescape reports whether templates with the given name render with
// contextual escaping enabled.
func Autoescape(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xml":
		return true
	}
	return false
}

// Resolve returns the parsed template for name, loading and parsing it on
// first use. Name is a slash-separated path relative to the root.
func (e *Environment) Resolve(name string) (*Template, error) {
	if t, ok := e.cache[name]; ok {
		return t, nil
	}

	path := filepath.Join(e.root, filepath.FromSlash(name))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, siteerrors.Newf(siteerrors.CategoryTemplate, "'%s' not found", name)
		}
		return nil, siteerrors.Wrapf(err, siteerrors.CategoryTemplate, "read template '%s'", name)
	}

	t := &Template{Name: name}
	if Autoescape(name) {
		tpl, err := htmltemplate.New(name).Funcs(e.funcs).Option("missingkey=error").Parse(string(data))
		if err != nil {
			return nil, siteerrors.Wrapf(err, siteerrors.CategoryTemplate, "parse template '%s'", name)
		}
		t.html = tpl
	} else {
		tpl, err := texttemplate.New(name).Funcs(e.funcs).Option("missingkey=error").Parse(string(data))
		if err != nil {
			return nil, siteerrors.Wrapf(err, siteerrors.CategoryTemplate, "parse template '%s'", name)
		}
		t.text = tpl
	}

	e.cache[name] = t
	slog.Debug("parsed template", logfields.Template(name), logfields.Path(path))
	return t, nil
}

// Render executes the template with data as the variable bindings. A missing
// variable access is a render error, not silently empty output.
func (t *Template) Render(data map[string]any) (string, error) {
	var buf bytes.Buffer
	var err error
	if t.html != nil {
		err = t.html.Execute(&buf, data)
	} else {
		err = t.text.Execute(&buf, data)
	}
	if err != nil {
		return "", siteerrors.Wrapf(err, siteerrors.CategoryRender, "error rendering template '%s'", t.Name)
	}
	return buf.String(), nil
}
