// Package config loads the routing table (config.json) and the optional
// site-wide settings file (site.yaml) that drive a build.
package config

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"

	siteerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Route is one entry of the routing table: a single page render.
type Route struct {
	URL      string         `json:"url"`
	Template string         `json:"template"`
	Context  map[string]any `json:"context"`
}

// LoadRoutes parses the routing table at path into an ordered slice of
// routes. Order is preserved exactly as written in the file.
//
// Route shape is intentionally not validated here: a route missing its url,
// template, or context keys surfaces later as a lookup or render failure.
func LoadRoutes(path string) ([]Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, siteerrors.Newf(siteerrors.CategoryConfig, "configuration file not found: %s", path)
		}
		return nil, siteerrors.Wrapf(err, siteerrors.CategoryConfig, "read configuration file %s", path)
	}

	var routes []Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, parseError(path, data, err)
	}
	return routes, nil
}

// parseError converts a json decoding failure into a config error carrying
// the file path plus the line and column of the offending byte.
func parseError(path string, data []byte, err error) error {
	var offset int64 = -1
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case stderrors.As(err, &typeErr):
		offset = typeErr.Offset
	}
	if offset < 0 {
		return siteerrors.Wrapf(err, siteerrors.CategoryConfig, "invalid JSON in %s", path)
	}
	line, col := lineColumn(data, offset)
	return siteerrors.Newf(siteerrors.CategoryConfig,
		"invalid JSON in %s: %v (line %d column %d)", path, err, line, col)
}

// lineColumn translates a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, lineStart := 1, int64(0)
	for i := int64(0); i < offset; i++ {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, int(offset - lineStart)
}

// String implements fmt.Stringer for log output.
func (r Route) String() string {
	return fmt.Sprintf("%s -> %s", r.URL, r.Template)
}
