package templating

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

// builtinFuncs returns the function map available to every template.
func builtinFuncs() texttemplate.FuncMap {
	return texttemplate.FuncMap{
		"markdown": renderMarkdown,
		"safe":     markSafe,
	}
}

// renderMarkdown converts a markdown string to HTML. The result is returned
// as template.HTML so intentional markup survives autoescaping.
func renderMarkdown(source string) (htmltemplate.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return htmltemplate.HTML(buf.String()), nil
}

// markSafe marks a string as trusted HTML, bypassing autoescaping.
// Use only for values that are known not to carry untrusted input.
func markSafe(s string) htmltemplate.HTML {
	return htmltemplate.HTML(s)
}
