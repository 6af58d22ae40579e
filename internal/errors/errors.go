// Package errors provides the structured error type (SiteError) used for
// category-based classification across the generator and its CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category classifies a SiteError for reporting purposes.
type Category string

const (
	// User-facing input errors
	CategoryValidation Category = "validation" // bad invocation, output dir exists
	CategoryConfig     Category = "config"     // missing or malformed config.json / site.yaml

	// Build and processing errors
	CategoryTemplate   Category = "template"   // template missing or fails to parse
	CategoryRender     Category = "render"     // template executed but rendering failed
	CategoryFilesystem Category = "filesystem" // copy or write failure
)

// SiteError is a structured error with a category and optional context.
// Every SiteError is terminal: the build aborts on the first one.
type SiteError struct {
	Category Category       `json:"category"`
	Message  string         `json:"message"`
	Cause    error          `json:"cause,omitempty"`
	Context  map[string]any `json:"context,omitempty"`
}

// Error implements the error interface. The category is deliberately left out
// of the string: it drives classification, not operator-visible text.
func (e *SiteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *SiteError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *SiteError) WithContext(key string, value any) *SiteError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new SiteError.
func New(category Category, message string) *SiteError {
	return &SiteError{Category: category, Message: message}
}

// Newf creates a new SiteError with a formatted message.
func Newf(category Category, format string, args ...any) *SiteError {
	return &SiteError{Category: category, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new SiteError that wraps an existing error.
func Wrap(err error, category Category, message string) *SiteError {
	return &SiteError{Category: category, Message: message, Cause: err}
}

// Wrapf creates a new SiteError that wraps an existing error with a formatted message.
func Wrapf(err error, category Category, format string, args ...any) *SiteError {
	return &SiteError{Category: category, Message: fmt.Sprintf(format, args...), Cause: err}
}

// CategoryOf returns the category of err if it is (or wraps) a SiteError,
// or an empty Category otherwise.
func CategoryOf(err error) Category {
	var se *SiteError
	if stderrors.As(err, &se) {
		return se.Category
	}
	return ""
}
