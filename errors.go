package gqlapi

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for the documentation pipeline.
var (
	// ErrSchemaLoad is returned when a schema could not be read or parsed.
	ErrSchemaLoad = errors.New("gqlapi: schema could not be loaded")

	// ErrIntrospection is returned when a remote schema could not be
	// retrieved through an introspection query.
	ErrIntrospection = errors.New("gqlapi: introspection failed")

	// ErrRender is returned when a documentation page could not be rendered
	// or written.
	ErrRender = errors.New("gqlapi: render failed")

	// ErrInvalidConfig is returned for unusable command or generator settings.
	ErrInvalidConfig = errors.New("gqlapi: invalid configuration")
)

// LoadError represents a failure to read or parse a schema source.
type LoadError struct {
	Source string // File name, glob or URL the schema came from
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *LoadError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("gqlapi: loading schema %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("gqlapi: loading schema: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches LoadError.
// This allows errors.Is(loadErr, ErrSchemaLoad) to return true.
func (e *LoadError) Is(err error) bool {
	return err == ErrSchemaLoad
}

// NewLoadError returns a new LoadError for the given source.
func NewLoadError(source string, err error) *LoadError {
	return &LoadError{Source: source, Err: err}
}

// IsLoadError returns true if the error is a LoadError.
func IsLoadError(err error) bool {
	if err == nil {
		return false
	}
	var e *LoadError
	return errors.As(err, &e) || errors.Is(err, ErrSchemaLoad)
}

// IntrospectionError represents a failed introspection round trip.
type IntrospectionError struct {
	URL    string // Endpoint that was queried
	Status int    // HTTP status code, 0 if no response was received
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *IntrospectionError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gqlapi: introspecting %s (status %d): %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("gqlapi: introspecting %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *IntrospectionError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches IntrospectionError.
func (e *IntrospectionError) Is(err error) bool {
	return err == ErrIntrospection
}

// NewIntrospectionError returns a new IntrospectionError.
func NewIntrospectionError(url string, status int, err error) *IntrospectionError {
	return &IntrospectionError{URL: url, Status: status, Err: err}
}

// IsIntrospectionError returns true if the error is an IntrospectionError.
func IsIntrospectionError(err error) bool {
	if err == nil {
		return false
	}
	var e *IntrospectionError
	return errors.As(err, &e) || errors.Is(err, ErrIntrospection)
}

// RenderError wraps a rendering or output failure for one format.
type RenderError struct {
	Format string // Output format (e.g., "html", "markdown")
	File   string // Output file, if known
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *RenderError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("gqlapi: rendering %s to %s: %v", e.Format, e.File, e.Err)
	}
	return fmt.Sprintf("gqlapi: rendering %s: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches RenderError.
func (e *RenderError) Is(err error) bool {
	return err == ErrRender
}

// NewRenderError returns a new RenderError.
func NewRenderError(format, file string, err error) *RenderError {
	return &RenderError{Format: format, File: file, Err: err}
}

// IsRenderError returns true if the error is a RenderError.
func IsRenderError(err error) bool {
	if err == nil {
		return false
	}
	var e *RenderError
	return errors.As(err, &e) || errors.Is(err, ErrRender)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "gqlapi: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("gqlapi: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors so errors.Is and errors.As can
// match any of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
