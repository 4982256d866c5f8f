package gen

import (
	"errors"
	"fmt"

	"github.com/syssam/gqlapi"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("gqlapi: missing configuration")
	// ErrGenerationFailed indicates a page generation failure.
	ErrGenerationFailed = errors.New("gqlapi: page generation failed")
)

// Phase names the generation step that failed.
type Phase string

// Generation phases.
const (
	PhaseTemplate Phase = "template"
	PhaseWrite    Phase = "write"
)

// ConfigError reports an option that was rejected.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	msg := "gqlapi: config error for " + fmt.Sprintf("%q", e.Option)
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	return msg + ": " + e.Message
}

// Is matches ErrMissingConfig and gqlapi.ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig || target == gqlapi.ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// GenerationError reports a failure while loading templates or writing
// output files. Failures of a template execution are reported as
// gqlapi.RenderError instead.
type GenerationError struct {
	Phase   Phase
	File    string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	msg := "gqlapi: generation error"
	if e.Phase != "" {
		msg += " in phase " + string(e.Phase)
	}
	if e.File != "" {
		msg += " (file: " + e.File + ")"
	}
	for _, s := range []string{e.Message, errorString(e.Cause)} {
		if s != "" {
			msg += ": " + s
		}
	}
	return msg
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is matches ErrGenerationFailed, and gqlapi.ErrRender so that callers
// knowing only the root package treat it as a render failure.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed || target == gqlapi.ErrRender
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase Phase, file, message string, cause error) *GenerationError {
	return &GenerationError{Phase: phase, File: file, Message: message, Cause: cause}
}

// IsConfigError reports whether err is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsGenerationError reports whether err is or wraps a GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
