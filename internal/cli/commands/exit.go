package commands

import (
	"github.com/syssam/gqlapi"
)

// Process exit codes.
const (
	ExitOK            = 0
	ExitSchema        = 1
	ExitRender        = 2
	ExitIntrospection = 3
)

// ExitCode maps err to the process exit code. Errors that are neither
// render nor introspection failures exit like a schema failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case gqlapi.IsIntrospectionError(err):
		return ExitIntrospection
	case gqlapi.IsRenderError(err):
		return ExitRender
	default:
		return ExitSchema
	}
}
