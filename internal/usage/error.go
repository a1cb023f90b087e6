package usage

import (
	"errors"
	"strings"
)

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrTokenization
	ErrCommandNotFound
	ErrAmbiguousInvocation
	ErrParameterBinding
	ErrParameterParse
	ErrConditionNotSatisfied
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidFlag:
		return "invalid_flag"
	case ErrTokenization:
		return "tokenization"
	case ErrCommandNotFound:
		return "command_not_found"
	case ErrAmbiguousInvocation:
		return "ambiguous"
	case ErrParameterBinding:
		return "parameter_binding"
	case ErrParameterParse:
		return "parameter_parse"
	case ErrConditionNotSatisfied:
		return "condition_not_satisfied"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: Resolution and environment errors
//	  - Unknown errors
//	  - Command not found
//	  - Condition not satisfied
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Tokenization
//	  - Ambiguous invocation
//	  - Parameter binding
//	  - Parameter parse
var exitCodes = map[ErrorKind]int{
	ErrUnknown:               1,
	ErrInvalidFlag:           2,
	ErrTokenization:          2,
	ErrCommandNotFound:       1,
	ErrAmbiguousInvocation:   2,
	ErrParameterBinding:      2,
	ErrParameterParse:        2,
	ErrConditionNotSatisfied: 1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero

	// Command is the space-joined path the error refers to, if any.
	Command string
	// Candidates holds every matching path of an ambiguous invocation.
	Candidates [][]string
	// Suggestions holds similar command names for a not-found error.
	Suggestions []string
	// Parameter is the identity of the offending parameter, if any.
	Parameter string
	// Condition is the name of the failed condition, if any.
	Condition string

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Is reports whether err is a usage error of the given kind.
func Is(err error, kind ErrorKind) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.Kind == kind
}

// KindOf returns the kind of err, or ErrUnknown when err is not a usage error.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

func joinPath(path []string) string {
	return strings.Join(path, " ")
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
