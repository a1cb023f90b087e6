package usage

import "fmt"

// ParameterBinding is returned when a command path matched but its
// parameters could not be bound to the input.
func ParameterBinding(path []string, parameter string, err error) *Error {
	command := joinPath(path)
	return &Error{
		Kind:      ErrParameterBinding,
		Message:   fmt.Sprintf("%s: %v", command, err),
		Command:   command,
		Parameter: parameter,
		Err:       err,
	}
}
