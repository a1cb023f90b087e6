package usage

import "fmt"

// ParameterParse is returned when a value parser rejects a raw value.
func ParameterParse(path []string, parameter string, err error) *Error {
	command := joinPath(path)
	return &Error{
		Kind:      ErrParameterParse,
		Message:   fmt.Sprintf("%s: invalid value for %s: %v", command, parameter, err),
		Command:   command,
		Parameter: parameter,
		Err:       err,
	}
}
