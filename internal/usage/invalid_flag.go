package usage

import "fmt"

// InvalidFlag is returned when a host flag cannot be parsed or used.
func InvalidFlag(flag string, err error) *Error {
	msg := fmt.Sprintf("invalid flag '%s'", flag)
	if err != nil {
		msg += ": " + err.Error()
	}
	return &Error{
		Kind:      ErrInvalidFlag,
		Message:   msg,
		Parameter: flag,
		Err:       err,
	}
}
