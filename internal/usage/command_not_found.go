package usage

import (
	"fmt"
	"strings"
)

// CommandNotFound is returned when no command path matches the input.
// Suggestions are appended to the message when present.
func CommandNotFound(path []string, suggestions []string) *Error {
	command := joinPath(path)

	var msg string
	if command == "" {
		msg = "no command given"
	} else {
		msg = fmt.Sprintf("'%s' is not a command", command)
	}
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are:\n\t" + strings.Join(suggestions, "\n\t")
	}

	return &Error{
		Kind:        ErrCommandNotFound,
		Message:     msg,
		Command:     command,
		Suggestions: suggestions,
	}
}
