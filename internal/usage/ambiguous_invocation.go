package usage

import (
	"fmt"
	"strings"
)

// AmbiguousInvocation is returned when more than one command accepts the
// input. Every candidate path is kept so the caller can choose.
func AmbiguousInvocation(candidates [][]string) *Error {
	lines := make([]string, len(candidates))
	for i, c := range candidates {
		lines[i] = joinPath(c)
	}

	return &Error{
		Kind:       ErrAmbiguousInvocation,
		Message:    fmt.Sprintf("ambiguous invocation, %d commands match:\n\t%s", len(candidates), strings.Join(lines, "\n\t")),
		Candidates: candidates,
	}
}
