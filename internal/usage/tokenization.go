package usage

import "fmt"

// Tokenization is returned when raw input cannot be split into tokens.
func Tokenization(err error) *Error {
	return &Error{
		Kind:    ErrTokenization,
		Message: fmt.Sprintf("malformed input: %v", err),
		Err:     err,
	}
}
