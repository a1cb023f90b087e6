package usage

import "fmt"

// ConditionNotSatisfied is returned when a command, group or parameter
// condition rejects the invocation. parameter is empty for node conditions.
func ConditionNotSatisfied(path []string, condition, parameter string, err error) *Error {
	command := joinPath(path)

	msg := fmt.Sprintf("%s: condition '%s' not satisfied: %v", command, condition, err)
	if parameter != "" {
		msg = fmt.Sprintf("%s: condition '%s' on %s not satisfied: %v", command, condition, parameter, err)
	}

	return &Error{
		Kind:      ErrConditionNotSatisfied,
		Message:   msg,
		Command:   command,
		Parameter: parameter,
		Condition: condition,
		Err:       err,
	}
}
