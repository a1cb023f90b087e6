package actions

import (
	"context"
	"errors"
	"strconv"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// ErrDivisionByZero is returned by Div for a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// Sum adds the integers of its single collection argument.
func Sum(_ context.Context, args []any) (any, error) {
	numbers, ok := dispatchers.Values[int](args, 0)
	if !ok {
		return nil, errors.New("sum: expected integers")
	}

	total := 0
	for _, n := range numbers {
		total += n
	}
	return total, nil
}

// Div divides a by b and formats the quotient with the given precision.
func Div(_ context.Context, args []any) (any, error) {
	a, _ := dispatchers.Arg[float64](args, 0)
	b, _ := dispatchers.Arg[float64](args, 1)
	precision, _ := dispatchers.Arg[int](args, 2)

	if b == 0 {
		return nil, ErrDivisionByZero
	}
	return strconv.FormatFloat(a/b, 'f', precision, 64), nil
}
