package parsers

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Built-in type keys.
const (
	TypeString   = "string"
	TypeInt      = "int"
	TypeInt64    = "int64"
	TypeUint     = "uint"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeDuration = "duration"
	TypeDate     = "date"
)

// DateLayout is the layout accepted by the date parser.
const DateLayout = "2006-01-02"

// Default returns a registry with the built-in parsers.
func Default() *Registry {
	return NewRegistry().
		Register(TypeString, Func(parseString)).
		Register(TypeInt, Func(parseInt)).
		Register(TypeInt64, Func(parseInt64)).
		Register(TypeUint, Func(parseUint)).
		Register(TypeFloat, Func(parseFloat)).
		Register(TypeBool, Func(parseBool)).
		Register(TypeDuration, Func(parseDuration)).
		Register(TypeDate, Func(parseDate))
}

func parseString(_ context.Context, raw string) (any, error) {
	return raw, nil
}

func parseInt(_ context.Context, raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not an integer", raw)
	}
	return n, nil
}

func parseInt64(_ context.Context, raw string) (any, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a 64-bit integer", raw)
	}
	return n, nil
}

func parseUint(_ context.Context, raw string) (any, error) {
	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return nil, fmt.Errorf("%q is not a non-negative integer", raw)
	}
	return uint(n), nil
}

func parseFloat(_ context.Context, raw string) (any, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", raw)
	}
	return f, nil
}

func parseBool(_ context.Context, raw string) (any, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a boolean", raw)
	}
	return b, nil
}

func parseDuration(_ context.Context, raw string) (any, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a duration", raw)
	}
	return d, nil
}

func parseDate(_ context.Context, raw string) (any, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a date (YYYY-MM-DD)", raw)
	}
	return t, nil
}
