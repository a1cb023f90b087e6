package actions

import (
	"context"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// Echo joins its words with single spaces.
func Echo(_ context.Context, args []any) (any, error) {
	words, _ := dispatchers.Values[string](args, 0)
	return strings.Join(words, " "), nil
}

// Greet greets a name; the greeting words default to "hello".
func Greet(_ context.Context, args []any) (any, error) {
	name, _ := dispatchers.Arg[string](args, 0)
	greeting, _ := dispatchers.Values[string](args, 1)
	if len(greeting) == 0 {
		greeting = []string{"hello"}
	}
	return strings.Join(greeting, " ") + ", " + name, nil
}

// Ping answers pong.
func Ping(context.Context, []any) (any, error) {
	return "pong", nil
}

// GreetAll greets several names at once: "hello, ada, bob and eve".
func GreetAll(_ context.Context, args []any) (any, error) {
	names, _ := dispatchers.Values[string](args, 0)
	switch len(names) {
	case 0:
		return "hello", nil
	case 1:
		return "hello, " + names[0], nil
	}
	return "hello, " + strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1], nil
}
