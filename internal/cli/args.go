package cli

import (
	"context"
	"fmt"

	"github.com/footprint-tools/cmdtree/internal/completions"
	"github.com/footprint-tools/cmdtree/internal/conditions"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/params"
	"github.com/footprint-tools/cmdtree/internal/parsers"
)

var (
	ConfigKeyParam = params.Must(params.Positional(params.Spec{
		Name:        "key",
		Description: "Configuration key",
		Conditions:  []conditions.Condition{knownConfigKey},
	}))

	ConfigValueParam = params.Must(params.Positional(params.Spec{
		Name:        "value",
		Description: "Value to assign",
	}))

	HelpPathParam = params.Must(params.PositionalCollection(params.Spec{
		Name:        "path",
		Description: "Command path to describe; empty for an overview",
	}))

	ShellParam = params.Must(params.Positional(params.Spec{
		Name:        "shell",
		Description: "Target shell: bash, zsh or fish",
		Conditions:  []conditions.Condition{knownShell},
	}))

	DetectedShellParam = params.Must(params.Positional(params.Spec{
		Name:        "shell",
		Optional:    true,
		Default:     "",
		Description: "Target shell: bash, zsh or fish; detected from $SHELL when omitted",
		Conditions:  []conditions.Condition{knownShell},
	}))

	HistoryLimitParam = params.Must(params.Named(params.Spec{
		Short:       "n",
		Long:        "limit",
		Type:        parsers.TypeInt,
		Optional:    true,
		Default:     20,
		Description: "Maximum number of invocations to show",
		Conditions:  []conditions.Condition{intRange("positive limit", 1, 1000)},
	}))

	HistoryOutcomeParam = params.Must(params.Named(params.Spec{
		Long:        "outcome",
		Optional:    true,
		Default:     "",
		Description: "Only show invocations with this outcome (ok, command_not_found, ...)",
	}))
)

// knownConfigKey rejects keys that are not configuration keys before the
// handler touches the config file.
var knownConfigKey = conditions.New("known config key", func(_ context.Context, c conditions.Context) error {
	key, _ := c.Value.(string)
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("%w: unknown config key %q", conditions.ErrNotSatisfied, key)
	}
	return nil
})

var knownShell = conditions.New("known shell", func(_ context.Context, c conditions.Context) error {
	name, _ := c.Value.(string)
	if name == "" {
		return nil
	}
	if _, err := completions.ParseShell(name); err != nil {
		return fmt.Errorf("%w: %v", conditions.ErrNotSatisfied, err)
	}
	return nil
})

// intRange requires an int parameter value within [lo, hi].
func intRange(name string, lo, hi int) conditions.Condition {
	return conditions.New(name, func(_ context.Context, c conditions.Context) error {
		n, ok := c.Value.(int)
		if !ok {
			return fmt.Errorf("%w: %s is not an int", conditions.ErrNotSatisfied, c.Parameter)
		}
		if n < lo || n > hi {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d", conditions.ErrNotSatisfied, c.Parameter, lo, hi, n)
		}
		return nil
	})
}
