package cli

import (
	"github.com/footprint-tools/cmdtree/internal/actions"
	completionsactions "github.com/footprint-tools/cmdtree/internal/actions/completions"
	configactions "github.com/footprint-tools/cmdtree/internal/actions/config"
	helpactions "github.com/footprint-tools/cmdtree/internal/actions/help"
	historyactions "github.com/footprint-tools/cmdtree/internal/actions/history"
	"github.com/footprint-tools/cmdtree/internal/conditions"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/params"
	"github.com/footprint-tools/cmdtree/internal/parsers"
)

// BuildTree assembles the command tree of the cmdtree host.
func BuildTree() *dispatchers.Tree {
	tree := dispatchers.NewTree(dispatchers.RootSpec{
		Name:    "cmdtree",
		Summary: "Resolve and dispatch commands from a command tree",
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "echo",
		Summary:  "Print words separated by spaces",
		Category: dispatchers.CategoryBasics,
		Params: []params.Shape{
			params.Must(params.PositionalCollection(params.Spec{
				Name:        "words",
				Min:         1,
				Description: "Words to print",
			})),
		},
		Handler: actions.Echo,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "greet",
		Summary:  "Greet someone",
		Category: dispatchers.CategoryBasics,
		Params: []params.Shape{
			params.Must(params.Positional(params.Spec{Name: "name", Description: "Who to greet"})),
			params.Must(params.NamedGreedy(params.Spec{
				Short:       "g",
				Long:        "greeting",
				Optional:    true,
				Description: "Greeting words; everything after the flag (default hello)",
			})),
		},
		Handler: actions.Greet,
	})

	buildMath(tree)
	buildUtility(tree)
	buildHistory(tree)
	buildConfig(tree)

	tree.MustCommand(dispatchers.CommandSpec{
		Key:         "help",
		Summary:     "Show help for a command or group",
		Description: "Without a path, lists every command. A path that names several\ncommands shows help for each of them.",
		Category:    dispatchers.CategoryInspect,
		Params:      []params.Shape{HelpPathParam},
		Handler:     helpactions.Show,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "browse",
		Summary:  "Browse help for every command interactively",
		Category: dispatchers.CategoryInspect,
		Handler:  helpactions.Browse,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "commands",
		Summary:  "List the path of every command",
		Category: dispatchers.CategoryInspect,
		Handler:  helpactions.Commands,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "version",
		Summary:  "Show cmdtree version",
		Category: dispatchers.CategoryUtility,
		Handler:  actions.ShowVersion,
	})

	buildCompletions(tree)

	return tree
}

// buildMath declares sum twice: positional numbers and --values. Both
// siblings answer "math sum"; the tokens decide which one binds.
func buildMath(tree *dispatchers.Tree) {
	math := tree.MustGroup(dispatchers.GroupSpec{
		Key:        "math",
		Aliases:    []string{"m"},
		Summary:    "Arithmetic",
		DeclaredBy: "math",
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "sum",
		Parent:   math,
		Summary:  "Add integers",
		Category: dispatchers.CategoryCompute,
		Params: []params.Shape{
			params.Must(params.PositionalCollection(params.Spec{
				Name:        "numbers",
				Type:        parsers.TypeInt,
				Min:         1,
				Description: "Integers to add",
			})),
		},
		Handler: actions.Sum,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "sum",
		Parent:   math,
		Summary:  "Add integers given after --values",
		Category: dispatchers.CategoryCompute,
		Params: []params.Shape{
			params.Must(params.NamedGreedy(params.Spec{
				Short:       "v",
				Long:        "values",
				Type:        parsers.TypeInt,
				Description: "Integers to add",
			})),
		},
		Handler: actions.Sum,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "div",
		Parent:   math,
		Summary:  "Divide a by b",
		Category: dispatchers.CategoryCompute,
		Params: []params.Shape{
			params.Must(params.Positional(params.Spec{Name: "a", Type: parsers.TypeFloat, Description: "Dividend"})),
			params.Must(params.Positional(params.Spec{Name: "b", Type: parsers.TypeFloat, Description: "Divisor"})),
			params.Must(params.Named(params.Spec{
				Short:       "p",
				Long:        "precision",
				Type:        parsers.TypeInt,
				Optional:    true,
				Default:     2,
				Description: "Digits after the decimal point",
				Conditions:  []conditions.Condition{intRange("precision range", 0, 10)},
			})),
		},
		Handler: actions.Div,
	})
}

// buildUtility adds a transparent group whose commands sit at the top
// level. Its greet takes any number of names, so "greet ada" matches both
// greet commands.
func buildUtility(tree *dispatchers.Tree) {
	util := tree.MustGroup(dispatchers.GroupSpec{
		Summary:    "Utilities",
		DeclaredBy: "utility",
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "ping",
		Parent:   util,
		Summary:  "Answer pong",
		Category: dispatchers.CategoryUtility,
		Handler:  actions.Ping,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "greet",
		Parent:   util,
		Summary:  "Greet several people at once",
		Category: dispatchers.CategoryBasics,
		Params: []params.Shape{
			params.Must(params.PositionalCollection(params.Spec{
				Name:        "names",
				Min:         1,
				Description: "Who to greet",
			})),
		},
		Handler: actions.GreetAll,
	})
}

// buildHistory requires an open history store; "history" alone lists.
func buildHistory(tree *dispatchers.Tree) {
	history := tree.MustGroup(dispatchers.GroupSpec{
		Key:        "history",
		Aliases:    []string{"hist"},
		Summary:    "Inspect recorded invocations",
		Conditions: []conditions.Condition{conditions.RequireState(actions.StateHistory)},
	})

	listParams := []params.Shape{HistoryLimitParam, HistoryOutcomeParam}

	tree.MustCommand(dispatchers.CommandSpec{
		Parent:   history,
		Summary:  "List recent invocations",
		Category: dispatchers.CategoryInspect,
		Params:   listParams,
		Handler:  historyactions.List,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "list",
		Parent:   history,
		Aliases:  []string{"ls"},
		Summary:  "List recent invocations, newest first",
		Category: dispatchers.CategoryInspect,
		Params:   listParams,
		Handler:  historyactions.List,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "clear",
		Parent:   history,
		Summary:  "Delete every recorded invocation",
		Category: dispatchers.CategoryInspect,
		Handler:  historyactions.Clear,
	})
}

func buildConfig(tree *dispatchers.Tree) {
	config := tree.MustGroup(dispatchers.GroupSpec{
		Key:     "config",
		Summary: "Manage configuration",
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "get",
		Parent:   config,
		Summary:  "Print a config value",
		Category: dispatchers.CategoryUtility,
		Params:   []params.Shape{ConfigKeyParam},
		Handler:  configactions.Get,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "set",
		Parent:   config,
		Summary:  "Write a config value to the config file",
		Category: dispatchers.CategoryUtility,
		Params:   []params.Shape{ConfigKeyParam, ConfigValueParam},
		Handler:  configactions.Set,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "unset",
		Parent:   config,
		Summary:  "Remove a config value from the config file",
		Category: dispatchers.CategoryUtility,
		Params:   []params.Shape{ConfigKeyParam},
		Handler:  configactions.Unset,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "list",
		Parent:   config,
		Summary:  "List every config value",
		Category: dispatchers.CategoryUtility,
		Handler:  configactions.List,
	})
}

// buildCompletions keeps script and install apart from the default command
// by requiring their shell argument.
func buildCompletions(tree *dispatchers.Tree) {
	group := tree.MustGroup(dispatchers.GroupSpec{
		Key:     "completions",
		Summary: "Set up shell completions",
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Parent:   group,
		Summary:  "Show how to enable completions",
		Category: dispatchers.CategoryUtility,
		Params:   []params.Shape{DetectedShellParam},
		Handler:  completionsactions.Show,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "script",
		Parent:   group,
		Summary:  "Print the completion script",
		Category: dispatchers.CategoryUtility,
		Params:   []params.Shape{ShellParam},
		Handler:  completionsactions.Script,
	})

	tree.MustCommand(dispatchers.CommandSpec{
		Key:      "install",
		Parent:   group,
		Summary:  "Write the completion script to the shell's auto-load directory",
		Category: dispatchers.CategoryUtility,
		Params:   []params.Shape{ShellParam},
		Handler:  completionsactions.Install,
	})
}
