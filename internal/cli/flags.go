package cli

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/footprint-tools/cmdtree/internal/completions"
)

// HostFlags are the flags cmdtree reads before the command words.
type HostFlags struct {
	Help            bool
	Version         bool
	CaseInsensitive bool
	NoColor         bool
	NoPager         bool
	Pager           string
	ConfigFile      string
	LogLevel        string
	Command         string
	Input           string
	NoHistory       bool
}

// NewFlagSet declares the host flags on a new set bound to f. Parsing
// stops at the first non-flag word; everything from there on belongs to
// the command tree.
func NewFlagSet(f *HostFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("cmdtree", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SortFlags = false
	fs.Usage = func() {}

	fs.BoolVarP(&f.Help, "help", "h", false, "Show help")
	fs.BoolVarP(&f.Version, "version", "v", false, "Show version")
	fs.BoolVar(&f.CaseInsensitive, "case-insensitive", false, "Match command keys and parameter names ignoring case")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&f.NoPager, "no-pager", false, "Do not use a pager for output")
	fs.StringVar(&f.Pager, "pager", "", "Use this pager command for output")
	fs.StringVar(&f.ConfigFile, "config", "", "Read configuration from this YAML file")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVarP(&f.Command, "command", "c", "", "Run a raw command line instead of the arguments")
	fs.StringVar(&f.Input, "input", "", "Read a pre-parsed request (JSONC or YAML) from a file, or - for stdin")
	fs.BoolVar(&f.NoHistory, "no-history", false, "Do not record this invocation")
	return fs
}

// ParseHostFlags splits args into host flags and the command words.
func ParseHostFlags(args []string) (HostFlags, []string, error) {
	var f HostFlags
	fs := NewFlagSet(&f)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return f, nil, err
	}
	return f, fs.Args(), nil
}

// Overrides turns flags that shadow configuration keys into config overrides.
func (f HostFlags) Overrides() map[string]string {
	overrides := make(map[string]string)
	if f.CaseInsensitive {
		overrides["case_insensitive"] = "true"
	}
	if f.NoColor {
		overrides["color"] = "false"
	}
	if f.LogLevel != "" {
		overrides["log_level"] = f.LogLevel
	}
	if f.NoHistory {
		overrides["history_enabled"] = "false"
	}
	return overrides
}

// FlagUsages renders the host flag table for help output.
func FlagUsages() string {
	var f HostFlags
	return NewFlagSet(&f).FlagUsages()
}

// CompletionFlags describes the host flags for shell completion scripts.
func CompletionFlags() []completions.FlagInfo {
	var f HostFlags
	var out []completions.FlagInfo
	NewFlagSet(&f).VisitAll(func(fl *pflag.Flag) {
		out = append(out, completions.FlagInfo{
			Long:        fl.Name,
			Short:       fl.Shorthand,
			Description: fl.Usage,
			HasValue:    fl.Value.Type() != "bool",
		})
	})
	return out
}
