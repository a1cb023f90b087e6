package completions

import (
	"sort"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/params"
)

// CommandInfo represents one completable path of the command tree.
type CommandInfo struct {
	Name        string
	Path        []string // Full path from root (e.g., ["cmdtree", "math", "div"])
	Summary     string
	Subcommands []string
	Flags       []FlagInfo
}

// FlagInfo represents a named parameter or host flag.
type FlagInfo struct {
	Long        string
	Short       string
	Description string
	HasValue    bool
}

// Names returns the dashed spellings of the flag, long first.
func (f FlagInfo) Names() []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

// ExtractCommands walks the tree and returns one entry per distinct path.
// Siblings sharing a key are merged into a single entry. rootFlags are
// attached to the root entry.
func ExtractCommands(t *dispatchers.Tree, rootFlags ...FlagInfo) []CommandInfo {
	var commands []CommandInfo
	extractNode(t, []dispatchers.NodeID{t.Root()}, []string{t.Name()}, &commands)
	if len(commands) > 0 {
		commands[0].Flags = mergeFlags(append(append([]FlagInfo{}, rootFlags...), commands[0].Flags...))
	}
	return commands
}

func extractNode(t *dispatchers.Tree, ids []dispatchers.NodeID, path []string, commands *[]CommandInfo) {
	cmd := CommandInfo{Name: path[len(path)-1], Path: path}

	children := make(map[string][]dispatchers.NodeID)
	for _, id := range ids {
		n := t.Node(id)
		if cmd.Summary == "" {
			cmd.Summary = n.Summary
		}
		if n.Kind == dispatchers.KindCommand {
			cmd.Flags = append(cmd.Flags, flagsOf(n.Signature)...)
			continue
		}
		for _, def := range defaults(t, id) {
			cmd.Flags = append(cmd.Flags, flagsOf(t.Node(def).Signature)...)
		}
		for _, cid := range t.Visible(id) {
			key := t.Node(cid).Key
			children[key] = append(children[key], cid)
		}
	}
	cmd.Flags = mergeFlags(cmd.Flags)

	for key := range children {
		cmd.Subcommands = append(cmd.Subcommands, key)
	}
	sort.Strings(cmd.Subcommands)

	*commands = append(*commands, cmd)

	for _, key := range cmd.Subcommands {
		sub := append(append([]string{}, path...), key)
		extractNode(t, children[key], sub, commands)
	}
}

// defaults returns the default commands that run when id's path ends.
func defaults(t *dispatchers.Tree, id dispatchers.NodeID) []dispatchers.NodeID {
	var out []dispatchers.NodeID
	for _, cid := range t.Node(id).Children {
		n := t.Node(cid)
		switch {
		case n.IsDefault():
			out = append(out, cid)
		case n.IsTransparent():
			out = append(out, defaults(t, cid)...)
		}
	}
	return out
}

func flagsOf(shapes []params.Shape) []FlagInfo {
	var flags []FlagInfo
	for _, s := range shapes {
		if !s.IsNamed() {
			continue
		}
		flags = append(flags, FlagInfo{
			Long:        s.Long(),
			Short:       s.Short(),
			Description: s.Description(),
			HasValue:    true,
		})
	}
	return flags
}

func mergeFlags(flags []FlagInfo) []FlagInfo {
	seen := make(map[string]bool, len(flags))
	var out []FlagInfo
	for _, f := range flags {
		names := f.Names()
		if len(names) == 0 || seen[names[0]] {
			continue
		}
		seen[names[0]] = true
		out = append(out, f)
	}
	return out
}

// FindCommand finds a command by its path
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if pathsEqual(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
