package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"echo":          1,
	"greet":         2,
	"math sum":      1,
	"math div":      2,
	"history":       1,
	"history list":  2,
	"history clear": 3,
	"help":          4,
	"browse":        5,
	"commands":      6,
	"version":       1,
	"ping":          2,
	"completions":   3,
}

func joinPath(path []string) string {
	return strings.Join(path, " ")
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(s domain.Styler, usage string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' || (c == '-' && i > 0 && usage[i-1] == ' ') {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return s.Info(cmd)
	}
	return s.Info(cmd) + " " + s.Muted(rest)
}

// UsageLine returns a command's usage, synthesized from its signature
// unless the command declares one.
func UsageLine(t *Tree, id NodeID) string {
	n := t.Node(id)
	if n.Usage != "" {
		return n.Usage
	}

	parts := []string{t.Name()}
	parts = append(parts, t.Path(id)...)
	switch n.Kind {
	case KindCommand:
		for _, shape := range n.Signature {
			parts = append(parts, shape.Usage())
		}
	default:
		parts = append(parts, "<command>")
	}
	return strings.Join(parts, " ")
}

func sortByDisplayOrder(t *Tree, ids []NodeID) {
	sort.SliceStable(ids, func(i, j int) bool {
		nameI := joinPath(t.Path(ids[i]))
		nameJ := joinPath(t.Path(ids[j]))
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		if hasI && hasJ && orderI != orderJ {
			return orderI < orderJ
		}
		if hasI != hasJ {
			return hasI
		}
		return nameI < nameJ
	})
}

// Help renders help for a node of the tree.
func Help(t *Tree, id NodeID, s domain.Styler) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}

	var out bytes.Buffer
	switch n.Kind {
	case KindRoot:
		rootHelp(&out, t, s)
	case KindGroup:
		groupHelp(&out, t, id, s)
	case KindCommand:
		commandHelp(&out, t, id, s)
	}
	return out.String()
}

func rootHelp(out *bytes.Buffer, t *Tree, s domain.Styler) {
	root := t.Node(t.Root())

	out.WriteString(s.Header(t.Name()))
	if root.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(root.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(s, UsageLine(t, t.Root())))
	out.WriteString("\n\n")

	grouped := make(map[CommandCategory][]NodeID)
	for i := 1; i < t.Len(); i++ {
		cmd := t.Node(NodeID(i))
		if cmd.Kind == KindCommand {
			grouped[cmd.Category] = append(grouped[cmd.Category], cmd.ID)
		}
	}

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}

		out.WriteString(cat.String())
		out.WriteString("\n")

		sortByDisplayOrder(t, cmds)
		for _, id := range cmds {
			fmt.Fprintf(out, "   %s  %s\n", s.Info(fmt.Sprintf("%-16s", joinPath(t.Path(id)))), t.Node(id).Summary)
		}
		out.WriteString("\n")
	}

	fmt.Fprintf(out, "See '%s help <command>' for detailed help on a specific command.\n", t.Name())
}

func groupHelp(out *bytes.Buffer, t *Tree, id NodeID, s domain.Styler) {
	n := t.Node(id)

	title := joinPath(t.Path(id))
	if title == "" {
		title = t.Name()
	}
	out.WriteString(s.Header(title))
	if n.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(n.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(s, UsageLine(t, id)))
	out.WriteString("\n\n")

	if n.Description != "" {
		out.WriteString(n.Description)
		out.WriteString("\n\n")
	}
	writeAliases(out, n, s)

	children := t.Visible(id)
	if len(children) > 0 {
		out.WriteString("COMMANDS\n")
		sortByDisplayOrder(t, children)
		for _, cid := range children {
			child := t.Node(cid)
			fmt.Fprintf(out, "   %s  %s\n", s.Info(fmt.Sprintf("%-12s", child.Key)), child.Summary)
		}
		out.WriteString("\n")
	}

	fmt.Fprintf(out, "See '%s help %s <command>' to read about a specific command.\n", t.Name(), joinPath(t.Path(id)))
}

func commandHelp(out *bytes.Buffer, t *Tree, id NodeID, s domain.Styler) {
	n := t.Node(id)

	out.WriteString(s.Header(joinPath(t.Path(id))))
	if n.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(n.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(s, UsageLine(t, id)))
	out.WriteString("\n\n")

	if n.Description != "" {
		out.WriteString(n.Description)
		out.WriteString("\n\n")
	}
	writeAliases(out, n, s)

	if len(n.Signature) == 0 {
		return
	}

	out.WriteString("PARAMETERS\n")
	for _, shape := range n.Signature {
		name := shape.Identity()
		if shape.IsNamed() && shape.Short() != "" && shape.Long() != "" {
			name = "-" + shape.Short() + ", --" + shape.Long()
		}
		if shape.IsNamed() {
			name += " <" + shape.Type() + ">"
		}

		desc := shape.Description()
		if shape.Omissible() {
			if def := describeDefault(shape.Default()); def != "" {
				desc = strings.TrimSpace(desc + " " + s.Muted("(default "+def+")"))
			}
		}
		fmt.Fprintf(out, "   %s  %s\n", s.Info(fmt.Sprintf("%-24s", name)), desc)
	}
	out.WriteString("\n")
}

func writeAliases(out *bytes.Buffer, n *Node, s domain.Styler) {
	if len(n.Aliases) == 0 {
		return
	}
	out.WriteString("ALIASES\n   ")
	out.WriteString(s.Muted(strings.Join(n.Aliases, ", ")))
	out.WriteString("\n\n")
}

func describeDefault(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case []any:
		if len(d) == 0 {
			return ""
		}
		parts := make([]string, len(d))
		for i, item := range d {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(d)
	}
}
