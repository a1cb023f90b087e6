package completions

import (
	"fmt"
	"regexp"
	"strings"
)

// Shell names a supported completion target.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
func Shells() []Shell {
	return []Shell{ShellBash, ShellZsh, ShellFish}
}

// ParseShell validates a shell name.
func ParseShell(name string) (Shell, error) {
	for _, s := range Shells() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", name)
}

// Generate renders the completion script for shell.
func Generate(shell Shell, commands []CommandInfo) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(commands), nil
	case ShellZsh:
		return GenerateZsh(commands), nil
	case ShellFish:
		return GenerateFish(commands), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]`)

func programName(commands []CommandInfo) string {
	if len(commands) == 0 || commands[0].Name == "" {
		return "cmdtree"
	}
	return commands[0].Name
}

func funcName(program string) string {
	return "_" + nonIdent.ReplaceAllString(program, "_")
}

// words returns the path below the program name, space separated.
func words(cmd CommandInfo) string {
	if len(cmd.Path) <= 1 {
		return ""
	}
	return strings.Join(cmd.Path[1:], " ")
}

func candidates(cmd CommandInfo) []string {
	out := append([]string{}, cmd.Subcommands...)
	for _, f := range cmd.Flags {
		out = append(out, f.Names()...)
	}
	return out
}

// GenerateBash renders a bash completion function keyed on the command path
// typed so far.
func GenerateBash(commands []CommandInfo) string {
	program := programName(commands)
	fn := funcName(program) + "_completions"

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", program)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur word cmdpath i\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    cmdpath=\"\"\n")
	b.WriteString("    for ((i = 1; i < COMP_CWORD; i++)); do\n")
	b.WriteString("        word=\"${COMP_WORDS[i]}\"\n")
	b.WriteString("        [[ \"$word\" == -* ]] && break\n")
	b.WriteString("        cmdpath=\"$cmdpath $word\"\n")
	b.WriteString("    done\n")
	b.WriteString("    cmdpath=\"${cmdpath# }\"\n\n")
	b.WriteString("    local opts=\"\"\n")
	b.WriteString("    case \"$cmdpath\" in\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "        %q) opts=%q ;;\n", words(cmd), strings.Join(candidates(cmd), " "))
	}
	b.WriteString("    esac\n")
	b.WriteString("    COMPREPLY=($(compgen -W \"$opts\" -- \"$cur\"))\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, program)
	return b.String()
}

// GenerateZsh renders a zsh completion function using _describe.
func GenerateZsh(commands []CommandInfo) string {
	program := programName(commands)
	fn := funcName(program)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", program)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cmdpath=\"\" i\n")
	b.WriteString("    for ((i = 2; i < CURRENT; i++)); do\n")
	b.WriteString("        [[ \"${words[i]}\" == -* ]] && break\n")
	b.WriteString("        cmdpath=\"$cmdpath ${words[i]}\"\n")
	b.WriteString("    done\n")
	fmt.Fprintf(&b, "    %s_commands \"${cmdpath# }\"\n", fn)
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a entries\n")
	b.WriteString("    case \"$1\" in\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, "        %q)\n", words(cmd))
		b.WriteString("            entries=(\n")
		for _, sub := range cmd.Subcommands {
			fmt.Fprintf(&b, "                %s\n", zshQuote(sub+":"+summaryOf(commands, cmd, sub)))
		}
		for _, f := range cmd.Flags {
			for _, name := range f.Names() {
				fmt.Fprintf(&b, "                %s\n", zshQuote(name+":"+f.Description))
			}
		}
		b.WriteString("            )\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    _describe 'command' entries\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef %s %s\n", fn, program)
	return b.String()
}

// GenerateFish renders fish complete directives, one per subcommand and
// flag, conditioned on the subcommands already seen.
func GenerateFish(commands []CommandInfo) string {
	program := programName(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", program)
	fmt.Fprintf(&b, "complete -c %s -f\n", program)
	for _, cmd := range commands {
		seen := fishSeen(cmd)
		list := seen
		if len(cmd.Subcommands) > 0 {
			list = seen + "; and not __fish_seen_subcommand_from " + strings.Join(cmd.Subcommands, " ")
			if len(cmd.Path) <= 1 {
				list = "__fish_use_subcommand"
			}
		}
		for _, sub := range cmd.Subcommands {
			fmt.Fprintf(&b, "complete -c %s -n %s -a %s -d %s\n",
				program, fishQuote(list), fishQuote(sub), fishQuote(summaryOf(commands, cmd, sub)))
		}
		for _, f := range cmd.Flags {
			b.WriteString(fishFlag(program, seen, f))
		}
	}
	return b.String()
}

func fishSeen(cmd CommandInfo) string {
	if len(cmd.Path) <= 1 {
		return "__fish_use_subcommand"
	}
	conds := make([]string, 0, len(cmd.Path)-1)
	for _, w := range cmd.Path[1:] {
		conds = append(conds, "__fish_seen_subcommand_from "+w)
	}
	return strings.Join(conds, "; and ")
}

func fishFlag(program, cond string, f FlagInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "complete -c %s -n %s", program, fishQuote(cond))
	if f.Long != "" {
		fmt.Fprintf(&b, " -l %s", f.Long)
	}
	switch {
	case len(f.Short) == 1:
		fmt.Fprintf(&b, " -s %s", f.Short)
	case f.Short != "":
		fmt.Fprintf(&b, " -o %s", f.Short)
	}
	if f.Description != "" {
		fmt.Fprintf(&b, " -d %s", fishQuote(f.Description))
	}
	if f.HasValue {
		b.WriteString(" -r")
	}
	b.WriteString("\n")
	return b.String()
}

func summaryOf(commands []CommandInfo, parent CommandInfo, sub string) string {
	path := append(append([]string{}, parent.Path...), sub)
	if cmd := FindCommand(commands, path); cmd != nil {
		return cmd.Summary
	}
	return ""
}

func zshQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
