package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// bashCompletionScripts are the usual locations of the bash-completion
// loader.
var bashCompletionScripts = []string{
	"/usr/share/bash-completion/bash_completion",
	"/etc/bash_completion",
	"/usr/local/etc/profile.d/bash_completion.sh",
	"/opt/homebrew/etc/profile.d/bash_completion.sh",
}

// RunningShell guesses the user's shell from $SHELL. It returns "" when the
// shell is unknown or unsupported.
func RunningShell() Shell {
	shell, err := ParseShell(filepath.Base(os.Getenv("SHELL")))
	if err != nil {
		return ""
	}
	return shell
}

// IsBashCompletionInstalled reports whether the bash-completion loader is
// present, which is what makes the per-user completions directory work.
func IsBashCompletionInstalled() bool {
	for _, p := range bashCompletionScripts {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

// SourceInstructions returns the line that loads completions for shell
// from the binary at bin.
func SourceInstructions(shell Shell, bin string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions script %s)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions script fish | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns the file the shell auto-loads completions for
// program from, under home. It returns "" when the shell has no such
// directory.
func AutoInstallPath(shell Shell, home, program string) string {
	if home == "" {
		return ""
	}
	switch shell {
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", program+".fish")
	case ShellBash:
		if IsBashCompletionInstalled() {
			return filepath.Join(home, ".local", "share", "bash-completion", "completions", program)
		}
		return ""
	default:
		return ""
	}
}
