package completions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

func TestParseShell(t *testing.T) {
	for _, s := range Shells() {
		got, err := ParseShell(string(s))
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	_, err := ParseShell("powershell")
	require.ErrorContains(t, err, "unsupported shell: powershell")
}

func TestGenerateBash(t *testing.T) {
	script := GenerateBash(ExtractCommands(buildTestTree(), hostFlags...))

	require.True(t, strings.HasPrefix(script, "# cmdtree bash completion script"))
	for _, check := range []string{
		"_cmdtree_completions()",
		"complete -F _cmdtree_completions cmdtree",
		`"") opts="config history ping setup --help -h --config" ;;`,
		`"config") opts="get set" ;;`,
		`"config get") opts="--format" ;;`,
		`"history") opts="clear --limit -n" ;;`,
	} {
		require.Contains(t, script, check)
	}
}

func TestGenerateZsh(t *testing.T) {
	script := GenerateZsh(ExtractCommands(buildTestTree(), hostFlags...))

	require.True(t, strings.HasPrefix(script, "#compdef cmdtree"))
	for _, check := range []string{
		"_cmdtree()",
		"_cmdtree_commands()",
		"_describe",
		"'config:Manage settings'",
		"'setup:Start tracking'",
		"'--force:Force installation'",
		"compdef _cmdtree cmdtree",
	} {
		require.Contains(t, script, check)
	}
}

func TestGenerateFish(t *testing.T) {
	script := GenerateFish(ExtractCommands(buildTestTree(), hostFlags...))

	for _, check := range []string{
		"complete -c cmdtree -f",
		"complete -c cmdtree -n '__fish_use_subcommand' -a 'config' -d 'Manage settings'",
		"-a 'setup' -d 'Start tracking'",
		"complete -c cmdtree -n '__fish_seen_subcommand_from config; and not __fish_seen_subcommand_from get set' -a 'get' -d 'Get a setting'",
		"complete -c cmdtree -n '__fish_seen_subcommand_from setup' -l force -s f -d 'Force installation' -r",
		"complete -c cmdtree -n '__fish_use_subcommand' -l help -s h -d 'Show help'\n",
	} {
		require.Contains(t, script, check)
	}
}

func TestGenerate_EmptyTree(t *testing.T) {
	commands := ExtractCommands(dispatchers.NewTree(dispatchers.RootSpec{Name: "my-tool"}))

	bash, err := Generate(ShellBash, commands)
	require.NoError(t, err)
	require.Contains(t, bash, "_my_tool_completions()")
	require.Contains(t, bash, "complete -F _my_tool_completions my-tool")

	zsh, err := Generate(ShellZsh, commands)
	require.NoError(t, err)
	require.Contains(t, zsh, "#compdef my-tool")

	fish, err := Generate(ShellFish, commands)
	require.NoError(t, err)
	require.Contains(t, fish, "complete -c my-tool -f")

	_, err = Generate(Shell("tcsh"), commands)
	require.Error(t, err)
}

func TestQuoting(t *testing.T) {
	require.Equal(t, `'it'\''s'`, zshQuote("it's"))
	require.Equal(t, `'it\'s'`, fishQuote("it's"))
}
