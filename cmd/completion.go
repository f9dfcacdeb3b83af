// Package cmd provides CLI utilities for cmdtarget
package cmd

import (
	"fmt"
	"strings"
)

// Commands available in cmdtarget
var commands = []string{
	"init",
	"list",
	"status",
	"exec",
	"unit",
	"watch",
	"completion",
	"help",
}

// Shells that completion scripts can be generated for
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// Per-command flags, shared by every shell generator
var commandFlags = map[string][]string{
	"init":   {"--quiet", "-q", "--json"},
	"list":   {"--quiet", "-q", "--json", "--verbose", "-v"},
	"status": {"--quiet", "-q", "--json", "--verbose", "-v"},
	"exec":   {"--prompt", "--no-prompt", "--help-only", "--in", "--yes", "-y", "--quiet", "-q", "--json", "--verbose", "-v"},
	"unit":   {"--unit", "--locale", "--divide", "--json"},
	"watch":  {"--quiet", "-q", "--json"},
}

// flagDescriptions are shown by zsh and fish
var flagDescriptions = map[string]string{
	"--prompt":    "Ask before running",
	"--no-prompt": "Never ask before running",
	"--help-only": "Show help without running",
	"--in":        "Input value",
	"--yes":       "Auto-approve prompts",
	"--quiet":     "Minimal output",
	"--json":      "JSON output",
	"--verbose":   "Log dispatch calls",
	"--unit":      "absolute or percentage",
	"--locale":    "BCP 47 locale tag",
	"--divide":    "Divide by n",
}

// Generate returns the completion script for shell
func Generate(shell string) (string, error) {
	switch shell {
	case "bash":
		return GenerateBashCompletion(), nil
	case "zsh":
		return GenerateZshCompletion(), nil
	case "fish":
		return GenerateFishCompletion(), nil
	case "powershell":
		return GeneratePowerShellCompletion(), nil
	default:
		return "", fmt.Errorf("'%s' is not supported. Use: %s", shell, strings.Join(Shells, ", "))
	}
}

// longFlags drops the short aliases
func longFlags(flags []string) []string {
	var out []string
	for _, f := range flags {
		if strings.HasPrefix(f, "--") {
			out = append(out, f)
		}
	}
	return out
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	var cases strings.Builder
	for _, cmd := range commands {
		flags, ok := commandFlags[cmd]
		if !ok {
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            opts=\"%s\"\n            ;;\n", cmd, strings.Join(flags, " "))
	}

	return fmt.Sprintf(`# bash completion for cmdtarget
_cmdtarget_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Commands
    opts="%s"

    # Command-specific options
    case "${COMP_WORDS[1]}" in
%s        completion)
            opts="%s"
            ;;
    esac

    case "${prev}" in
        --unit)
            opts="absolute percentage"
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -F _cmdtarget_completions cmdtarget
`, strings.Join(commands, " "), cases.String(), strings.Join(Shells, " "))
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	cmdList := make([]string, len(commands))
	for i, cmd := range commands {
		cmdList[i] = fmt.Sprintf("    '%s:%s'", cmd, getCommandDescription(cmd))
	}

	var cases strings.Builder
	for _, cmd := range commands {
		flags, ok := commandFlags[cmd]
		if !ok {
			continue
		}
		specs := make([]string, 0, len(flags))
		for _, f := range longFlags(flags) {
			spec := fmt.Sprintf("'%s[%s]'", f, flagDescriptions[f])
			switch f {
			case "--in", "--locale", "--divide":
				spec = fmt.Sprintf("'%s[%s]:value:'", f, flagDescriptions[f])
			case "--unit":
				spec = fmt.Sprintf("'%s[%s]:unit:(absolute percentage)'", f, flagDescriptions[f])
			}
			specs = append(specs, spec)
		}
		fmt.Fprintf(&cases, "                %s)\n                    _arguments \\\n                        %s\n                    ;;\n",
			cmd, strings.Join(specs, " \\\n                        "))
	}

	return fmt.Sprintf(`#compdef cmdtarget

_cmdtarget() {
    local -a commands
    commands=(
%s
    )

    _arguments -C \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
%s                completion)
                    _arguments '1:shell:(%s)'
                    ;;
            esac
            ;;
    esac
}

_cmdtarget "$@"
`, strings.Join(cmdList, "\n"), cases.String(), strings.Join(Shells, " "))
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	var completions []string

	// Add command completions
	for _, cmd := range commands {
		completions = append(completions, fmt.Sprintf("complete -c cmdtarget -f -n '__fish_use_subcommand' -a '%s' -d '%s'", cmd, getCommandDescription(cmd)))
	}

	// Add flag completions
	for _, cmd := range commands {
		flags, ok := commandFlags[cmd]
		if !ok {
			continue
		}
		completions = append(completions, fmt.Sprintf("# %s command flags", cmd))
		for _, f := range longFlags(flags) {
			line := fmt.Sprintf("complete -c cmdtarget -n '__fish_seen_subcommand_from %s' -l %s", cmd, strings.TrimPrefix(f, "--"))
			switch f {
			case "--yes":
				line += " -s y"
			case "--quiet":
				line += " -s q"
			case "--verbose":
				line += " -s v"
			case "--in", "--locale", "--divide":
				line += " -r"
			case "--unit":
				line += " -r -a 'absolute percentage'"
			}
			completions = append(completions, line+fmt.Sprintf(" -d '%s'", flagDescriptions[f]))
		}
	}

	completions = append(completions, "# completion command shells")
	completions = append(completions, fmt.Sprintf("complete -c cmdtarget -n '__fish_seen_subcommand_from completion' -f -a '%s'", strings.Join(Shells, " ")))

	return strings.Join(completions, "\n")
}

// GeneratePowerShellCompletion generates PowerShell completion script
func GeneratePowerShellCompletion() string {
	quote := func(items []string) string {
		quoted := make([]string, len(items))
		for i, item := range items {
			quoted[i] = fmt.Sprintf("'%s'", item)
		}
		return strings.Join(quoted, ", ")
	}

	var cases strings.Builder
	for _, cmd := range commands {
		flags, ok := commandFlags[cmd]
		if !ok {
			continue
		}
		fmt.Fprintf(&cases, `            '%s' {
                @(%s) |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
`, cmd, quote(flags))
	}

	return fmt.Sprintf(`# PowerShell completion for cmdtarget
Register-ArgumentCompleter -Native -CommandName cmdtarget -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @(%s)

    $line = $commandAst.ToString()
    $tokens = $line.Split(' ')

    if ($tokens.Count -eq 2) {
        # Complete command
        $commands | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
    elseif ($tokens.Count -gt 2) {
        $subcommand = $tokens[1]

        switch ($subcommand) {
%s            'completion' {
                @(%s) |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
        }
    }
}
`, quote(commands), cases.String(), quote(Shells))
}

// getCommandDescription returns a short description for a command
func getCommandDescription(cmd string) string {
	descriptions := map[string]string{
		"init":       "Write a starter command table",
		"list":       "List all commands with status",
		"status":     "Query one command",
		"exec":       "Execute a command",
		"unit":       "Parse a pixel or percentage value",
		"watch":      "Live status board",
		"completion": "Generate shell completion script",
		"help":       "Show help information",
	}

	if desc, ok := descriptions[cmd]; ok {
		return desc
	}
	return ""
}
