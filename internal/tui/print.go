// Package tui provides terminal user interface components and callbacks for cmdtarget.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/EmundoT/cmdtarget/internal/core"
	"github.com/EmundoT/cmdtarget/internal/unitvalue"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleCard    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("238"))
)

// PrintError displays an error message with styling to the terminal.
func PrintError(title, msg string) { fmt.Println(styleErr.Render("✖ " + title)); fmt.Println(msg) }

// PrintSuccess displays a success message with styling to the terminal.
func PrintSuccess(msg string) { fmt.Println(styleSuccess.Render("✔ " + msg)) }

// PrintInfo displays an informational message to the terminal.
func PrintInfo(msg string) {
	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(msg))
}

// PrintWarning displays a warning message with styling to the terminal.
func PrintWarning(title, msg string) { fmt.Println(styleWarn.Render("! " + title)); fmt.Println(msg) }

// StyleTitle applies title styling to the given text string.
func StyleTitle(text string) string { return styleTitle.Render(text) }

// PrintCard displays a titled message in a bordered card.
func PrintCard(title, msg string) {
	fmt.Println(styleCard.Render(styleTitle.Render(title) + "\n" + msg))
}

// stateStyle colours a command state label
func stateStyle(state string) lipgloss.Style {
	switch state {
	case "enabled", "on":
		return styleSuccess
	case "disabled":
		return styleWarn
	case "not supported", "unknown group", "error":
		return styleErr
	default:
		return styleDim
	}
}

// FormatStatusTable renders command statuses as aligned rows.
// Styling is applied after padding so colour codes do not break alignment.
func FormatStatusTable(statuses []core.CommandStatus) string {
	if len(statuses) == 0 {
		return styleDim.Render("No commands in " + core.TableName)
	}

	nameW, refW, stateW := len("NAME"), len("REF"), len("STATE")
	refs := make([]string, len(statuses))
	for i, s := range statuses {
		refs[i] = s.ID.String()
		if s.Group != "standard" {
			refs[i] = s.Group + ":" + s.ID.String()
		}
		nameW = max(nameW, len(s.Name))
		refW = max(refW, len(refs[i]))
		stateW = max(stateW, len(s.State))
	}

	var b strings.Builder
	header := fmt.Sprintf("%-*s  %-*s  %-*s  %s", nameW, "NAME", refW, "REF", stateW, "STATE", "VALUE")
	b.WriteString(styleTitle.Render(header))
	for i, s := range statuses {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-*s  %-*s  ", nameW, s.Name, refW, refs[i]))
		b.WriteString(stateStyle(s.State).Render(fmt.Sprintf("%-*s", stateW, s.State)))
		b.WriteString("  ")
		switch {
		case s.Error != "":
			b.WriteString(styleDim.Render(s.Error))
		default:
			b.WriteString(s.Value)
		}
	}
	return b.String()
}

// PrintStatusTable displays command statuses.
func PrintStatusTable(statuses []core.CommandStatus) {
	fmt.Println(FormatStatusTable(statuses))
}

// AskValue prompts for a command input value. Unit inputs are validated
// before the form is accepted.
func AskValue(title, kind, current string) (string, error) {
	value := current
	input := huh.NewInput().
		Title(title).
		Description(fmt.Sprintf("Value kind: %s", kind)).
		Value(&value)
	if kind == "unit" {
		input = input.Placeholder("e.g. 640 or 50%").Validate(func(s string) error {
			if !unitvalue.FromTextAutodetect(s, core.Locale).IsDefined() {
				return fmt.Errorf("enter pixels (640) or a percentage up to 100 (50%%)")
			}
			return nil
		})
	}
	if err := input.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// PrintHelp displays usage information for cmdtarget commands.
func PrintHelp() {
	fmt.Println(styleTitle.Render("cmdtarget"))
	fmt.Println("Query and execute commands on a table-driven command target")
	fmt.Println("\nCommands:")
	fmt.Println("  init                Write a starter " + core.TableName)
	fmt.Println("  list                Show every command with its status")
	fmt.Println("  status <ref>        Query the status of one command")
	fmt.Println("  exec <ref> [options]")
	fmt.Println("                      Execute a command")
	fmt.Println("    --prompt          Ask for confirmation before running")
	fmt.Println("    --no-prompt       Never ask for confirmation")
	fmt.Println("    --help-only       Show the command's help without running it")
	fmt.Println("    --in <value>      Input value (set-value and in-out commands)")
	fmt.Println("  unit <text> [options]")
	fmt.Println("                      Parse and render a pixel or percentage value")
	fmt.Println("    --unit <unit>     absolute or percentage (default: autodetect)")
	fmt.Println("    --locale <tag>    BCP 47 locale for digits and sign (e.g. de, ar-EG)")
	fmt.Println("    --divide <n>      Divide the parsed value by n")
	fmt.Println("  watch               Live status board, reloads on table changes")
	fmt.Println("  completion <shell>  Generate shell completion script (bash/zsh/fish)")
	fmt.Println("\nGlobal options:")
	fmt.Println("  --yes, -y           Auto-approve prompts")
	fmt.Println("  --quiet, -q         Minimal output")
	fmt.Println("  --json              JSON output")
	fmt.Println("  --verbose, -v       Log dispatch calls")
	fmt.Println("\nA <ref> is a command name or [group:]id, e.g. 'bold', '41' or")
	fmt.Println("'" + core.SampleGroup.String() + ":2'.")
	fmt.Println("\nExamples:")
	fmt.Println("  cmdtarget init")
	fmt.Println("  cmdtarget list --json")
	fmt.Println("  cmdtarget status show-message")
	fmt.Println("  cmdtarget exec bold")
	fmt.Println("  cmdtarget exec table-width --in 50%")
	fmt.Println("  cmdtarget exec show-script-error --help-only")
	fmt.Println("  cmdtarget unit 42% --divide 4")
	fmt.Println("  cmdtarget unit ١٢٣ --locale ar-EG")
	fmt.Println("  cmdtarget completion bash > /etc/bash_completion.d/cmdtarget")
}
