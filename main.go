// Package main implements the cmdtarget CLI for querying and executing
// commands on a table-driven command target.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"

	"github.com/EmundoT/cmdtarget/cmd"
	"github.com/EmundoT/cmdtarget/internal/config"
	"github.com/EmundoT/cmdtarget/internal/core"
	"github.com/EmundoT/cmdtarget/internal/tui"
	"github.com/EmundoT/cmdtarget/internal/types"
	"github.com/EmundoT/cmdtarget/internal/unitvalue"
	"github.com/EmundoT/cmdtarget/internal/version"
)

// parseCommonFlags extracts common non-interactive flags from args
// Returns: flags, remainingArgs
func parseCommonFlags(args []string) (core.NonInteractiveFlags, []string) {
	flags := core.NonInteractiveFlags{}
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--yes", "-y":
			flags.Yes = true
		case "--quiet", "-q":
			flags.Mode = core.OutputQuiet
		case "--json":
			flags.Mode = core.OutputJSON
		case "--verbose", "-v":
			core.Verbose = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return flags, remaining
}

// isTerminal reports whether stdout is attached to a terminal
func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newCallback picks the interactive TUI only for plain output on a terminal
func newCallback(flags core.NonInteractiveFlags) core.UICallback {
	if flags.Yes || flags.Mode != core.OutputNormal || !isTerminal() {
		return tui.NewNonInteractiveTUICallback(flags)
	}
	return tui.NewTUICallback()
}

// fail reports err and returns the exit code for it
func fail(callback core.UICallback, flags core.NonInteractiveFlags, title string, err error) int {
	if flags.Mode == core.OutputJSON {
		return core.EmitCLIError(err)
	}
	callback.ShowError(title, err.Error())
	return core.CLIExitCodeForError(err)
}

// execArgs are the parsed arguments of 'cmdtarget exec'
type execArgs struct {
	ref      string
	opt      types.ExecOption
	input    string
	hasInput bool
}

func parseExecArgs(args []string) (execArgs, error) {
	var parsed execArgs
	optSet := false
	setOpt := func(o types.ExecOption) error {
		if optSet && parsed.opt != o {
			return fmt.Errorf("--prompt, --no-prompt and --help-only are mutually exclusive")
		}
		parsed.opt, optSet = o, true
		return nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch arg := args[i]; {
		case arg == "--prompt":
			err = setOpt(types.ExecPromptUser)
		case arg == "--no-prompt":
			err = setOpt(types.ExecDontPromptUser)
		case arg == "--help-only":
			err = setOpt(types.ExecShowHelp)
		case arg == "--in":
			if i+1 >= len(args) {
				return execArgs{}, fmt.Errorf("--in requires a value")
			}
			i++
			parsed.input, parsed.hasInput = args[i], true
		case strings.HasPrefix(arg, "--in="):
			parsed.input, parsed.hasInput = strings.TrimPrefix(arg, "--in="), true
		case parsed.ref == "":
			parsed.ref = arg
		default:
			return execArgs{}, fmt.Errorf("unexpected argument '%s'", arg)
		}
		if err != nil {
			return execArgs{}, err
		}
	}

	if parsed.ref == "" {
		return execArgs{}, fmt.Errorf("usage: cmdtarget exec <ref> [--prompt|--no-prompt|--help-only] [--in <value>]")
	}
	return parsed, nil
}

// unitArgs are the parsed arguments of 'cmdtarget unit'
type unitArgs struct {
	text       string
	unit       unitvalue.Unit
	autodetect bool
	locale     string
	divisor    int
	hasDivide  bool
}

func parseUnitArgs(args []string) (unitArgs, error) {
	parsed := unitArgs{autodetect: true}
	hasText := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--unit", "--locale", "--divide":
			if i+1 >= len(args) {
				return unitArgs{}, fmt.Errorf("%s requires a value", arg)
			}
			i++
			value := args[i]
			switch arg {
			case "--unit":
				u, err := unitvalue.ParseUnit(value)
				if err != nil {
					return unitArgs{}, err
				}
				parsed.unit, parsed.autodetect = u, false
			case "--locale":
				parsed.locale = value
			case "--divide":
				n, err := strconv.Atoi(value)
				if err != nil {
					return unitArgs{}, fmt.Errorf("invalid divisor '%s'", value)
				}
				parsed.divisor, parsed.hasDivide = n, true
			}
		default:
			if hasText {
				return unitArgs{}, fmt.Errorf("unexpected argument '%s'", arg)
			}
			parsed.text, hasText = arg, true
		}
	}

	if !hasText {
		return unitArgs{}, fmt.Errorf("usage: cmdtarget unit <text> [--unit absolute|percentage] [--locale <tag>] [--divide <n>]")
	}
	return parsed, nil
}

// unitReport is the result of 'cmdtarget unit'
type unitReport struct {
	Text      string `json:"text"`
	Locale    string `json:"locale"`
	CanParse  bool   `json:"can_parse"`
	Defined   bool   `json:"defined"`
	Unit      string `json:"unit"`
	Magnitude int    `json:"magnitude"`
	Rendered  string `json:"rendered"`
	Localized string `json:"localized"`
	Pixels    *int   `json:"pixels,omitempty"`
}

func evaluateUnit(args unitArgs, defaultTag language.Tag) (unitReport, error) {
	tag := defaultTag
	if args.locale != "" {
		parsed, err := language.Parse(args.locale)
		if err != nil {
			return unitReport{}, fmt.Errorf("%w: invalid locale '%s'", core.ErrInvalidOption, args.locale)
		}
		tag = parsed
	}

	var v unitvalue.Value
	if args.autodetect {
		v = unitvalue.FromTextAutodetect(args.text, tag)
	} else {
		v = unitvalue.FromText(args.text, tag, args.unit)
	}

	if args.hasDivide {
		divided, err := v.Divide(args.divisor)
		if err != nil {
			return unitReport{}, fmt.Errorf("%w: %v", core.ErrInvalidOption, err)
		}
		v = divided
	}

	report := unitReport{
		Text:      args.text,
		Locale:    tag.String(),
		CanParse:  unitvalue.CanParse(args.text),
		Defined:   v.IsDefined(),
		Unit:      v.Unit().String(),
		Magnitude: v.Magnitude(),
		Rendered:  v.String(),
		Localized: v.Format(tag),
	}
	if px, ok := v.AsPixels(); ok {
		report.Pixels = &px
	}
	return report, nil
}

func main() {
	if len(os.Args) < 2 {
		tui.PrintHelp()
		os.Exit(0)
	}

	command := os.Args[1]

	// Handle help flags
	if command == "--help" || command == "-h" || command == "help" {
		tui.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if command == "--version" {
		fmt.Println(version.String())
		os.Exit(0)
	}

	settings, err := config.Load(".")
	if err != nil {
		tui.PrintError("Invalid Settings", err.Error())
		os.Exit(core.ExitInvalidArguments)
	}
	core.Verbose = settings.Verbose
	core.Locale = settings.Locale
	core.WatchDebounce = settings.WatchDebounce

	// Command-line flags override settings
	flags, args := parseCommonFlags(os.Args[2:])
	flags.Yes = flags.Yes || settings.Yes
	if flags.Mode == core.OutputNormal {
		flags.Mode = settings.OutputMode()
	}

	callback := newCallback(flags)
	manager := core.NewManager(settings.RootDir)
	manager.SetUICallback(callback)

	switch command {
	case "init":
		if err := manager.Init(); err != nil {
			os.Exit(fail(callback, flags, "Initialization Failed", err))
		}
		if flags.Mode == core.OutputJSON {
			core.EmitCLISuccess(map[string]interface{}{"path": manager.TablePath()})
			break
		}
		callback.ShowSuccess("Created " + manager.TablePath())

	case "list":
		os.Exit(runList(manager, callback, flags))

	case "status":
		if len(args) != 1 {
			os.Exit(fail(callback, flags, "Usage", fmt.Errorf("%w: usage: cmdtarget status <ref>", core.ErrInvalidOption)))
		}
		os.Exit(runStatus(manager, callback, flags, args[0]))

	case "exec":
		parsed, err := parseExecArgs(args)
		if err != nil {
			os.Exit(fail(callback, flags, "Usage", fmt.Errorf("%w: %v", core.ErrInvalidOption, err)))
		}
		os.Exit(runExec(manager, callback, flags, parsed))

	case "unit":
		parsed, err := parseUnitArgs(args)
		if err != nil {
			os.Exit(fail(callback, flags, "Usage", fmt.Errorf("%w: %v", core.ErrInvalidOption, err)))
		}
		report, err := evaluateUnit(parsed, settings.Locale)
		if err != nil {
			os.Exit(fail(callback, flags, "Unit Value", err))
		}
		printUnitReport(flags, report)

	case "watch":
		os.Exit(runWatch(manager, callback, flags))

	case "completion":
		if len(args) < 1 {
			tui.PrintError("Usage", "cmdtarget completion <shell>\nSupported shells: "+strings.Join(cmd.Shells, ", "))
			os.Exit(core.ExitInvalidArguments)
		}
		script, err := cmd.Generate(args[0])
		if err != nil {
			tui.PrintError("Invalid Shell", err.Error())
			os.Exit(core.ExitInvalidArguments)
		}
		fmt.Print(script)

	default:
		tui.PrintError("Unknown Command", fmt.Sprintf("'%s' is not a cmdtarget command. Run 'cmdtarget help'.", command))
		os.Exit(core.ExitInvalidArguments)
	}
}

// load reads the command table, explaining a missing one
func load(manager *core.Manager, callback core.UICallback, flags core.NonInteractiveFlags) int {
	err := manager.Load()
	if err == nil {
		return core.ExitSuccess
	}
	if errors.Is(err, os.ErrNotExist) {
		err = fmt.Errorf("%s not found: %w\nRun 'cmdtarget init' to create it", manager.TablePath(), os.ErrNotExist)
		return fail(callback, flags, "Not Initialized", err)
	}
	return fail(callback, flags, "Invalid Command Table", err)
}

func runList(manager *core.Manager, callback core.UICallback, flags core.NonInteractiveFlags) int {
	if code := load(manager, callback, flags); code != core.ExitSuccess {
		return code
	}
	statuses, err := manager.List()
	if err != nil {
		return fail(callback, flags, "List Failed", err)
	}

	switch flags.Mode {
	case core.OutputJSON:
		core.EmitCLISuccess(map[string]interface{}{"commands": statuses})
	case core.OutputQuiet:
		for _, s := range statuses {
			fmt.Printf("%s\t%s\n", s.Name, s.State)
		}
	default:
		tui.PrintStatusTable(statuses)
	}
	return core.ExitSuccess
}

func runStatus(manager *core.Manager, callback core.UICallback, flags core.NonInteractiveFlags, ref string) int {
	if code := load(manager, callback, flags); code != core.ExitSuccess {
		return code
	}
	status, err := manager.Status(ref)
	if err != nil {
		return fail(callback, flags, "Status Failed", err)
	}

	switch flags.Mode {
	case core.OutputJSON:
		core.EmitCLISuccess(status)
	case core.OutputQuiet:
		fmt.Println(status.State)
	default:
		tui.PrintStatusTable([]core.CommandStatus{status})
	}
	return core.ExitSuccess
}

func runExec(manager *core.Manager, callback core.UICallback, flags core.NonInteractiveFlags, args execArgs) int {
	if code := load(manager, callback, flags); code != core.ExitSuccess {
		return code
	}

	// Ask for a missing input value when a prompt can be shown
	_, _, def, err := manager.Resolve(args.ref)
	if err != nil {
		return fail(callback, flags, "Unknown Command", err)
	}
	needsInput := def != nil && (def.Shape == types.ShapeSetValue || def.Shape == types.ShapeInOut)
	if needsInput && !args.hasInput && args.opt != types.ExecShowHelp && callback.IsInteractive() {
		value, err := tui.AskValue(def.Name, def.Kind().String(), def.Value)
		if err != nil {
			return fail(callback, flags, "Cancelled", core.NewReceiverError(core.ECancelled, err.Error()))
		}
		args.input, args.hasInput = value, true
	}

	// In JSON mode whatever the command shows goes into the one response
	var collector *core.CollectingUICallback
	if flags.Mode == core.OutputJSON {
		collector = &core.CollectingUICallback{AutoApprove: flags.Yes}
		manager.SetUICallback(collector)
	}

	res, err := manager.Exec(args.ref, args.opt, args.input, args.hasInput)
	if err != nil {
		return fail(callback, flags, "Exec Failed", err)
	}

	switch {
	case flags.Mode == core.OutputJSON:
		res.Messages = collector.Messages()
		core.EmitCLISuccess(res)
	case args.opt == types.ExecShowHelp:
		// Help was shown by the target
	case flags.Mode == core.OutputQuiet:
		if res.Output != nil {
			fmt.Println(res.Output.String())
		}
	case res.Output != nil:
		callback.ShowSuccess(fmt.Sprintf("%s → %s", args.ref, res.Output.String()))
	default:
		callback.ShowSuccess("Executed " + args.ref)
	}
	return core.ExitSuccess
}

func printUnitReport(flags core.NonInteractiveFlags, report unitReport) {
	switch flags.Mode {
	case core.OutputJSON:
		core.EmitCLISuccess(report)
	case core.OutputQuiet:
		fmt.Println(report.Rendered)
	default:
		if !report.Defined {
			tui.PrintWarning("Undefined", fmt.Sprintf("'%s' is not a valid value (can parse: %t)", report.Text, report.CanParse))
			return
		}
		fmt.Printf("%s %s (%s, magnitude %d)\n", tui.StyleTitle("Value:"), report.Rendered, report.Unit, report.Magnitude)
		if report.Localized != report.Rendered {
			fmt.Printf("%s %s\n", tui.StyleTitle("Locale "+report.Locale+":"), report.Localized)
		}
		if report.Pixels != nil {
			fmt.Printf("%s %d\n", tui.StyleTitle("Pixels:"), *report.Pixels)
		}
	}
}

func runWatch(manager *core.Manager, callback core.UICallback, flags core.NonInteractiveFlags) int {
	if code := load(manager, callback, flags); code != core.ExitSuccess {
		return code
	}
	statuses, err := manager.List()
	if err != nil {
		return fail(callback, flags, "List Failed", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var view tui.StatusView
	switch {
	case flags.Mode != core.OutputNormal:
		view = &tui.NoOpStatusView{}
	case callback.IsInteractive():
		// The board shows reload results itself
		manager.SetUICallback(&core.SilentUICallback{})
		view = tui.NewBubbleteaStatusBoard("cmdtarget watch", statuses, stop)
	default:
		view = tui.NewTextStatusView(statuses)
	}

	err = manager.Watch(ctx, view.Update)
	view.Stop()
	if err != nil {
		return fail(callback, flags, "Watch Failed", err)
	}
	return core.ExitSuccess
}
