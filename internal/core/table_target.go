package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/EmundoT/cmdtarget/internal/types"
	"github.com/EmundoT/cmdtarget/internal/unitvalue"
)

// Handler is a Go action bound to a table command. It replaces the built-in
// action and runs after the prompt decision.
type Handler func(opt types.ExecOption, in, out *types.Variant) error

type commandKey struct {
	group types.GroupID
	id    types.CommandID
}

// TableTarget is a CommandTarget whose commands are declared in a
// types.CommandTable. Toggle state and command values live in the table and
// change as commands execute.
//
// The mutex protects against hot reloads from the table watcher; it is not
// part of the protocol.
type TableTarget struct {
	mu       sync.RWMutex
	table    types.CommandTable
	handlers map[commandKey]Handler
	ui       UICallback
}

// NewTableTarget creates a target serving table. The table must be valid.
func NewTableTarget(table types.CommandTable, ui UICallback) (*TableTarget, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command table: %w", err)
	}
	if ui == nil {
		ui = &SilentUICallback{}
	}
	return &TableTarget{
		table:    table.Clone(),
		handlers: make(map[commandKey]Handler),
		ui:       ui,
	}, nil
}

// Handle binds a Go action to a command. Handlers survive Replace.
func (t *TableTarget) Handle(group types.GroupID, id types.CommandID, h Handler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers[commandKey{group, id}] = h
}

// Table returns a copy of the current table, including runtime state.
func (t *TableTarget) Table() types.CommandTable {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Clone()
}

// Replace swaps in a new table, discarding runtime state.
func (t *TableTarget) Replace(table types.CommandTable) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("invalid command table: %w", err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table = table.Clone()
	return nil
}

// SetUICallback replaces the callback used for prompts, help and messages.
// Calls already in flight keep the callback they started with.
func (t *TableTarget) SetUICallback(ui UICallback) {
	if ui == nil {
		ui = &SilentUICallback{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ui = ui
}

// SetEnabled enables or disables a command.
func (t *TableTarget) SetEnabled(group types.GroupID, id types.CommandID, enabled bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	def, ok := t.table.Find(group, id)
	if !ok {
		return ErrNotSupported
	}
	def.Enabled = &enabled
	return nil
}

// QueryStatus implements CommandTarget
func (t *TableTarget) QueryStatus(group types.GroupID, cmd *types.CommandRecord) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	def, ok := t.table.Find(group, cmd.ID)
	if !ok {
		return ErrNotSupported
	}

	flags := types.StatusSupported
	if def.IsEnabled() {
		flags |= types.StatusEnabled
	}
	if def.Toggle && def.Latched {
		flags |= types.StatusLatched
	}
	cmd.Flags = flags
	return nil
}

// Exec implements CommandTarget
func (t *TableTarget) Exec(group types.GroupID, id types.CommandID, opt types.ExecOption, in, out *types.Variant) error {
	t.mu.RLock()
	def, ok := t.table.Find(group, id)
	if !ok {
		t.mu.RUnlock()
		return ErrNotSupported
	}
	snapshot := *def
	handler := t.handlers[commandKey{group, id}]
	ui := t.ui
	t.mu.RUnlock()

	if !snapshot.IsEnabled() {
		return ErrDisabled
	}

	// Help carries no action parameters, so the shape does not apply
	if opt == types.ExecShowHelp {
		help := snapshot.Help
		if help == "" {
			help = "No help available."
		}
		ui.ShowHelp(snapshot.Name, help)
		return nil
	}

	if !snapshot.Shape.Accepts(in, out) {
		return NewReceiverError(EInvalidArg,
			fmt.Sprintf("command '%s' expects %s parameters", snapshot.Name, snapshot.Shape))
	}

	if t.shouldPrompt(opt, &snapshot) && !confirm(ui, &snapshot) {
		return NewReceiverError(ECancelled, "cancelled by user")
	}

	if Verbose {
		log.Printf("[table] exec %s (%s) opt=%s", snapshot.Name, snapshot.Ref(), opt)
	}

	if handler != nil {
		return handler(opt, in, out)
	}

	if snapshot.Shape == types.ShapeRaw && !snapshot.Toggle {
		display(ui, group, &snapshot, in)
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// The table may have been reloaded while prompting
	live, ok := t.table.Find(group, id)
	if !ok {
		return ErrNotSupported
	}
	return applyBuiltin(live, in, out)
}

func (t *TableTarget) shouldPrompt(opt types.ExecOption, def *types.CommandDef) bool {
	switch opt {
	case types.ExecPromptUser:
		return true
	case types.ExecDefault:
		return def.Prompt
	default:
		return false
	}
}

func confirm(ui UICallback, def *types.CommandDef) bool {
	if ui.IsAutoApprove() {
		return true
	}
	msg := def.Help
	if msg == "" {
		msg = fmt.Sprintf("Run command %s?", def.Ref())
	}
	return ui.AskConfirmation("Run '"+def.Name+"'?", msg)
}

// display runs the built-in action of a message-style command. A string
// input replaces the configured message.
func display(ui UICallback, group types.GroupID, def *types.CommandDef, in *types.Variant) {
	text := def.Message
	if in != nil {
		if s := in.String(); s != "" {
			text = s
		}
	}
	if group.IsStandard() && def.ID == types.CmdShowScriptError {
		ui.ShowError("Script Error", text)
		return
	}
	ui.ShowMessage(def.Name, text)
}

// applyBuiltin runs the table-defined action on the live definition.
func applyBuiltin(def *types.CommandDef, in, out *types.Variant) error {
	if def.Toggle {
		def.Latched = !def.Latched
		if out != nil {
			*out = types.Bool(def.Latched)
		}
		return nil
	}

	current, err := storedValue(def)
	if err != nil {
		return NewReceiverError(EFail, err.Error())
	}

	switch def.Shape {
	case types.ShapeGetValue:
		*out = current
	case types.ShapeSetValue, types.ShapeInOut:
		next, err := coerce(def.Kind(), *in)
		if err != nil {
			return NewReceiverError(EInvalidArg, fmt.Sprintf("command '%s': %v", def.Name, err))
		}
		if def.ValueKind == "" {
			def.ValueKind = next.Kind().String()
		}
		def.Value = next.String()
		if out != nil {
			*out = current
		}
	}
	return nil
}

func storedValue(def *types.CommandDef) (types.Variant, error) {
	if def.Value == "" && def.Kind() != types.KindString {
		return types.Empty(), nil
	}
	return types.ParseVariant(def.Kind(), def.Value)
}

// coerce converts v to kind. Strings are parsed; pixels may be given as ints.
func coerce(kind types.Kind, v types.Variant) (types.Variant, error) {
	if kind == types.KindEmpty || v.Kind() == kind {
		return v, nil
	}

	if s, ok := v.AsString(); ok {
		if kind == types.KindUnit {
			u := unitvalue.FromTextAutodetect(s, Locale)
			if !u.IsDefined() {
				return types.Variant{}, fmt.Errorf("'%s' is not a pixel or percentage value", s)
			}
			return types.Unit(u), nil
		}
		return types.ParseVariant(kind, s)
	}

	if n, ok := v.AsInt(); ok && kind == types.KindUnit {
		u, err := unitvalue.FromPixels(int(n))
		if err != nil {
			return types.Variant{}, err
		}
		return types.Unit(u), nil
	}

	return types.Variant{}, fmt.Errorf("expected a %s value, got %s", kind, v.Kind())
}
