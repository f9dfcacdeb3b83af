package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/EmundoT/cmdtarget/internal/types"
)

// ErrTableExists indicates 'init' would overwrite an existing table
var ErrTableExists = errors.New(TableName + " already exists")

// CommandStatus is one row of 'cmdtarget list'
type CommandStatus struct {
	Name  string            `json:"name"`
	Group string            `json:"group"`
	ID    types.CommandID   `json:"id"`
	Shape string            `json:"shape"`
	Flags types.StatusFlags `json:"flags"`
	State string            `json:"state"`
	Value string            `json:"value,omitempty"`
	Error string            `json:"error,omitempty"`

	Err error `json:"-"`
}

// ExecResult is the outcome of Manager.Exec
type ExecResult struct {
	Ref      string         `json:"ref"`
	Option   string         `json:"option"`
	Output   *types.Variant `json:"output,omitempty"`
	Messages []ExecMessage  `json:"messages,omitempty"`
}

// Manager provides the main API for cmdtarget operations.
// It wires the table store, the table target, the group router and the
// dispatcher together.
type Manager struct {
	RootDir    string
	store      *FileTableStore
	target     *TableTarget
	router     *Router
	dispatcher *Dispatcher
	ui         UICallback
}

// NewManager creates a Manager for the table in rootDir
func NewManager(rootDir string) *Manager {
	router := NewRouter()
	return &Manager{
		RootDir:    rootDir,
		store:      NewFileTableStore(rootDir),
		router:     router,
		dispatcher: NewDispatcher(router),
		ui:         &SilentUICallback{},
	}
}

// SetUICallback sets the UI callback used by the table target and by
// watchers started afterwards. A running watcher keeps its callback.
func (m *Manager) SetUICallback(ui UICallback) {
	m.ui = ui
	if m.target != nil {
		m.target.SetUICallback(ui)
	}
}

// TablePath returns the path of the command table
func (m *Manager) TablePath() string {
	return m.store.Path()
}

// Init writes the starter table
func (m *Manager) Init() error {
	if m.store.Exists() {
		return ErrTableExists
	}
	return m.store.Save(DefaultTable())
}

// Load reads the table and routes its groups to a fresh table target
func (m *Manager) Load() error {
	table, err := m.store.Load()
	if err != nil {
		return err
	}
	target, err := NewTableTarget(table, m.ui)
	if err != nil {
		return err
	}
	m.target = target
	m.routeGroups(table)
	return nil
}

// Target returns the loaded table target (nil before Load)
func (m *Manager) Target() *TableTarget {
	return m.target
}

// Dispatcher returns the dispatcher all Manager calls go through
func (m *Manager) Dispatcher() *Dispatcher {
	return m.dispatcher
}

func (m *Manager) routeGroups(table types.CommandTable) {
	seen := make(map[types.GroupID]bool)
	for _, d := range table.Commands {
		seen[d.Group] = true
	}
	for _, g := range m.router.Groups() {
		if !seen[g] {
			m.router.Unregister(g)
		}
	}
	for g := range seen {
		m.router.Register(g, m.target)
	}
}

// Resolve turns a command reference into a group and ID. A reference is a
// command name from the table or "[group:]id". The definition is nil when the
// ID is not declared in the table.
func (m *Manager) Resolve(ref string) (types.GroupID, types.CommandID, *types.CommandDef, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return types.StandardGroup, 0, nil, fmt.Errorf("%w: empty reference", ErrCommandRefNotFound)
	}

	var table types.CommandTable
	if m.target != nil {
		table = m.target.Table()
	}
	if def, ok := table.FindByName(ref); ok {
		return def.Group, def.ID, def, nil
	}

	group := types.StandardGroup
	idPart := ref
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		g, err := types.ParseGroupID(ref[:i])
		if err != nil {
			return types.StandardGroup, 0, nil, fmt.Errorf("%w: %v", ErrCommandRefNotFound, err)
		}
		group = g
		idPart = ref[i+1:]
	}

	id, err := types.ParseCommandID(idPart)
	if err != nil {
		return types.StandardGroup, 0, nil, fmt.Errorf("%w: '%s' is neither a command name nor an id", ErrCommandRefNotFound, ref)
	}

	def, _ := table.Find(group, id)
	return group, id, def, nil
}

// List queries the status of every command in the table, in table order
func (m *Manager) List() ([]CommandStatus, error) {
	if m.target == nil {
		return nil, fmt.Errorf("command table not loaded")
	}
	table := m.target.Table()

	// Group IDs by command group so each query stays a single-record call
	byGroup := make(map[types.GroupID][]types.CommandID)
	var groups []types.GroupID
	for _, d := range table.Commands {
		if _, ok := byGroup[d.Group]; !ok {
			groups = append(groups, d.Group)
		}
		byGroup[d.Group] = append(byGroup[d.Group], d.ID)
	}

	results := make(map[string]StatusResult)
	for _, g := range groups {
		for _, r := range m.dispatcher.StatusMany(g, byGroup[g]) {
			results[g.String()+"/"+r.Record.ID.String()] = r
		}
	}

	out := make([]CommandStatus, 0, len(table.Commands))
	for i := range table.Commands {
		d := &table.Commands[i]
		r := results[d.Group.String()+"/"+d.ID.String()]
		out = append(out, newCommandStatus(d, d.Group, d.ID, r.Record.Flags, r.Err))
	}
	return out, nil
}

// Groups returns the routed command groups
func (m *Manager) Groups() []types.GroupID {
	return m.router.Groups()
}

// Status queries a single command by reference
func (m *Manager) Status(ref string) (CommandStatus, error) {
	group, id, def, err := m.Resolve(ref)
	if err != nil {
		return CommandStatus{}, err
	}
	rec, err := m.dispatcher.Status(group, id)
	return newCommandStatus(def, group, id, rec.Flags, err), err
}

// Exec executes a command by reference. input is parsed according to the
// command's value kind; hasInput false passes no input slot.
func (m *Manager) Exec(ref string, opt types.ExecOption, input string, hasInput bool) (ExecResult, error) {
	group, id, def, err := m.Resolve(ref)
	if err != nil {
		return ExecResult{}, err
	}

	var in *types.Variant
	if hasInput {
		v := types.String(input)
		if def != nil && def.Kind() != types.KindEmpty && def.Kind() != types.KindUnit {
			parsed, perr := types.ParseVariant(def.Kind(), input)
			if perr != nil {
				return ExecResult{}, fmt.Errorf("input for '%s': %w", def.Name, perr)
			}
			v = parsed
		}
		in = &v
	}

	// Set-value commands take no output slot; every other shape gets one
	var out *types.Variant
	if def == nil || def.Shape != types.ShapeSetValue {
		out = &types.Variant{}
	}

	res := ExecResult{Ref: ref, Option: opt.String()}
	if err := m.dispatcher.Exec(group, id, opt, in, out); err != nil {
		return res, err
	}
	if out != nil && !out.IsEmpty() {
		res.Output = out
	}
	return res, nil
}

// Watch reloads the table on every change until ctx is cancelled.
// onReload receives the fresh status list after each successful reload.
func (m *Manager) Watch(ctx context.Context, onReload func([]CommandStatus, error)) error {
	if m.target == nil {
		return fmt.Errorf("command table not loaded")
	}
	w := NewTableWatcher(m.store, m.target, m.ui, func(table types.CommandTable, err error) {
		if err == nil {
			m.routeGroups(table)
		}
		if onReload == nil {
			return
		}
		if err != nil {
			onReload(nil, err)
			return
		}
		onReload(m.List())
	})
	return w.Run(ctx)
}

func newCommandStatus(def *types.CommandDef, group types.GroupID, id types.CommandID, flags types.StatusFlags, err error) CommandStatus {
	cs := CommandStatus{
		Group: group.String(),
		ID:    id,
		Flags: flags,
		State: stateLabel(flags, err),
		Err:   err,
	}
	if err != nil {
		cs.Error = err.Error()
		var ce *CommandError
		if errors.As(err, &ce) {
			cs.Error = ce.Err.Error()
		}
	}
	if def != nil {
		cs.Name = def.Name
		cs.Shape = def.Shape.String()
		cs.Value = def.Value
	}
	return cs
}

func stateLabel(flags types.StatusFlags, err error) string {
	switch {
	case IsNotSupported(err):
		return "not supported"
	case IsUnknownGroup(err):
		return "unknown group"
	case err != nil:
		return "error"
	case !flags.IsEnabled():
		return "disabled"
	case flags.IsLatched():
		return "on"
	default:
		return "enabled"
	}
}
