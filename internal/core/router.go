package core

import (
	"bytes"
	"sort"
	"sync"

	"github.com/EmundoT/cmdtarget/internal/types"
)

// Router is a CommandTarget that forwards each call to the target registered
// for the call's command group. Registration may happen while calls are in
// flight (table reloads).
type Router struct {
	mu      sync.RWMutex
	targets map[types.GroupID]CommandTarget
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{targets: make(map[types.GroupID]CommandTarget)}
}

// Register routes group to target, replacing any earlier registration
func (r *Router) Register(group types.GroupID, target CommandTarget) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets[group] = target
}

// Unregister removes the route for group
func (r *Router) Unregister(group types.GroupID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.targets, group)
}

// Lookup returns the target registered for group
func (r *Router) Lookup(group types.GroupID) (CommandTarget, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.targets[group]
	return t, ok
}

// Groups returns the registered groups, standard group first
func (r *Router) Groups() []types.GroupID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	groups := make([]types.GroupID, 0, len(r.targets))
	for g := range r.targets {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return bytes.Compare(groups[i][:], groups[j][:]) < 0
	})
	return groups
}

// QueryStatus implements CommandTarget
func (r *Router) QueryStatus(group types.GroupID, cmd *types.CommandRecord) error {
	t, ok := r.Lookup(group)
	if !ok {
		return ErrUnknownGroup
	}
	return t.QueryStatus(group, cmd)
}

// Exec implements CommandTarget
func (r *Router) Exec(group types.GroupID, id types.CommandID, opt types.ExecOption, in, out *types.Variant) error {
	t, ok := r.Lookup(group)
	if !ok {
		return ErrUnknownGroup
	}
	return t.Exec(group, id, opt, in, out)
}
