package core

import (
	"log"

	"github.com/EmundoT/cmdtarget/internal/types"
)

// StatusResult is the outcome of one status query issued by StatusMany
type StatusResult struct {
	Record types.CommandRecord
	Err    error
}

// Dispatcher is the caller side of the protocol. It issues exactly one call
// to its target per request and hands back whatever the target reported:
// no retries, no status caching.
type Dispatcher struct {
	target CommandTarget
}

// NewDispatcher creates a dispatcher for target
func NewDispatcher(target CommandTarget) *Dispatcher {
	return &Dispatcher{target: target}
}

// Status queries one command and returns the filled record.
func (d *Dispatcher) Status(group types.GroupID, id types.CommandID) (types.CommandRecord, error) {
	cmd := types.CommandRecord{ID: id}
	err := d.target.QueryStatus(group, &cmd)
	if Verbose {
		log.Printf("[dispatch] query group=%s id=%s flags=%s err=%v", group, id, cmd.Flags, err)
	}
	if err != nil {
		return types.CommandRecord{ID: id}, wrapCommandError("query", group, id, err)
	}
	return cmd, nil
}

// StatusMany queries each ID in turn, one record per call.
func (d *Dispatcher) StatusMany(group types.GroupID, ids []types.CommandID) []StatusResult {
	results := make([]StatusResult, 0, len(ids))
	for _, id := range ids {
		rec, err := d.Status(group, id)
		results = append(results, StatusResult{Record: rec, Err: err})
	}
	return results
}

// Exec executes one command. in and out follow the command's CallShape.
func (d *Dispatcher) Exec(group types.GroupID, id types.CommandID, opt types.ExecOption, in, out *types.Variant) error {
	if !opt.Valid() {
		return wrapCommandError("exec", group, id, ErrInvalidOption)
	}
	err := d.target.Exec(group, id, opt, in, out)
	if Verbose {
		log.Printf("[dispatch] exec group=%s id=%s opt=%s in=%v out=%v err=%v", group, id, opt, in != nil, out != nil, err)
	}
	return wrapCommandError("exec", group, id, err)
}

// GetValue executes a get-value command and returns the value it produced.
func (d *Dispatcher) GetValue(group types.GroupID, id types.CommandID, opt types.ExecOption) (types.Variant, error) {
	var out types.Variant
	if err := d.Exec(group, id, opt, nil, &out); err != nil {
		return types.Variant{}, err
	}
	return out, nil
}

// SetValue executes a set-value command with v.
func (d *Dispatcher) SetValue(group types.GroupID, id types.CommandID, opt types.ExecOption, v types.Variant) error {
	return d.Exec(group, id, opt, &v, nil)
}
