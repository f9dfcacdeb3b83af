package core

import "github.com/EmundoT/cmdtarget/internal/types"

// CommandTarget is the receiving side of the command dispatch protocol:
// a host object that reports command state and executes commands.
//
// Each call is an independent request/response. Implementations need no
// locking of their own for the protocol; callers serialise access to a
// single target.
//
//go:generate mockgen -source=target.go -destination=target_mock_test.go -package=core
type CommandTarget interface {
	// QueryStatus fills cmd.Flags for the single command cmd.ID of group.
	// An unknown command returns ErrNotSupported rather than zero flags.
	// There is no command-text out-parameter; callers never request one.
	QueryStatus(group types.GroupID, cmd *types.CommandRecord) error

	// Exec runs command id of group. in and out are optional slots: nil is
	// absent, and which slots a command expects is given by its CallShape.
	// With types.ExecShowHelp the target shows help and must not run the
	// command's action.
	Exec(group types.GroupID, id types.CommandID, opt types.ExecOption, in, out *types.Variant) error
}

// CommandTargetFunc adapts a pair of functions to CommandTarget.
// A nil function reports ErrNotSupported.
type CommandTargetFunc struct {
	Query func(group types.GroupID, cmd *types.CommandRecord) error
	Run   func(group types.GroupID, id types.CommandID, opt types.ExecOption, in, out *types.Variant) error
}

// QueryStatus implements CommandTarget
func (f CommandTargetFunc) QueryStatus(group types.GroupID, cmd *types.CommandRecord) error {
	if f.Query == nil {
		return ErrNotSupported
	}
	return f.Query(group, cmd)
}

// Exec implements CommandTarget
func (f CommandTargetFunc) Exec(group types.GroupID, id types.CommandID, opt types.ExecOption, in, out *types.Variant) error {
	if f.Run == nil {
		return ErrNotSupported
	}
	return f.Run(group, id, opt, in, out)
}
