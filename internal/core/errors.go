package core

import (
	"errors"
	"fmt"

	"github.com/EmundoT/cmdtarget/internal/types"
)

// Status codes exchanged with the host. Receivers report outcomes as one of
// these codes; HResult and ErrorFromHResult convert between codes and errors.
const (
	SOk             int32 = 0           // 0x00000000
	ENotImpl        int32 = -2147467263 // 0x80004001
	EFail           int32 = -2147467259 // 0x80004005
	EInvalidArg     int32 = -2147024809 // 0x80070057
	ECancelled      int32 = -2147023673 // 0x800704C7
	CmdNotSupported int32 = -2147221248 // 0x80040100 OLECMDERR_E_NOTSUPPORTED
	CmdDisabled     int32 = -2147221247 // 0x80040101 OLECMDERR_E_DISABLED
	CmdUnknownGroup int32 = -2147221244 // 0x80040104 OLECMDERR_E_UNKNOWNGROUP
)

// Sentinel errors for dispatch outcomes.
// These can be used with errors.Is() for error type checking.
var (
	// ErrNotSupported indicates the receiver does not recognise the command
	ErrNotSupported = errors.New("command not supported")

	// ErrDisabled indicates the command is recognised but cannot run now
	ErrDisabled = errors.New("command disabled")

	// ErrUnknownGroup indicates no receiver handles the command group
	ErrUnknownGroup = errors.New("unknown command group")

	// ErrInvalidOption indicates an ExecOption outside the defined values
	ErrInvalidOption = errors.New("invalid exec option")

	// ErrCommandRefNotFound indicates a CLI command reference matched nothing in the table
	ErrCommandRefNotFound = errors.New("command reference not found")
)

// ReceiverError is an opaque receiver-defined failure, propagated verbatim.
type ReceiverError struct {
	Code    int32
	Message string
}

// NewReceiverError creates a ReceiverError with a code and optional message.
func NewReceiverError(code int32, message string) *ReceiverError {
	return &ReceiverError{Code: code, Message: message}
}

func (e *ReceiverError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("receiver failure 0x%08X", uint32(e.Code))
	}
	return fmt.Sprintf("receiver failure 0x%08X: %s", uint32(e.Code), e.Message)
}

// CommandError attaches the command a dispatch failure belongs to.
// Unwrap exposes the underlying sentinel or ReceiverError.
type CommandError struct {
	Group types.GroupID
	ID    types.CommandID
	Op    string // "query" or "exec"
	Err   error
}

func (e *CommandError) Error() string {
	var fix string
	switch {
	case errors.Is(e.Err, ErrNotSupported):
		fix = "Run 'cmdtarget list' to see the commands the target supports"
	case errors.Is(e.Err, ErrDisabled):
		fix = "Enable the command in " + TableName + " or query its status before executing"
	case errors.Is(e.Err, ErrUnknownGroup):
		fix = "Check the group GUID in the command reference"
	default:
		fix = "See the receiver's documentation for this status code"
	}
	return fmt.Sprintf("Error: %s of command %s in group %s failed: %v\nContext: status code 0x%08X\nFix: %s",
		e.Op, e.ID, e.Group, e.Err, uint32(HResult(e.Err)), fix)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// wrapCommandError returns nil for nil errors so callers can wrap unconditionally.
func wrapCommandError(op string, group types.GroupID, id types.CommandID, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Group: group, ID: id, Op: op, Err: err}
}

// IsNotSupported returns true if err is or wraps ErrNotSupported
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}

// IsDisabled returns true if err is or wraps ErrDisabled
func IsDisabled(err error) bool {
	return errors.Is(err, ErrDisabled)
}

// IsUnknownGroup returns true if err is or wraps ErrUnknownGroup
func IsUnknownGroup(err error) bool {
	return errors.Is(err, ErrUnknownGroup)
}

// IsReceiverFailure returns true if err is or wraps a ReceiverError
func IsReceiverFailure(err error) bool {
	var re *ReceiverError
	return errors.As(err, &re)
}

// HResult maps an error to the status code a host would see.
// Errors outside the dispatch taxonomy map to EFail.
func HResult(err error) int32 {
	var re *ReceiverError
	switch {
	case err == nil:
		return SOk
	case errors.Is(err, ErrNotSupported):
		return CmdNotSupported
	case errors.Is(err, ErrDisabled):
		return CmdDisabled
	case errors.Is(err, ErrUnknownGroup):
		return CmdUnknownGroup
	case errors.Is(err, ErrInvalidOption):
		return EInvalidArg
	case errors.As(err, &re):
		return re.Code
	default:
		return EFail
	}
}

// ErrorFromHResult is the inverse of HResult for codes returned by a host.
// Success codes (non-negative) yield nil.
func ErrorFromHResult(code int32) error {
	switch {
	case code >= 0:
		return nil
	case code == CmdNotSupported:
		return ErrNotSupported
	case code == CmdDisabled:
		return ErrDisabled
	case code == CmdUnknownGroup:
		return ErrUnknownGroup
	default:
		return NewReceiverError(code, "")
	}
}
