package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// CLIResponse is the structured JSON output of every --json command.
//
// Schema:
//
//	{
//	  "success": true|false,
//	  "data": { ... },          // Command-specific payload (omitted on error)
//	  "error": {                 // Present only on failure
//	    "code": "NOT_SUPPORTED",
//	    "message": "Human-readable description",
//	    "hresult": "0x80040100"
//	  }
//	}
type CLIResponse struct {
	Success bool            `json:"success"`
	Data    interface{}     `json:"data,omitempty"`
	Error   *CLIErrorDetail `json:"error,omitempty"`
}

// CLIErrorDetail contains machine-readable error code and human-readable message.
type CLIErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	HResult string `json:"hresult,omitempty"`
}

// CLI exit codes.
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitNotSupported     = 2
	ExitInvalidArguments = 3
	ExitDisabled         = 4
)

// CLI error codes for structured JSON error responses.
const (
	ErrCodeNotSupported     = "NOT_SUPPORTED"
	ErrCodeDisabled         = "DISABLED"
	ErrCodeUnknownGroup     = "UNKNOWN_GROUP"
	ErrCodeInvalidArguments = "INVALID_ARGUMENTS"
	ErrCodeRefNotFound      = "REF_NOT_FOUND"
	ErrCodeNotInitialized   = "NOT_INITIALIZED"
	ErrCodeCancelled        = "CANCELLED"
	ErrCodeReceiverFailure  = "RECEIVER_FAILURE"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// cliOut is where CLI responses are written; tests replace it.
// nil means the current os.Stdout.
var cliOut io.Writer

func cliWriter() io.Writer {
	if cliOut != nil {
		return cliOut
	}
	return os.Stdout
}

// EmitCLISuccess writes a successful CLIResponse as JSON.
func EmitCLISuccess(data interface{}) {
	resp := CLIResponse{Success: true, Data: data}
	enc := json.NewEncoder(cliWriter())
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) //nolint:errcheck
}

// EmitCLIError writes an error CLIResponse for err as JSON.
// Returns the exit code for the caller to use with os.Exit.
func EmitCLIError(err error) int {
	detail := &CLIErrorDetail{Code: CLIErrorCodeForError(err), Message: err.Error()}
	var ce *CommandError
	if errors.As(err, &ce) {
		detail.Message = ce.Err.Error()
	}
	if code := HResult(err); code != EFail || IsReceiverFailure(err) {
		detail.HResult = fmt.Sprintf("0x%08X", uint32(code))
	}
	resp := CLIResponse{Success: false, Error: detail}
	enc := json.NewEncoder(cliWriter())
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) //nolint:errcheck
	return CLIExitCodeForError(err)
}

// CLIExitCodeForError maps dispatch errors to CLI exit codes.
func CLIExitCodeForError(err error) int {
	var re *ReceiverError
	switch {
	case err == nil:
		return ExitSuccess
	case IsNotSupported(err), IsUnknownGroup(err):
		return ExitNotSupported
	case IsDisabled(err):
		return ExitDisabled
	case errors.Is(err, ErrInvalidOption), errors.Is(err, ErrCommandRefNotFound):
		return ExitInvalidArguments
	case errors.As(err, &re) && re.Code == EInvalidArg:
		return ExitInvalidArguments
	default:
		return ExitGeneralError
	}
}

// CLIErrorCodeForError maps dispatch errors to CLI error code strings.
func CLIErrorCodeForError(err error) string {
	var re *ReceiverError
	switch {
	case IsNotSupported(err):
		return ErrCodeNotSupported
	case IsUnknownGroup(err):
		return ErrCodeUnknownGroup
	case IsDisabled(err):
		return ErrCodeDisabled
	case errors.Is(err, ErrInvalidOption):
		return ErrCodeInvalidArguments
	case errors.Is(err, ErrCommandRefNotFound):
		return ErrCodeRefNotFound
	case errors.Is(err, os.ErrNotExist):
		return ErrCodeNotInitialized
	case errors.As(err, &re):
		switch re.Code {
		case ECancelled:
			return ErrCodeCancelled
		case EInvalidArg:
			return ErrCodeInvalidArguments
		}
		return ErrCodeReceiverFailure
	default:
		return ErrCodeInternalError
	}
}
