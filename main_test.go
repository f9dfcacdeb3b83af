package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"

	"golang.org/x/text/language"

	"github.com/EmundoT/cmdtarget/internal/core"
	"github.com/EmundoT/cmdtarget/internal/testutil"
	"github.com/EmundoT/cmdtarget/internal/tui"
	"github.com/EmundoT/cmdtarget/internal/types"
	"github.com/EmundoT/cmdtarget/internal/unitvalue"
)

// TestParseCommonFlags verifies global flags are stripped from the arguments
func TestParseCommonFlags(t *testing.T) {
	defer func() { core.Verbose = false }()

	flags, rest := parseCommonFlags([]string{"bold", "--yes", "--json", "-v", "--prompt"})

	if !flags.Yes {
		t.Error("Expected --yes to be parsed")
	}
	if flags.Mode != core.OutputJSON {
		t.Errorf("Expected JSON mode, got %d", flags.Mode)
	}
	if !core.Verbose {
		t.Error("Expected -v to enable verbose logging")
	}
	if len(rest) != 2 || rest[0] != "bold" || rest[1] != "--prompt" {
		t.Errorf("Unexpected remaining args: %v", rest)
	}
}

func TestParseExecArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    execArgs
		wantErr bool
	}{
		{
			name: "ref only",
			args: []string{"bold"},
			want: execArgs{ref: "bold", opt: types.ExecDefault},
		},
		{
			name: "prompt",
			args: []string{"--prompt", "bold"},
			want: execArgs{ref: "bold", opt: types.ExecPromptUser},
		},
		{
			name: "help only",
			args: []string{"40", "--help-only"},
			want: execArgs{ref: "40", opt: types.ExecShowHelp},
		},
		{
			name: "input",
			args: []string{"table-width", "--no-prompt", "--in", "50%"},
			want: execArgs{ref: "table-width", opt: types.ExecDontPromptUser, input: "50%", hasInput: true},
		},
		{
			name: "empty input with equals",
			args: []string{"show-message", "--in="},
			want: execArgs{ref: "show-message", input: "", hasInput: true},
		},
		{name: "missing ref", args: []string{"--prompt"}, wantErr: true},
		{name: "missing input value", args: []string{"bold", "--in"}, wantErr: true},
		{name: "conflicting options", args: []string{"bold", "--prompt", "--help-only"}, wantErr: true},
		{name: "extra argument", args: []string{"bold", "italic"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseExecArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseExecArgs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseUnitArgs(t *testing.T) {
	got, err := parseUnitArgs([]string{"-5", "--unit", "absolute", "--locale", "de", "--divide", "2"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := unitArgs{text: "-5", unit: unitvalue.Absolute, locale: "de", divisor: 2, hasDivide: true}
	if got != want {
		t.Errorf("parseUnitArgs() = %+v, want %+v", got, want)
	}

	auto, err := parseUnitArgs([]string{"42%"})
	if err != nil || !auto.autodetect {
		t.Errorf("Expected autodetect without --unit, got %+v (%v)", auto, err)
	}

	for _, bad := range [][]string{
		{},
		{"1", "2"},
		{"1", "--unit", "inches"},
		{"1", "--divide", "x"},
		{"1", "--locale"},
	} {
		if _, err := parseUnitArgs(bad); err == nil {
			t.Errorf("Expected error for %v", bad)
		}
	}
}

func TestEvaluateUnit(t *testing.T) {
	report, err := evaluateUnit(unitArgs{text: "42%", autodetect: true}, language.Und)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !report.Defined || report.Unit != "percentage" || report.Magnitude != 42 || report.Rendered != "42%" {
		t.Errorf("Unexpected report: %+v", report)
	}
	if report.Pixels != nil {
		t.Error("Percentages have no pixel value")
	}

	report, err = evaluateUnit(unitArgs{text: "10", unit: unitvalue.Absolute, divisor: 3, hasDivide: true}, language.Und)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Magnitude != 3 || report.Pixels == nil || *report.Pixels != 3 {
		t.Errorf("Expected truncating division to 3, got %+v", report)
	}
	testutil.AssertJSONContainsField(t, report, "pixels")

	report, err = evaluateUnit(unitArgs{text: "abc%", autodetect: true}, language.Und)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Defined || report.Unit != "undefined" || report.CanParse {
		t.Errorf("Expected undefined unparseable value, got %+v", report)
	}
}

func TestEvaluateUnit_Errors(t *testing.T) {
	_, err := evaluateUnit(unitArgs{text: "10", autodetect: true, divisor: 0, hasDivide: true}, language.Und)
	if !errors.Is(err, core.ErrInvalidOption) {
		t.Errorf("Expected invalid option for zero divisor, got %v", err)
	}
	if core.CLIExitCodeForError(err) != core.ExitInvalidArguments {
		t.Error("Expected invalid-arguments exit code")
	}

	_, err = evaluateUnit(unitArgs{text: "", autodetect: true, divisor: 2, hasDivide: true}, language.Und)
	if !errors.Is(err, core.ErrInvalidOption) {
		t.Errorf("Expected error dividing an undefined value, got %v", err)
	}

	_, err = evaluateUnit(unitArgs{text: "1", autodetect: true, locale: "???"}, language.Und)
	if err == nil {
		t.Error("Expected error for invalid locale")
	}
}

// ============================================================================
// JSON Exec Output Tests
// ============================================================================

// captureStdout runs fn with os.Stdout redirected and returns what it wrote
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	out := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		out <- buf.String()
	}()

	fn()
	w.Close()
	return <-out
}

// decodeResponses decodes every JSON document in output
func decodeResponses(t *testing.T, output string) []core.CLIResponse {
	t.Helper()
	var docs []core.CLIResponse
	dec := json.NewDecoder(bytes.NewBufferString(output))
	for dec.More() {
		var resp core.CLIResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("Invalid JSON output: %v\n%s", err, output)
		}
		docs = append(docs, resp)
	}
	return docs
}

// newJSONManager creates a manager over the starter table, with the
// clear-formatting prompt command enabled
func newJSONManager(t *testing.T, flags core.NonInteractiveFlags) (*core.Manager, core.UICallback) {
	t.Helper()
	dir := t.TempDir()
	table := core.DefaultTable()
	for i := range table.Commands {
		if table.Commands[i].Name == "clear-formatting" {
			table.Commands[i].Enabled = nil
		}
	}
	if err := core.NewFileTableStore(dir).Save(table); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	callback := tui.NewNonInteractiveTUICallback(flags)
	manager := core.NewManager(dir)
	manager.SetUICallback(callback)
	return manager, callback
}

func TestRunExec_JSONWritesOneResponse(t *testing.T) {
	tests := []struct {
		name        string
		yes         bool
		args        execArgs
		wantCode    int
		wantSuccess bool
		wantKind    string
		wantText    string
	}{
		{
			name:        "message command",
			args:        execArgs{ref: "show-message"},
			wantCode:    core.ExitSuccess,
			wantSuccess: true,
			wantKind:    "message",
			wantText:    "Hello from the command target.",
		},
		{
			name:        "help on a set-value command",
			args:        execArgs{ref: "table-width", opt: types.ExecShowHelp},
			wantCode:    core.ExitSuccess,
			wantSuccess: true,
			wantKind:    "help",
			wantText:    "Sets the table width, in pixels or as a percentage.",
		},
		{
			name:        "approved prompt",
			yes:         true,
			args:        execArgs{ref: "clear-formatting"},
			wantCode:    core.ExitSuccess,
			wantSuccess: true,
			wantKind:    "message",
			wantText:    "Formatting cleared.",
		},
		{
			name:     "declined prompt",
			args:     execArgs{ref: "clear-formatting"},
			wantCode: core.ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := core.NonInteractiveFlags{Mode: core.OutputJSON, Yes: tt.yes}
			manager, callback := newJSONManager(t, flags)

			var code int
			output := captureStdout(t, func() {
				code = runExec(manager, callback, flags, tt.args)
			})

			if code != tt.wantCode {
				t.Errorf("Expected exit code %d, got %d", tt.wantCode, code)
			}
			docs := decodeResponses(t, output)
			if len(docs) != 1 {
				t.Fatalf("Expected exactly one JSON document, got %d:\n%s", len(docs), output)
			}
			if docs[0].Success != tt.wantSuccess {
				t.Errorf("Expected success=%t, got %s", tt.wantSuccess, output)
			}
			if !tt.wantSuccess {
				if docs[0].Error == nil {
					t.Error("Expected error detail in the response")
				}
				return
			}

			data, _ := json.Marshal(docs[0].Data)
			var res struct {
				Messages []core.ExecMessage `json:"messages"`
			}
			if err := json.Unmarshal(data, &res); err != nil {
				t.Fatalf("Unexpected data payload: %v", err)
			}
			if len(res.Messages) != 1 {
				t.Fatalf("Expected one message in the response, got %+v", res.Messages)
			}
			if res.Messages[0].Kind != tt.wantKind || res.Messages[0].Text != tt.wantText {
				t.Errorf("Unexpected message: %+v", res.Messages[0])
			}
		})
	}
}
