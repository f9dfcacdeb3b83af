package tui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/EmundoT/cmdtarget/internal/core"
	"github.com/EmundoT/cmdtarget/internal/types"
)

func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	fn()
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func captureStderr(fn func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	fn()
	_ = w.Close()
	os.Stderr = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func sampleStatuses() []core.CommandStatus {
	return []core.CommandStatus{
		{Name: "show-message", Group: "standard", ID: 41, Flags: types.StatusSupported | types.StatusEnabled, State: "enabled"},
		{Name: "bold", Group: core.SampleGroup.String(), ID: 1, Flags: types.StatusSupported | types.StatusEnabled | types.StatusLatched, State: "on"},
		{Name: "zoom", Group: core.SampleGroup.String(), ID: 2, State: "enabled", Value: "100"},
		{Name: "gone", Group: "standard", ID: 99, State: "not supported", Error: "command not supported"},
	}
}

func TestPrintError(t *testing.T) {
	output := captureStdout(func() {
		PrintError("Failed", "something went wrong")
	})
	if !strings.Contains(output, "Failed") {
		t.Errorf("PrintError output missing title, got: %q", output)
	}
	if !strings.Contains(output, "something went wrong") {
		t.Errorf("PrintError output missing message, got: %q", output)
	}
}

func TestPrintSuccess(t *testing.T) {
	output := captureStdout(func() {
		PrintSuccess("done")
	})
	if !strings.Contains(output, "done") {
		t.Errorf("PrintSuccess output missing message, got: %q", output)
	}
}

func TestPrintWarning(t *testing.T) {
	output := captureStdout(func() {
		PrintWarning("Careful", "details")
	})
	if !strings.Contains(output, "Careful") || !strings.Contains(output, "details") {
		t.Errorf("PrintWarning output incomplete, got: %q", output)
	}
}

func TestPrintCard(t *testing.T) {
	output := captureStdout(func() {
		PrintCard("show-message", "Hello there")
	})
	if !strings.Contains(output, "show-message") || !strings.Contains(output, "Hello there") {
		t.Errorf("PrintCard output incomplete, got: %q", output)
	}
}

func TestFormatStatusTable(t *testing.T) {
	out := FormatStatusTable(sampleStatuses())

	for _, want := range []string{
		"NAME", "STATE",
		"show-message", "41",
		core.SampleGroup.String() + ":1",
		"on", "100",
		"not supported", "command not supported",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in table:\n%s", want, out)
		}
	}

	// Standard-group refs are printed without a group prefix
	if strings.Contains(out, "standard:41") {
		t.Errorf("Standard group should not be spelled out:\n%s", out)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Errorf("Expected header plus 4 rows, got %d lines", len(lines))
	}
}

func TestFormatStatusTable_Empty(t *testing.T) {
	out := FormatStatusTable(nil)
	if !strings.Contains(out, "No commands") {
		t.Errorf("Expected empty-table notice, got %q", out)
	}
}

func TestPrintHelp(t *testing.T) {
	output := captureStdout(PrintHelp)
	for _, cmd := range []string{"init", "list", "status <ref>", "exec <ref>", "unit <text>", "watch", "completion"} {
		if !strings.Contains(output, cmd) {
			t.Errorf("PrintHelp missing %q", cmd)
		}
	}
}
