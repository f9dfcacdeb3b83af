package tui

import (
	"strings"
	"testing"

	"github.com/EmundoT/cmdtarget/internal/core"
)

func TestNewTUICallback(t *testing.T) {
	cb := NewTUICallback()
	if cb == nil {
		t.Fatal("NewTUICallback returned nil")
	}
}

func TestTUICallback_ImplementsUICallback(_ *testing.T) {
	var _ core.UICallback = NewTUICallback()
	var _ core.UICallback = NewNonInteractiveTUICallback(core.NonInteractiveFlags{})
}

func TestTUICallback_ShowError(t *testing.T) {
	cb := NewTUICallback()
	output := captureStdout(func() {
		cb.ShowError("Script Error", "error details")
	})
	if !strings.Contains(output, "Script Error") {
		t.Errorf("ShowError output missing title, got: %q", output)
	}
	if !strings.Contains(output, "error details") {
		t.Errorf("ShowError output missing message, got: %q", output)
	}
}

func TestTUICallback_ShowSuccess(t *testing.T) {
	cb := NewTUICallback()
	output := captureStdout(func() {
		cb.ShowSuccess("all good")
	})
	if !strings.Contains(output, "all good") {
		t.Errorf("ShowSuccess output missing message, got: %q", output)
	}
}

func TestTUICallback_ShowHelp(t *testing.T) {
	cb := NewTUICallback()
	output := captureStdout(func() {
		cb.ShowHelp("bold", "Toggles bold formatting.")
	})
	if !strings.Contains(output, "Help: bold") {
		t.Errorf("ShowHelp output missing command, got: %q", output)
	}
	if !strings.Contains(output, "Toggles bold formatting.") {
		t.Errorf("ShowHelp output missing help, got: %q", output)
	}
}

func TestTUICallback_ShowMessage(t *testing.T) {
	cb := NewTUICallback()
	output := captureStdout(func() {
		cb.ShowMessage("show-message", "Hello")
	})
	if !strings.Contains(output, "show-message") || !strings.Contains(output, "Hello") {
		t.Errorf("ShowMessage output incomplete, got: %q", output)
	}
}

func TestTUICallback_Modes(t *testing.T) {
	cb := NewTUICallback()
	if cb.GetOutputMode() != core.OutputNormal {
		t.Error("Expected normal output mode")
	}
	if cb.IsAutoApprove() {
		t.Error("Interactive callback never auto-approves")
	}
	if !cb.IsInteractive() {
		t.Error("Expected interactive callback")
	}
	if err := cb.FormatJSON(core.JSONOutput{}); err != nil {
		t.Errorf("FormatJSON should be a no-op, got %v", err)
	}
}
