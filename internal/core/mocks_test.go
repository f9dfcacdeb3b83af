package core

import (
	"sync"
)

// ============================================================================
// MockUICallback
// ============================================================================

// MockUICallback implements UICallback and records every call
type MockUICallback struct {
	mu sync.Mutex

	AutoApprove bool
	Confirm     bool
	Interactive bool
	Mode        OutputMode

	// Call tracking
	ErrorCalls        [][]string
	SuccessCalls      []string
	WarningCalls      [][]string
	ConfirmationCalls [][]string
	HelpCalls         [][]string
	MessageCalls      [][]string
	JSONCalls         []JSONOutput
}

func (m *MockUICallback) ShowError(title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorCalls = append(m.ErrorCalls, []string{title, message})
}

func (m *MockUICallback) ShowSuccess(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SuccessCalls = append(m.SuccessCalls, message)
}

func (m *MockUICallback) ShowWarning(title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WarningCalls = append(m.WarningCalls, []string{title, message})
}

func (m *MockUICallback) AskConfirmation(title, message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ConfirmationCalls = append(m.ConfirmationCalls, []string{title, message})
	return m.Confirm
}

func (m *MockUICallback) StyleTitle(title string) string { return title }

func (m *MockUICallback) ShowHelp(command, help string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HelpCalls = append(m.HelpCalls, []string{command, help})
}

func (m *MockUICallback) ShowMessage(title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MessageCalls = append(m.MessageCalls, []string{title, message})
}

func (m *MockUICallback) GetOutputMode() OutputMode { return m.Mode }
func (m *MockUICallback) IsAutoApprove() bool       { return m.AutoApprove }
func (m *MockUICallback) IsInteractive() bool       { return m.Interactive }

func (m *MockUICallback) FormatJSON(output JSONOutput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.JSONCalls = append(m.JSONCalls, output)
	return nil
}

// successCount returns the number of ShowSuccess calls so far
func (m *MockUICallback) successCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SuccessCalls)
}

// errorCount returns the number of ShowError calls so far
func (m *MockUICallback) errorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ErrorCalls)
}
