package core

import "sync"

// UICallback handles user interaction during command execution
type UICallback interface {
	ShowError(title, message string)
	ShowSuccess(message string)
	ShowWarning(title, message string)
	AskConfirmation(title, message string) bool
	StyleTitle(title string) string

	// ShowHelp displays a command's help text (ExecShowHelp)
	ShowHelp(command, help string)
	// ShowMessage displays the output of a message-style command
	ShowMessage(title, message string)

	// Non-interactive mode
	GetOutputMode() OutputMode
	IsAutoApprove() bool
	IsInteractive() bool
	FormatJSON(output JSONOutput) error
}

// SilentUICallback is a no-op implementation (for testing/CI)
type SilentUICallback struct{}

func (s *SilentUICallback) ShowError(title, message string)        {}
func (s *SilentUICallback) ShowSuccess(message string)             {}
func (s *SilentUICallback) ShowWarning(title, message string)      {}
func (s *SilentUICallback) AskConfirmation(title, msg string) bool { return false }
func (s *SilentUICallback) StyleTitle(title string) string         { return title }
func (s *SilentUICallback) ShowHelp(command, help string)          {}
func (s *SilentUICallback) ShowMessage(title, message string)      {}
func (s *SilentUICallback) GetOutputMode() OutputMode              { return OutputNormal }
func (s *SilentUICallback) IsAutoApprove() bool                    { return false }
func (s *SilentUICallback) IsInteractive() bool                    { return false }
func (s *SilentUICallback) FormatJSON(output JSONOutput) error     { return nil }

// ExecMessage is one piece of text a command showed while executing
type ExecMessage struct {
	Kind  string `json:"kind"` // "message", "help", "success", "warning", "error"
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// CollectingUICallback records what a command shows instead of printing it.
// The JSON exec path uses it so the output lands in a single CLIResponse.
// Confirmations are answered with AutoApprove.
type CollectingUICallback struct {
	mu       sync.Mutex
	messages []ExecMessage

	AutoApprove bool
}

func (c *CollectingUICallback) record(kind, title, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, ExecMessage{Kind: kind, Title: title, Text: text})
}

// Messages returns the recorded messages in order
func (c *CollectingUICallback) Messages() []ExecMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ExecMessage(nil), c.messages...)
}

func (c *CollectingUICallback) ShowError(title, message string)   { c.record("error", title, message) }
func (c *CollectingUICallback) ShowSuccess(message string)        { c.record("success", "", message) }
func (c *CollectingUICallback) ShowWarning(title, message string) { c.record("warning", title, message) }
func (c *CollectingUICallback) ShowHelp(command, help string)     { c.record("help", command, help) }
func (c *CollectingUICallback) ShowMessage(title, message string) { c.record("message", title, message) }
func (c *CollectingUICallback) AskConfirmation(title, msg string) bool {
	return c.AutoApprove
}
func (c *CollectingUICallback) StyleTitle(title string) string { return title }
func (c *CollectingUICallback) GetOutputMode() OutputMode     { return OutputJSON }
func (c *CollectingUICallback) IsAutoApprove() bool           { return c.AutoApprove }
func (c *CollectingUICallback) IsInteractive() bool           { return false }
func (c *CollectingUICallback) FormatJSON(output JSONOutput) error {
	c.record(output.Status, "", output.Message)
	return nil
}
