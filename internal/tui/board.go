package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EmundoT/cmdtarget/internal/core"
)

// StatusView shows the command list while 'cmdtarget watch' runs
type StatusView interface {
	Update(statuses []core.CommandStatus, err error)
	Stop()
}

// ========================================
// Bubbletea Status Board Model
// ========================================

// boardModel is a bubbletea model for the live status board
type boardModel struct {
	title    string
	statuses []core.CommandStatus
	reloads  int
	lastErr  error
	updated  time.Time
	stopped  bool
	width    int
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.stopped = true
			return m, tea.Quit
		}
	case boardReloadMsg:
		m.updated = msg.at
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.reloads++
		m.lastErr = nil
		m.statuses = msg.statuses
	case boardStopMsg:
		m.stopped = true
		return m, tea.Quit
	}
	return m, nil
}

func (m boardModel) View() string {
	view := styleTitle.Render(m.title) + "\n\n" + FormatStatusTable(m.statuses) + "\n\n"

	if m.lastErr != nil {
		view += styleErr.Render("✖ Reload failed: "+m.lastErr.Error()) + "\n"
	} else if m.reloads > 0 {
		view += styleSuccess.Render(fmt.Sprintf("✔ Reloaded %d %s, last at %s",
			m.reloads, core.Pluralize(m.reloads, "time", "times"), m.updated.Format("15:04:05"))) + "\n"
	}

	if m.stopped {
		return view
	}
	return view + styleDim.Render("Watching "+core.TableName+" (q to quit)")
}

// ========================================
// Bubbletea Messages
// ========================================

type boardReloadMsg struct {
	statuses []core.CommandStatus
	err      error
	at       time.Time
}

type boardStopMsg struct{}

// ========================================
// BubbleteaStatusBoard Implementation
// ========================================

// BubbleteaStatusBoard renders the status board with bubbletea
type BubbleteaStatusBoard struct {
	program *tea.Program
	done    chan struct{}
}

// NewBubbleteaStatusBoard starts a status board. onQuit is called when the
// user quits from the keyboard.
func NewBubbleteaStatusBoard(title string, statuses []core.CommandStatus, onQuit func()) *BubbleteaStatusBoard {
	m := boardModel{
		title:    title,
		statuses: statuses,
		width:    80,
	}

	p := tea.NewProgram(m)
	board := &BubbleteaStatusBoard{program: p, done: make(chan struct{})}

	// Start program in background
	go func() {
		defer close(board.done)
		_, _ = p.Run()
		if onQuit != nil {
			onQuit()
		}
	}()

	return board
}

// Update shows a reloaded command list or a reload error.
func (b *BubbleteaStatusBoard) Update(statuses []core.CommandStatus, err error) {
	b.program.Send(boardReloadMsg{statuses: statuses, err: err, at: time.Now()})
}

// Stop ends the board and waits for the final render.
func (b *BubbleteaStatusBoard) Stop() {
	b.program.Send(boardStopMsg{})
	<-b.done
}

// ========================================
// Text Status View (Non-TTY)
// ========================================

// TextStatusView prints the full table after each reload
type TextStatusView struct{}

// NewTextStatusView prints the initial table
func NewTextStatusView(statuses []core.CommandStatus) *TextStatusView {
	PrintStatusTable(statuses)
	return &TextStatusView{}
}

// Update prints the reloaded table or the reload error.
func (v *TextStatusView) Update(statuses []core.CommandStatus, err error) {
	if err != nil {
		fmt.Printf("✗ Reload failed: %v\n", err)
		return
	}
	fmt.Println()
	PrintStatusTable(statuses)
}

// Stop does nothing.
func (v *TextStatusView) Stop() {}

// ========================================
// No-Op Status View (Quiet/JSON)
// ========================================

// NoOpStatusView does nothing (for quiet/JSON/testing modes)
type NoOpStatusView struct{}

// Update does nothing (no-op implementation).
func (v *NoOpStatusView) Update(_ []core.CommandStatus, _ error) {}

// Stop does nothing (no-op implementation).
func (v *NoOpStatusView) Stop() {}
