// Package tui is the terminal front-end: a bubbletea program that drives
// the journal session with arrow keys and mouse-drag swipes.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

// CellGestureConfig returns swipe thresholds scaled to terminal cells.
func CellGestureConfig() app.GestureConfig {
	return app.GestureConfig{
		DeadZone:       2,
		MinDistance:    8,
		MaxCrossTravel: 4,
		MaxDuration:    450 * time.Millisecond,
	}
}

// noticeTimeout is how long a status hint stays on screen.
const noticeTimeout = 2 * time.Second

// clearNoticeMsg asks the model to clear the notice raised at sequence seq.
// A newer notice carries a higher sequence and wins.
type clearNoticeMsg struct{ seq int }

// Model is the bubbletea model. All journal and session mutation happens
// synchronously inside Update; timers only clear cosmetic state.
type Model struct {
	session    *app.Session
	journal    *app.Journal
	recognizer *app.Recognizer
	input      textinput.Model

	dragX     float64 // live drag-follow offset, cells
	width     int
	height    int
	noticeSeq int
}

// NewModel creates the TUI model for an already-loaded journal.
func NewModel(session *app.Session, journal *app.Journal) Model {
	ti := textinput.New()
	ti.Placeholder = "weight"
	ti.CharLimit = 8
	ti.Width = 12
	ti.SetValue(session.Staged())
	ti.Focus()

	return Model{
		session:    session,
		journal:    journal,
		recognizer: app.NewRecognizer(CellGestureConfig()),
		input:      ti,
	}
}

// Run starts the program and blocks until the user quits.
func Run(session *app.Session, journal *app.Journal) error {
	p := tea.NewProgram(NewModel(session, journal), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.session.ClearNotice()
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "shift+left":
			return m.applyResult(m.session.NavigatePrev(context.Background()))
		case "shift+right":
			return m.applyResult(m.session.NavigateNext(context.Background()))
		case "ctrl+t":
			return m.applyResult(m.session.JumpTo(context.Background(), domain.Today()))
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.SetStaged(m.input.Value())
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.MouseLeft:
		if !m.recognizer.Active() {
			m.recognizer.Begin(float64(msg.X), float64(msg.Y), time.Now())
			return m, nil
		}
		st := m.recognizer.Move(float64(msg.X), float64(msg.Y))
		if st.Axis == app.AxisHorizontal {
			m.dragX = st.OffsetX
		}
		return m, nil

	case tea.MouseMotion:
		if m.recognizer.Active() {
			st := m.recognizer.Move(float64(msg.X), float64(msg.Y))
			if st.Axis == app.AxisHorizontal {
				m.dragX = st.OffsetX
			}
		}
		return m, nil

	case tea.MouseRelease:
		action := m.recognizer.End(time.Now())
		m.dragX = 0
		switch action {
		case app.GesturePrev:
			return m.applyResult(m.session.NavigatePrev(context.Background()))
		case app.GestureNext:
			return m.applyResult(m.session.NavigateNext(context.Background()))
		}
		return m, nil
	}
	return m, nil
}

// applyResult re-hydrates the input field after a transition and schedules
// the notice to clear.
func (m Model) applyResult(res app.Result) (tea.Model, tea.Cmd) {
	m.input.SetValue(m.session.Staged())
	m.input.CursorEnd()
	m.dragX = 0

	if res.Notice == app.NoticeNone {
		return m, nil
	}
	m.noticeSeq++
	seq := m.noticeSeq
	return m, tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
