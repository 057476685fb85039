package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/banterhq/banter"
	"github.com/banterhq/banter/markdown"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ tea.Model = Model{}

const sidebarWidth = 24

// mode selects what the input line edits.
type mode int

const (
	modeChat   mode = iota
	modeRename      // input edits the active session's title
)

// Config carries presentation settings that are not controller state.
type Config struct {
	// Models is the list the model-cycling key rotates through. The
	// controller's current model is appended when not already present.
	Models []string
	// ExportDir is where exported transcripts land. Empty = cwd.
	ExportDir string
}

// Model is the Bubble Tea model for the banter TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable transcript area. Exported for test access.
	Viewport viewport.Model

	ctrl    *banter.Controller
	theme   banter.Theme
	styles  Styles
	config  Config
	spinner spinner.Model

	mode     mode
	renameID string
	models   []string
	modelIdx int

	notice string // transient status text (busy, export result)
	err    error
	ready  bool
}

// New creates a new TUI Model bound to the given controller.
func New(ctrl *banter.Controller, theme banter.Theme, config Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	styles := NewStyles(theme)
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.Muted

	models := append([]string(nil), config.Models...)
	cur := ctrl.Model()
	idx := -1
	for i, m := range models {
		if m == cur {
			idx = i
			break
		}
	}
	if idx < 0 {
		models = append([]string{cur}, models...)
		idx = 0
	}

	return Model{
		Input:    ti,
		ctrl:     ctrl,
		theme:    theme,
		styles:   styles,
		config:   config,
		spinner:  sp,
		models:   models,
		modelIdx: idx,
	}
}

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// Notice returns the current transient status text.
func (m Model) Notice() string { return m.notice }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.ctrl.Generating() {
			// Keep the transcript fresh while the reply is pending: the
			// user turn lands in the session shortly after submit.
			m = m.refresh(false)
			return m, cmd
		}
		return m, nil

	case SendDoneMsg:
		if msg.Err != nil {
			m.notice = noticeFor(msg.Err)
		}
		return m.refresh(true), nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.notice = "Exported to " + msg.Path
		}
		return m, nil
	}

	// Pass remaining messages to sub-components. The viewport always
	// receives messages for scrolling (keyboard and mouse).
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var chat strings.Builder
	chat.WriteString(m.Viewport.View())
	chat.WriteString("\n")
	chat.WriteString(m.statusLine())
	chat.WriteString("\n")
	chat.WriteString(m.Input.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), chat.String())
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	chatWidth := msg.Width - sidebarWidth
	if chatWidth < 20 {
		chatWidth = 20
	}
	vpHeight := msg.Height - 2 // status + input
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(chatWidth, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = chatWidth
		m.Viewport.Height = vpHeight
	}
	m.Input.Width = chatWidth
	return m.refresh(true)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeRename {
		return m.handleRenameKey(msg)
	}

	m.notice = ""
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submit(text)

	case tea.KeyCtrlN:
		if _, err := m.ctrl.NewSession(); err != nil {
			m.err = err
		}
		return m.refresh(true), nil

	case tea.KeyCtrlD:
		if err := m.ctrl.DeleteSession(m.ctrl.ActiveID()); err != nil {
			m.err = err
		}
		return m.refresh(true), nil

	case tea.KeyCtrlL:
		if err := m.ctrl.ClearActive(); err != nil {
			m.err = err
		}
		return m.refresh(true), nil

	case tea.KeyCtrlR:
		m.mode = modeRename
		m.renameID = m.ctrl.ActiveID()
		m.Input.SetValue(m.ctrl.Active().Title)
		m.Input.CursorEnd()
		return m, nil

	case tea.KeyCtrlT:
		m.modelIdx = (m.modelIdx + 1) % len(m.models)
		m.ctrl.SetModel(m.models[m.modelIdx])
		return m, nil

	case tea.KeyCtrlE:
		return m, exportCmd(m.ctrl.Active(), m.config.ExportDir)

	case tea.KeyTab:
		return m.cycleSession(1), nil

	case tea.KeyShiftTab:
		return m.cycleSession(-1), nil
	}

	// Pass keys to both the input (typing) and viewport (scrolling). Only
	// non-character keys reach the viewport to avoid conflicts ('j'/'k'
	// are viewport scroll AND text characters).
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		title := strings.TrimSpace(m.Input.Value())
		if title != "" {
			if err := m.ctrl.RenameSession(m.renameID, title); err != nil {
				m.err = err
			}
		}
		m.mode = modeChat
		m.renameID = ""
		m.Input.SetValue("")
		return m.refresh(true), nil

	case tea.KeyEsc:
		m.mode = modeChat
		m.renameID = ""
		m.Input.SetValue("")
		return m, nil

	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// submit parses the input line and starts a send. "/image <path>" attaches
// the file at path; the rest of the line becomes the caption.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	var image *banter.Image
	if path, rest, ok := parseImageCommand(text); ok {
		img, err := loadImage(path)
		if err != nil {
			m.err = err
			return m, nil
		}
		image = img
		text = rest
	}

	m.Input.SetValue("")
	m.err = nil
	return m, tea.Batch(
		sendCmd(m.ctrl, text, image),
		m.spinner.Tick,
	)
}

func (m Model) cycleSession(delta int) Model {
	sessions := m.ctrl.Sessions()
	if len(sessions) < 2 {
		return m
	}
	activeID := m.ctrl.ActiveID()
	idx := 0
	for i, s := range sessions {
		if s.ID == activeID {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(sessions)) % len(sessions)
	if err := m.ctrl.SelectSession(sessions[idx].ID); err != nil {
		m.err = err
		return m
	}
	return m.refresh(true)
}

// refresh rebuilds the transcript from the active session.
func (m Model) refresh(gotoBottom bool) Model {
	if !m.ready {
		return m
	}
	session := m.ctrl.Active()
	blocks := make([]MessageBlock, 0, len(session.Messages))
	for _, msg := range session.Messages {
		if msg.Role == banter.RoleAssistant {
			blocks = append(blocks, NewAssistantBlock(msg.Content, m.theme, m.styles))
		} else {
			blocks = append(blocks, NewUserMessageBlock(msg.Content, msg.Image != nil, m.styles))
		}
	}

	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	m.Viewport.SetContent(b.String())
	if gotoBottom || m.ctrl.Generating() {
		m.Viewport.GotoBottom()
	}
	return m
}

// sidebar renders the session list, newest first, active session marked.
func (m Model) sidebar() string {
	sessions := m.ctrl.Sessions()
	activeID := m.ctrl.ActiveID()

	var b strings.Builder
	b.WriteString(m.styles.SidebarTitle.Render("Sessions"))
	b.WriteString("\n")
	for _, s := range sessions {
		title := truncate(s.Title, sidebarWidth-4)
		if s.ID == activeID {
			b.WriteString(m.styles.SidebarActive.Render("› " + title))
		} else {
			b.WriteString(m.styles.Sidebar.Render("  " + title))
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(m.Viewport.Height + 2).
		Render(b.String())
}

func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	case m.mode == modeRename:
		return m.styles.Muted.Render("Renaming session — Enter to save, Esc to cancel")
	case m.ctrl.Generating():
		return m.spinner.View() + " " + m.styles.Muted.Render("Thinking...")
	case m.notice != "":
		return m.styles.Accent.Render(m.notice)
	}
	return m.styles.Muted.Render(
		m.models[m.modelIdx] + " — Enter send · ^N new · ^D delete · ^L clear · ^R rename · ^E export · ^T model · Tab session")
}

// noticeFor maps rejected-send errors to their user-visible notices.
func noticeFor(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, banter.ErrBusy) {
		return banter.BusyNotice
	}
	return err.Error()
}

// sendCmd runs the blocking send off the UI goroutine.
func sendCmd(ctrl *banter.Controller, text string, image *banter.Image) tea.Cmd {
	return func() tea.Msg {
		return SendDoneMsg{Err: ctrl.Send(context.Background(), text, image)}
	}
}

// exportCmd writes the session transcript into dir.
func exportCmd(s banter.Session, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := markdown.WriteFile(exportPath(dir, s.ID), s)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
