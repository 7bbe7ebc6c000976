package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/neochat"
	rw "github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"
)

var _ tea.Model = Model{}

const (
	windowTitle = "NeoChat - Secure Classroom Messenger"

	namePrompt  = "Enter your display name (3-15 characters):"
	placeholder = "Type a message..."

	// scrollStickiness: new messages pull the viewport to the bottom only
	// when it is already scrolled past this fraction.
	scrollStickiness = 0.9
)

// mode selects which screen the model is showing.
type mode int

const (
	modeChat mode = iota
	modeName
)

// statusLevel selects the style of the status line text.
type statusLevel int

const (
	statusMuted statusLevel = iota
	statusInfo
	statusSuccess
	statusError
)

// Config carries the collaborators for a TUI Model. Queue, Session,
// Transcript, and Chat are required and shared with the caller, which reads
// them back after the program exits for the shutdown save. Listener and
// Persister are optional; nil disables live updates and history saving
// respectively.
type Config struct {
	Queue      *neochat.Queue
	Session    *neochat.Session
	Transcript *neochat.Transcript
	Chat       *neochat.Chat
	Listener   neochat.Listener
	Persister  neochat.Persister
	Connection neochat.ConnectionState
	Dark       bool
	Logger     logrus.FieldLogger
}

// Model is the Bubble Tea model for the neochat TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable transcript area. Exported for test access.
	Viewport viewport.Model

	queue      *neochat.Queue
	session    *neochat.Session
	transcript *neochat.Transcript
	chat       *neochat.Chat
	listener   neochat.Listener
	persister  neochat.Persister
	logger     logrus.FieldLogger

	theme  neochat.Theme
	dark   bool
	styles Styles
	keys   keyMap
	help   help.Model

	mode      mode
	showAbout bool
	aboutView string

	status      string
	statusLevel statusLevel

	conn     neochat.ConnectionState
	ctx      context.Context
	quitting bool
	ready    bool
	width    int
}

// New creates a new TUI Model from cfg. The model starts on the name prompt
// screen unless the session already carries a name.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	theme := neochat.LightTheme()
	if cfg.Dark {
		theme = neochat.DarkTheme()
	}

	m := Model{
		Input:      ti,
		queue:      cfg.Queue,
		session:    cfg.Session,
		transcript: cfg.Transcript,
		chat:       cfg.Chat,
		listener:   cfg.Listener,
		persister:  cfg.Persister,
		logger:     logger,
		theme:      theme,
		dark:       cfg.Dark,
		styles:     NewStyles(theme),
		keys:       keys,
		help:       help.New(),
		conn:       cfg.Connection,
		ctx:        context.Background(),
	}
	m.status, m.statusLevel = initialStatus(cfg.Connection)

	if m.session.Named() {
		m = m.enterChatMode()
	} else {
		m = m.enterNameMode()
	}
	return m
}

func initialStatus(conn neochat.ConnectionState) (string, statusLevel) {
	switch conn {
	case neochat.StateConnected:
		return "Connected to Firebase", statusSuccess
	case neochat.StateOffline, neochat.StateError:
		return "Offline Mode - Messages not saved", statusError
	default:
		return "Connecting...", statusMuted
	}
}

// Connection returns the connection state the model is displaying.
func (m Model) Connection() neochat.ConnectionState { return m.conn }

// title is the window title, personalized once a display name is set. A
// name preset at startup gets the personalized form straight away.
func (m Model) title() string {
	if m.session.Named() {
		return "NeoChat - " + m.session.Name()
	}
	return windowTitle
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		tick(),
		tea.SetWindowTitle(m.title()),
	}
	if m.persister != nil {
		cmds = append(cmds, saveTick())
	}
	if m.listener != nil {
		cmds = append(cmds, listen(m.ctx, m.listener, m.queue))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()

	case SaveTickMsg:
		return m.handleSaveTick()

	case ListenerDoneMsg:
		return m.handleListenerDone(msg)

	case SendDoneMsg:
		// Transport failures surface as system lines via the queue, so a
		// non-nil error here is unexpected.
		if msg.Err != nil {
			m.logger.WithError(msg.Err).Error("send failed")
		}
		return m, nil
	}

	// Pass remaining messages to sub-components.
	var cmd tea.Cmd
	var cmds []tea.Cmd
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
	if m.showAbout {
		return m.aboutView
	}
	if m.mode == modeName {
		return m.nameView()
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputHeight := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - inputHeight - statusHeight - borderHeight

	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.Viewport.SetContent(m.renderTranscript())
		m.Viewport.GotoBottom()
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}

	m.width = msg.Width
	m.help.Width = msg.Width
	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showAbout {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		// Any other key dismisses the overlay.
		m.showAbout = false
		return m, nil
	}

	if m.mode == modeName {
		return m.handleNameKey(msg)
	}
	return m.handleChatKey(msg)
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Send):
		if err := m.session.SetName(m.Input.Value()); err != nil {
			// Out-of-bounds names are rejected without feedback; the
			// prompt stays up.
			return m, nil
		}
		name := m.session.Name()
		m.chat.System("User set to: " + name)
		m.status, m.statusLevel = "Logged in as: "+name, statusInfo
		m = m.enterChatMode()
		return m, tea.SetWindowTitle(m.title())

	case msg.Type == tea.KeyEsc:
		// Back to chat without a name; sending stays disabled until one
		// is set.
		m = m.enterChatMode()
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Send):
		return m.submitInput()

	case key.Matches(msg, m.keys.Name):
		return m.enterNameMode(), nil

	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.Clear):
		m.transcript.Clear()
		m.session.Reset()
		m.Viewport.SetContent("")
		return m, nil

	case key.Matches(msg, m.keys.About):
		m.showAbout = true
		m.aboutView = renderAbout(m.width) + "\n" +
			m.styles.Muted.Render("press any key to close")
		return m, nil
	}

	// Pass keys to both input (for typing) and viewport (for scrolling).
	// Only forward non-character keys to viewport to avoid conflicts
	// (e.g. 'j'/'k' are viewport scroll AND text characters).
	var cmd tea.Cmd
	var cmds []tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submitInput dispatches the typed message. The sent count is recorded here,
// before the send completes, and the every-tenth-message save fires on it.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	body := strings.TrimSpace(m.Input.Value())
	if body == "" || !m.session.Named() {
		return m, nil
	}
	m.Input.SetValue("")

	n := m.session.RecordSent()
	if m.persister != nil && n%saveEvery == 0 {
		m.saveHistory()
	}
	return m, send(m.ctx, m.chat, m.session.Name(), body)
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.transcript.Drain(m.queue, m.session.Name()) > 0 && m.ready {
		atBottom := m.Viewport.ScrollPercent() > scrollStickiness
		m.Viewport.SetContent(m.renderTranscript())
		if atBottom {
			m.Viewport.GotoBottom()
		}
	}
	return m, tick()
}

func (m Model) handleSaveTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.persister == nil {
		return m, nil
	}
	m.saveHistory()
	return m, saveTick()
}

func (m Model) handleListenerDone(msg ListenerDoneMsg) (tea.Model, tea.Cmd) {
	if m.quitting || errors.Is(msg.Err, context.Canceled) {
		return m, nil
	}
	m.conn = neochat.StateError
	m.status, m.statusLevel = "Connection lost", statusError
	if msg.Err != nil {
		m.chat.System(fmt.Sprintf("Connection error: %v", msg.Err))
		m.logger.WithError(msg.Err).Error("message subscription terminated")
	}
	return m, nil
}

func (m Model) saveHistory() {
	if err := m.persister.Save(m.transcript.Text()); err != nil {
		m.logger.WithError(err).Error("failed to save chat history")
	}
}

func (m Model) enterNameMode() Model {
	m.mode = modeName
	m.Input.Placeholder = ""
	m.Input.SetValue(m.session.Name())
	m.Input.CursorEnd()
	return m
}

func (m Model) enterChatMode() Model {
	m.mode = modeChat
	m.Input.Placeholder = placeholder
	m.Input.SetValue("")
	return m
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.dark = !m.dark
	name := "light"
	m.theme = neochat.LightTheme()
	if m.dark {
		name = "dark"
		m.theme = neochat.DarkTheme()
	}
	m.styles = NewStyles(m.theme)
	if m.ready {
		m.Viewport.SetContent(m.renderTranscript())
	}
	m.chat.System("Switched to " + name + " mode")
	return m, nil
}

// renderTranscript styles each line by its class. Classes were fixed when
// the lines entered the transcript, so a rename or theme switch never
// restyles history retroactively beyond the palette.
func (m Model) renderTranscript() string {
	lines := m.transcript.Lines()
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.ForClass(line.Class).Render(line.Text))
	}
	return b.String()
}

func (m Model) nameView() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(m.styles.Accent.Render(windowTitle))
	b.WriteString("\n\n  ")
	b.WriteString(namePrompt)
	b.WriteString("\n\n  ")
	b.WriteString(m.Input.View())
	b.WriteString("\n\n  ")
	b.WriteString(m.styles.Muted.Render("enter confirm • esc skip"))
	return b.String()
}

func (m Model) statusLine() string {
	status := rw.Truncate(m.status, m.width, "…")
	line := m.statusStyle().Render(status)

	hints := m.help.View(m.keys)
	if rw.StringWidth(status)+2+lipgloss.Width(hints) <= m.width {
		line += "  " + hints
	}
	return line
}

func (m Model) statusStyle() lipgloss.Style {
	switch m.statusLevel {
	case statusInfo:
		return m.styles.Info
	case statusSuccess:
		return m.styles.Success
	case statusError:
		return m.styles.Error
	default:
		return m.styles.Muted
	}
}

// listen runs the streaming subscription in a goroutine. Inbound messages
// land on the queue; the display picks them up on the next tick.
func listen(ctx context.Context, l neochat.Listener, q *neochat.Queue) tea.Cmd {
	return func() tea.Msg {
		return ListenerDoneMsg{Err: l.Listen(ctx, q.Enqueue)}
	}
}

// send dispatches one outbound message in a goroutine. Chat.Send absorbs
// transport failures into the queue as system lines, so Err is normally nil.
func send(ctx context.Context, c *neochat.Chat, sender, body string) tea.Cmd {
	return func() tea.Msg {
		return SendDoneMsg{Err: c.Send(ctx, sender, body)}
	}
}
