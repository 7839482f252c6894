package view

import (
	"bot-chat/client"
	"bot-chat/domain/chat"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Messages posted to the program by the connection manager.
type (
	ReadyMsg  struct{}
	FailedMsg struct{ Reason string }
	ReplyMsg  struct{ Reply chat.ReplyMessage }
	ClosedMsg struct{ Err error }
)

const (
	inputHeight  = 1
	statusHeight = 1
	placeholder  = "Type a message... (Enter to send, Ctrl+C to exit)"
)

var (
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5652")).Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)
	senderStyle  = lipgloss.NewStyle().Bold(true)
	glyphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Padding(0, 1)
	echoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#aaaaaa"))
)

// Model is the message view. Every field is owned by the bubbletea loop.
type Model struct {
	log      *slog.Logger
	sender   Sender
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	entries  []chat.DisplayedEntry
	state    client.State
	failure  string
	notice   string
}

func NewModel(log *slog.Logger, sender Sender, width, height int) *Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Focus()
	input.Width = width - 4

	s := spinner.New()
	s.Spinner = spinner.Dot

	return &Model{
		log:      log,
		sender:   sender,
		viewport: viewport.New(width, max(height-inputHeight-statusHeight, 1)),
		input:    input,
		spinner:  s,
		state:    client.Connecting,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			// Enter never reaches the text input.
			m.HandleSubmit()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if m.state != client.Connecting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case ReadyMsg:
		m.state = client.Ready
		return m, nil
	case FailedMsg:
		m.state = client.Failed
		m.failure = msg.Reason
		return m, nil
	case ReplyMsg:
		m.AppendEntry(msg.Reply.Sender, msg.Reply.Content)
		return m, nil
	case ClosedMsg:
		m.notice = "Connection closed by the server"
		return m, nil
	}

	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, viewportCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, viewportCmd)
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.statusLine(),
		m.input.View(),
	)
}

// AppendEntry adds one line to the conversation and scrolls to it.
func (m *Model) AppendEntry(sender, text string) {
	m.entries = append(m.entries, NewEntry(sender, text))
	m.viewport.SetContent(m.render())
	m.viewport.GotoBottom()
}

// HandleSubmit echoes the trimmed input locally and forwards it to the Sender.
// Blank input is ignored.
func (m *Model) HandleSubmit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.sender == nil {
		return
	}
	m.AppendEntry(chat.LocalUsername, text)
	if err := m.sender.SendUserMessage(text); err != nil {
		m.log.Warn("Message not sent", "error", err)
		m.notice = "Message not sent: " + err.Error()
	} else {
		m.notice = ""
	}
	m.input.Reset()
}

func (m *Model) Entries() []chat.DisplayedEntry {
	return m.entries
}

func (m *Model) State() client.State {
	return m.state
}

func (m *Model) AtBottom() bool {
	return m.viewport.AtBottom()
}

func (m *Model) SetInput(text string) {
	m.input.SetValue(text)
}

func (m *Model) Input() string {
	return m.input.Value()
}

func (m *Model) resize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(height-inputHeight-statusHeight, 1)
	m.input.Width = width - 4
	m.viewport.SetContent(m.render())
	m.viewport.GotoBottom()
}

func (m *Model) statusLine() string {
	switch m.state {
	case client.Connecting, client.Disconnected:
		return m.spinner.View() + " Connecting..."
	case client.Failed:
		return failureStyle.Render(m.failure)
	default:
		if m.notice != "" {
			return noticeStyle.Render(m.notice)
		}
		return ""
	}
}

func (m *Model) render() string {
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		lines = append(lines, renderEntry(e))
	}
	return strings.Join(lines, "\n")
}

// renderEntry dims the local echoes so the replies stand out.
func renderEntry(e chat.DisplayedEntry) string {
	avatar := glyphStyle.Background(lipgloss.Color(e.Color)).Render(e.Glyph)
	text := e.Text
	if e.IsLocal() {
		text = echoStyle.Render(text)
	}
	return avatar + " " + senderStyle.Render(e.Sender) + " " + text
}
