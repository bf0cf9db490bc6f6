package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MockingJ4y/rag-knowledge-assistant/internal/domain"
)

// AssistantPort is the TUI-facing subset of the assistant service.
type AssistantPort interface {
	Query(query string, topK int) ([]domain.RankedResult, error)
	Stats() domain.Stats
}

// Answerer generates a model answer from retrieved context. A nil Answerer
// means no LLM is configured; the TUI then shows raw retrieved chunks.
type Answerer interface {
	Answer(results []domain.RankedResult, question string) (string, error)
}

type answerMsg struct {
	answer string
	err    error
}

// Model is the Bubble Tea model for the chat interface.
type Model struct {
	assistant AssistantPort
	chat      Answerer
	topK      int

	input     textinput.Model
	viewport  viewport.Model
	results   []domain.RankedResult
	answer    string
	cursor    int
	status    string
	lastQuery string
	ready     bool
	waiting   bool
}

// New creates a new TUI model instance.
func New(assistant AssistantPort, chat Answerer, topK int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	status := "Documents loaded. Ask away."
	if chat == nil {
		status = "Documents loaded. No API key set; showing raw chunks."
	}
	return Model{assistant: assistant, chat: chat, topK: topK, input: ti, viewport: vp, status: status}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2 // header + stats
		totalFooterLines := 1 // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderContent())
		return m, nil
	case answerMsg:
		m.waiting = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
		} else {
			m.answer = msg.answer
			m.status = fmt.Sprintf("Answered %q", m.lastQuery)
		}
		m.viewport.SetContent(m.renderContent())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if m.waiting {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				return m.runQuery(q)
			}
		case "down":
			if len(m.results) > 0 && m.answer == "" {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		case "up":
			if len(m.results) > 0 && m.answer == "" {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderContent())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) runQuery(q string) (tea.Model, tea.Cmd) {
	res, err := m.assistant.Query(q, m.topK)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.results = nil
		m.answer = ""
		m.viewport.SetContent(m.renderContent())
		return m, nil
	}
	m.results = res
	m.cursor = 0
	m.answer = ""
	m.lastQuery = q

	if m.chat != nil && len(res) > 0 {
		m.waiting = true
		m.status = "Thinking..."
		m.viewport.SetContent(m.renderContent())
		chat, results, question := m.chat, res, q
		return m, func() tea.Msg {
			answer, err := chat.Answer(results, question)
			return answerMsg{answer: answer, err: err}
		}
	}

	m.status = fmt.Sprintf("Top chunks for %q", q)
	m.viewport.SetContent(m.renderContent())
	return m, nil
}

// View renders the TUI layout and current content.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("RAG Knowledge Assistant")
	st := m.assistant.Stats()
	statsLine := statsStyle.Render(fmt.Sprintf("docs: %d  chunks: %d  avg chunk: %.0f chars",
		st.TotalDocs, st.TotalChunks, st.AvgChunkSize))
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	body := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + statsLine + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderContent() string {
	if m.answer != "" {
		var b strings.Builder
		b.WriteString(m.answer)
		b.WriteString("\n\n")
		b.WriteString(sourceHeaderStyle.Render("Sources"))
		for _, r := range m.results {
			fmt.Fprintf(&b, "\n%s chunk %d (score %.3f)", r.Record.DocumentName, r.Record.ChunkIndex+1, r.Score)
		}
		return b.String()
	}
	if len(m.results) == 0 {
		return "No results yet."
	}
	r := m.results[m.cursor]
	title := fmt.Sprintf("Chunk %d/%d  %s #%d  score=%.3f",
		m.cursor+1, len(m.results), r.Record.DocumentName, r.Record.ChunkIndex+1, r.Score)
	return title + "\n\n" + r.Record.ChunkText
}

var (
	resultBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statsStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sourceHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
