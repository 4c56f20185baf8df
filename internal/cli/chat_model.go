package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattjessup/slipwatch/internal/cli/formatter"
)

// chatModel is the interactive question loop: type a question, see the
// analysis, repeat. Questions run through the same Ask pipeline as the
// one-shot ask command.
type chatModel struct {
	app     *App
	input   textinput.Model
	waiting bool

	messages []string
}

type chatAnswerMsg struct {
	text string
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	m := &chatModel{app: app, input: ti}
	m.messages = append(m.messages, chatWelcome(app.LLMEnabled))
	return m
}

func chatWelcome(llmEnabled bool) string {
	var b strings.Builder
	b.WriteString(formatter.Header("slipwatch chat"))
	b.WriteString("\n")
	b.WriteString("Ask about the active plan's holiday and weekend exposure.\n")
	if !llmEnabled {
		b.WriteString(formatter.Dim("Keyword matching only — set SLIPWATCH_LLM_ENABLED=true for free-form questions.") + "\n")
	}
	b.WriteString(formatter.Dim("Type /quit or press esc to leave."))
	return b.String()
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" || m.waiting {
				return m, nil
			}
			return m.handleInput(input)
		}

	case chatAnswerMsg:
		m.waiting = false
		m.messages = append(m.messages, msg.text)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(formatter.Dim("Thinking...") + "\n")
	}

	prompt := formatter.StylePurple.Render("ask") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}

// ── input handling ───────────────────────────────────────────────────────────

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		return m, tea.Quit
	}

	m.messages = append(m.messages, formatter.Dim("You: ")+input)
	m.waiting = true

	app := m.app
	return m, func() tea.Msg {
		outcome, err := app.Analysis.Ask(context.Background(), input)
		if err != nil {
			return chatAnswerMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
		}
		return chatAnswerMsg{text: formatter.FormatAskOutcome(outcome)}
	}
}
