package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjessup/slipwatch/internal/domain"
	"github.com/mattjessup/slipwatch/internal/intelligence"
	"github.com/mattjessup/slipwatch/internal/service"
)

func typeString(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func newTestChat(analysis service.AnalysisService) *chatModel {
	return newChatModel(&App{Analysis: analysis})
}

type chatStubAnalysis struct {
	outcome *service.AskOutcome
	asked   string
}

func (s *chatStubAnalysis) Ask(_ context.Context, q string) (*service.AskOutcome, error) {
	s.asked = q
	return s.outcome, nil
}

func (s *chatStubAnalysis) Analyze(context.Context, intelligence.QueryIntent) (*domain.AnalysisResult, error) {
	panic("not used")
}

func (s *chatStubAnalysis) WeekendTaskFindings(context.Context) ([]domain.ImpactFinding, error) {
	panic("not used")
}

func TestChatModel_ShowsWelcome(t *testing.T) {
	m := newTestChat(&chatStubAnalysis{})
	view := m.View()

	assert.Contains(t, view, "SLIPWATCH CHAT")
	assert.Contains(t, view, "/quit")
}

func TestChatModel_AsksOnEnter(t *testing.T) {
	stub := &chatStubAnalysis{outcome: &service.AskOutcome{
		Resolution: &intelligence.QueryResolution{},
		Result:     &domain.AnalysisResult{Summary: "Found 2 tasks impacted by holidays"},
	}}
	var m tea.Model = newTestChat(stub)

	m = typeString(m, "holiday trouble?")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	// The question echoes and the model shows a waiting indicator until
	// the answer message lands.
	view := m.View()
	assert.Contains(t, view, "You: holiday trouble?")
	assert.Contains(t, view, "Thinking...")

	m, _ = m.Update(cmd())
	view = m.View()
	assert.Equal(t, "holiday trouble?", stub.asked)
	assert.Contains(t, view, "Found 2 tasks impacted by holidays")
	assert.NotContains(t, view, "Thinking...")
}

func TestChatModel_EmptyInputIgnored(t *testing.T) {
	var m tea.Model = newTestChat(&chatStubAnalysis{})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "You:")
}

func TestChatModel_QuitCommands(t *testing.T) {
	var m tea.Model = newTestChat(&chatStubAnalysis{})

	m = typeString(m, "/quit")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestChatModel_EscQuits(t *testing.T) {
	m := newTestChat(&chatStubAnalysis{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
