package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jharland/commit-pilot/internal/app"
	"github.com/jharland/commit-pilot/internal/domain"
	"github.com/jharland/commit-pilot/internal/ports"
)

// flowState is the current phase of the commit flow.
type flowState int

const (
	stateGenerating flowState = iota
	stateReview
	stateCommitting
	stateDone
	stateDeclined
	stateError
)

var (
	subjectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// Flow is the Bubble Tea model driving generate → review → commit.
//
// A commit only ever happens from the review state after an explicit "y";
// there is no auto-commit path.
type Flow struct {
	gen    ports.Generator
	git    ports.Git
	prompt string
	sign   bool

	state   flowState
	message string
	review  domain.Message
	warning string
	spinner spinner.Model
	err     error
}

// FlowResult is the outcome of a finished flow.
type FlowResult struct {
	Message   string
	Approved  bool
	Committed bool
	Warning   string
	Err       error
}

// NewFlow creates the commit flow model.
func NewFlow(gen ports.Generator, git ports.Git, promptText string, sign bool) *Flow {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &Flow{
		gen:     gen,
		git:     git,
		prompt:  promptText,
		sign:    sign,
		state:   stateGenerating,
		spinner: s,
	}
}

// Init starts the spinner and the generation call.
func (m *Flow) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdGenerate)
}

// Update handles messages and state transitions.
func (m *Flow) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.state = stateDeclined
			return m, tea.Quit
		}

		if m.state == stateReview {
			switch msg.String() {
			case "y", "Y":
				m.state = stateCommitting
				return m, tea.Batch(m.spinner.Tick, m.cmdCommit)
			case "n", "N", "q", "esc":
				m.state = stateDeclined
				return m, tea.Quit
			}
		}

	case msgGenerated:
		if msg.err != nil {
			m.state = stateError
			m.err = msg.err
			return m, tea.Quit
		}
		m.message = msg.text
		m.review = domain.Split(msg.text)
		m.state = stateReview

	case msgCommitted:
		if msg.err != nil {
			m.state = stateError
			m.err = msg.err
			return m, tea.Quit
		}
		m.warning = msg.warning
		m.state = stateDone
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current state.
func (m *Flow) View() string {
	switch m.state {
	case stateGenerating:
		return m.spinner.View() + " Generating commit message...\n"
	case stateReview:
		return m.viewReview()
	case stateCommitting:
		return m.spinner.View() + " Committing...\n"
	default:
		// Final status lines are printed by the CLI after the program exits.
		return ""
	}
}

// viewReview shows subject and body as distinct blocks with one y/n question.
func (m *Flow) viewReview() string {
	out := "Proposed commit message:\n\n"
	out += subjectStyle.Render(m.review.Subject) + "\n"
	if m.review.Body != "" {
		out += bodyStyle.Render(m.review.Body) + "\n"
	}
	out += "\n" + promptStyle.Render("Commit with this message? (y/n)") + "\n"
	return out
}

// Result reports the outcome once the program has finished.
func (m *Flow) Result() FlowResult {
	return FlowResult{
		Message:   m.message,
		Approved:  m.state == stateCommitting || m.state == stateDone,
		Committed: m.state == stateDone,
		Warning:   m.warning,
		Err:       m.err,
	}
}

// cmdGenerate calls the generation service.
func (m *Flow) cmdGenerate() tea.Msg {
	text, err := m.gen.Generate(context.Background(), m.prompt)
	if err != nil {
		return msgGenerated{err: fmt.Errorf("%w: %v", app.ErrGeneration, err)}
	}
	return msgGenerated{text: text}
}

// cmdCommit runs git commit with the approved message, verbatim.
func (m *Flow) cmdCommit() tea.Msg {
	warning, err := m.git.Commit(context.Background(), m.message, m.sign)
	if err != nil {
		return msgCommitted{err: fmt.Errorf("%w: %v", app.ErrCommit, err)}
	}
	return msgCommitted{warning: warning}
}

type msgGenerated struct {
	text string
	err  error
}

type msgCommitted struct {
	warning string
	err     error
}
