package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jharland/commit-pilot/internal/config"
	"github.com/jharland/commit-pilot/internal/domain"
)

type setupStep int

const (
	setupStepProvider setupStep = iota
	setupStepAPIKey
	setupStepTypes
	setupStepCustom
	setupStepConfirm
	setupStepDone
)

// SetupModel is the interactive setup wizard. It collects a provider, a
// credential, and a commit-type taxonomy; it does not write any files.
type SetupModel struct {
	step setupStep

	providers     []string
	providerIndex int

	apiKeyInput textinput.Model

	typeCursor   int
	typeSelected []bool

	customInput textinput.Model

	completed bool

	err error
}

// NewSetup creates the wizard with defaults pre-selected.
func NewSetup() *SetupModel {
	keyIn := textinput.New()
	keyIn.Prompt = "API key: "
	keyIn.EchoMode = textinput.EchoPassword
	keyIn.EchoCharacter = '*'
	keyIn.CharLimit = 200

	customIn := textinput.New()
	customIn.Prompt = "> "
	customIn.CharLimit = 400

	selected := make([]bool, len(domain.DefaultCommitTypes))
	for i, t := range domain.DefaultCommitTypes {
		selected[i] = t.Enabled
	}

	return &SetupModel{
		step:         setupStepProvider,
		providers:    []string{config.ProviderOpenAI},
		apiKeyInput:  keyIn,
		typeSelected: selected,
		customInput:  customIn,
	}
}

func (m *SetupModel) Init() tea.Cmd {
	return nil
}

func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Clear any previous validation error on input/navigation.
		// Errors should not lock the user out of the wizard.
		if m.err != nil {
			m.err = nil
		}

		if msg.String() == "ctrl+c" {
			m.completed = false
			return m, tea.Quit
		}

		switch m.step {
		case setupStepProvider:
			return m.updateProvider(msg)
		case setupStepAPIKey:
			return m.updateTextStep(msg, &m.apiKeyInput, true, func() {
				m.step = setupStepTypes
			})
		case setupStepTypes:
			return m.updateTypes(msg)
		case setupStepCustom:
			return m.updateTextStep(msg, &m.customInput, false, func() {
				m.step = setupStepConfirm
			})
		case setupStepConfirm:
			return m.updateConfirm(msg)
		case setupStepDone:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *SetupModel) View() string {
	var v string
	switch m.step {
	case setupStepProvider:
		v = m.viewProvider()
	case setupStepAPIKey:
		v = m.viewText("API key", "Enter your provider API key. Paste with Ctrl+V (or your terminal paste).", m.apiKeyInput.View())
	case setupStepTypes:
		v = m.viewTypes()
	case setupStepCustom:
		v = m.viewText("Custom commit types (optional)", "Comma-separated name:description pairs, e.g. build:ci tweaks, deps:dependency bumps. Leave empty to skip.", m.customInput.View())
	case setupStepConfirm:
		v = m.viewConfirm()
	case setupStepDone:
		v = "Setup complete.\n"
	}

	if m.err != nil {
		v += "\nError: " + m.err.Error() + "\n"
	}
	return v
}

func (m *SetupModel) updateProvider(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.providerIndex > 0 {
			m.providerIndex--
		}
	case "down", "j":
		if m.providerIndex < len(m.providers)-1 {
			m.providerIndex++
		}
	case "q":
		m.completed = false
		return m, tea.Quit
	case "enter":
		m.step = setupStepAPIKey
		m.apiKeyInput.Focus()
		m.apiKeyInput.CursorEnd()
	}
	return m, nil
}

func (m *SetupModel) updateTypes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case "down", "j":
		if m.typeCursor < len(domain.DefaultCommitTypes)-1 {
			m.typeCursor++
		}
	case " ":
		m.typeSelected[m.typeCursor] = !m.typeSelected[m.typeCursor]
	case "esc":
		m.step = setupStepAPIKey
		m.apiKeyInput.Focus()
	case "q":
		m.completed = false
		return m, tea.Quit
	case "enter":
		if countSelected(m.typeSelected) == 0 {
			m.err = fmt.Errorf("select at least one commit type")
			return m, nil
		}
		m.step = setupStepCustom
		m.customInput.Focus()
		m.customInput.CursorEnd()
	}
	return m, nil
}

// updateTextStep drives a textinput step. When required is true an empty
// value is rejected on enter.
func (m *SetupModel) updateTextStep(msg tea.KeyMsg, input *textinput.Model, required bool, onEnter func()) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.step = setupStepProvider
		input.Blur()
		return m, nil
	case "ctrl+v", "ctrl+shift+v", "shift+insert":
		clip, err := clipboard.ReadAll()
		if err != nil {
			m.err = fmt.Errorf("clipboard paste failed: %w", err)
			return m, nil
		}
		clip = strings.ReplaceAll(clip, "\r", "")
		clip = strings.ReplaceAll(clip, "\n", "")
		if strings.TrimSpace(clip) == "" {
			m.err = fmt.Errorf("clipboard is empty")
			return m, nil
		}
		input.SetValue(input.Value() + clip)
		input.CursorEnd()
		return m, nil
	case "enter":
		if required && strings.TrimSpace(input.Value()) == "" {
			m.err = fmt.Errorf("value cannot be empty")
			return m, nil
		}
		onEnter()
		input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

func (m *SetupModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.completed = true
		m.step = setupStepDone
		return m, tea.Quit
	case "n":
		m.step = setupStepProvider
		return m, nil
	}
	return m, nil
}

func (m *SetupModel) viewProvider() string {
	var b strings.Builder
	b.WriteString("commit-pilot setup\n\n")
	b.WriteString("Select an AI provider:\n\n")
	for i, p := range m.providers {
		prefix := "  "
		if i == m.providerIndex {
			prefix = "> "
		}
		b.WriteString(prefix + p + "\n")
	}
	b.WriteString("\nKeys: ↑/↓ select, Enter next, q quit\n")
	return b.String()
}

func (m *SetupModel) viewTypes() string {
	var b strings.Builder
	b.WriteString("commit-pilot setup\n\n")
	b.WriteString("Select the commit types to offer (at least one):\n\n")
	for i, t := range domain.DefaultCommitTypes {
		cursor := "  "
		if i == m.typeCursor {
			cursor = "> "
		}
		check := "[ ]"
		if m.typeSelected[i] {
			check = "[x]"
		}
		fmt.Fprintf(&b, "%s%s %s — %s\n", cursor, check, t.Name, t.Description)
	}
	b.WriteString("\nKeys: ↑/↓ move, Space toggle, Enter next, Esc back, q quit\n")
	return b.String()
}

func (m *SetupModel) viewText(title, hint, inputView string) string {
	return fmt.Sprintf(
		"commit-pilot setup\n\n%s\n%s\n\n%s\n\nKeys: Enter next, Esc back\n",
		title,
		hint,
		inputView,
	)
}

func (m *SetupModel) viewConfirm() string {
	types := assembleTypes(domain.DefaultCommitTypes, m.typeSelected, m.customInput.Value())
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}

	lines := []string{
		"commit-pilot setup\n",
		"Save this configuration?\n",
		fmt.Sprintf("Provider:     %s", m.providers[m.providerIndex]),
		fmt.Sprintf("API key:      %s", maskSecret(m.apiKeyInput.Value())),
		fmt.Sprintf("Commit types: %s", strings.Join(names, ", ")),
		"\nContinue? (y/n)",
	}
	return strings.Join(lines, "\n") + "\n"
}

// Result returns the assembled configuration record.
// ok is true only when the user confirmed the final step.
func (m *SetupModel) Result() (*config.Config, bool) {
	if !m.completed {
		return nil, false
	}
	return &config.Config{
		Provider:    m.providers[m.providerIndex],
		APIKey:      strings.TrimSpace(m.apiKeyInput.Value()),
		CommitTypes: assembleTypes(domain.DefaultCommitTypes, m.typeSelected, m.customInput.Value()),
	}, true
}

// assembleTypes concatenates the selected defaults with the parsed custom
// types, preserving order.
func assembleTypes(defaults []domain.DefaultCommitType, selected []bool, custom string) []domain.CommitType {
	var out []domain.CommitType
	for i, t := range defaults {
		if i < len(selected) && selected[i] {
			out = append(out, t.CommitType)
		}
	}
	return append(out, domain.ParseCustomTypes(custom)...)
}

func countSelected(selected []bool) int {
	n := 0
	for _, s := range selected {
		if s {
			n++
		}
	}
	return n
}

func maskSecret(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "(missing)"
	}
	if len(v) <= 6 {
		return "******"
	}
	return v[:3] + strings.Repeat("*", len(v)-6) + v[len(v)-3:]
}
