// Package wizard implements the interactive first-run setup.
package wizard

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eaglekit/ek/internal/domain"
)

// Step is the question currently shown.
type Step int

const (
	StepName Step = iota
	StepPolicy
	StepDone
)

// DefaultName is used when neither a saved name nor $USER is available.
const DefaultName = "dev"

// Answers is the outcome of a wizard session.
type Answers struct {
	Name      string
	Policy    domain.IgnorePolicy
	Cancelled bool
}

// Model is the setup wizard model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Components
	keys      KeyMap
	styles    Styles
	nameInput textinput.Model
	help      help.Model

	// State
	policies []domain.IgnorePolicy
	answers  Answers

	// Numeric state
	cursor int
	step   Step
}

// New creates a wizard prefilled with name and policy.
func New(name string, policy domain.IgnorePolicy) *Model {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	ni := textinput.New()
	ni.Placeholder = name
	ni.SetValue(name)
	ni.CharLimit = 100
	ni.Focus()

	policies := domain.AllIgnorePolicies()
	cursor := 0
	for i, p := range policies {
		if p == policy {
			cursor = i
		}
	}

	return &Model{
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		nameInput: ni,
		help:      help.New(),
		policies:  policies,
		cursor:    cursor,
		step:      StepName,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Answers returns what the user chose so far.
func (m *Model) Answers() Answers {
	return m.answers
}

// Step returns the current step.
func (m *Model) Step() Step {
	return m.step
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.keys.Cancel) {
		m.answers.Cancelled = true
		return m, tea.Quit
	}
	switch m.step { //nolint:exhaustive // StepDone ignores input
	case StepName:
		return m.handleName(keyMsg)
	case StepPolicy:
		return m.handlePolicy(keyMsg)
	}
	return m, nil
}

func (m *Model) handleName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Next) {
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			name = m.nameInput.Placeholder
		}
		m.answers.Name = name
		m.nameInput.Blur()
		m.step = StepPolicy
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) handlePolicy(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.policies)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Back):
		m.step = StepName
		m.nameInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Next):
		m.answers.Policy = m.policies[m.cursor]
		m.step = StepDone
		return m, tea.Quit
	}
	return m, nil
}

// View renders the wizard.
func (m *Model) View() string {
	if m.step == StepDone || m.answers.Cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("eaglekit setup"))
	b.WriteString("\n")

	switch m.step { //nolint:exhaustive // StepDone returns early
	case StepName:
		b.WriteString(m.styles.Question.Render("Your name (used as the comment author)"))
		b.WriteString("\n")
		b.WriteString(m.nameInput.View())
	case StepPolicy:
		b.WriteString(m.styles.Question.Render("Default ignore policy for new projects"))
		b.WriteString("\n")
		for i, p := range m.policies {
			marker, style := "  ", m.styles.Normal
			if i == m.cursor {
				marker, style = "> ", m.styles.Selected
			}
			b.WriteString(style.Render(fmt.Sprintf("%s%-7s", marker, p)))
			b.WriteString(" ")
			b.WriteString(m.styles.Detail.Render(p.Describe()))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.styles.Help.Render(m.help.ShortHelpView(m.keys.ShortHelp(m.step))))
	return m.styles.Frame.Render(b.String())
}

// Run shows the wizard on the given terminal streams and returns the answers.
func Run(ctx context.Context, in io.Reader, out io.Writer, name string, policy domain.IgnorePolicy) (Answers, error) {
	m := New(name, policy)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return Answers{}, fmt.Errorf("setup wizard: %w", err)
	}
	fm, ok := final.(*Model)
	if !ok {
		return Answers{}, fmt.Errorf("setup wizard: unexpected model %T", final)
	}
	return fm.Answers(), nil
}
