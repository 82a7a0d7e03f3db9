package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const serviceLabel = "Enter your service name: "

type model struct {
	input    textinput.Model
	hint     lipgloss.Style
	known    int
	value    string
	done     bool
	canceled bool
}

func newModel(known []string) model {
	input := textinput.New()
	input.Prompt = serviceLabel
	input.ShowSuggestions = len(known) > 0
	input.SetSuggestions(known)
	input.Focus()

	return model{
		input: input,
		hint:  lipgloss.NewStyle().Faint(true),
		known: len(known),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done {
		return ""
	}

	hint := "enter to confirm, esc to cancel"
	if m.known > 0 {
		hint = fmt.Sprintf("tab completes from %d stored services, %s", m.known, hint)
	}

	return m.input.View() + "\n" + m.hint.Render(hint) + "\n"
}
