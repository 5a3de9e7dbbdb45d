// The `wizard` package asks a single question on the terminal. Commands fall
// back to it for every required value that was not passed as a flag.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	prompt    string
	textInput *textinput.Model
	err       error
}

func initialModel(prompt string, placeholder string) model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return model{
		prompt:    prompt,
		textInput: &ti,
		err:       nil,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type errMsg error

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter, tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

	// We handle errors just like any other message
	case errMsg:
		m.err = msg
		return m, nil
	}

	*m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return fmt.Sprintf(
		"%s\n\n%s",
		m.prompt,
		m.textInput.View(),
	) + "\n"
}

// Ask runs a one-question prompt and returns the trimmed answer. An empty
// answer is valid; callers decide whether to apply a default or bail.
func Ask(prompt string, placeholder string) (string, error) {
	m := initialModel(prompt, placeholder)
	if err := tea.NewProgram(m).Start(); err != nil {
		return "", err
	}
	return strings.TrimSpace(m.textInput.Value()), nil
}
