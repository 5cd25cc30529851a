package installer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// APIKeyStep collects the AP elections API key
type APIKeyStep struct {
	input textinput.Model
	err   string
}

func NewAPIKeyStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "AP API key"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &APIKeyStep{
		input: ti,
	}
}

func (s *APIKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *APIKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		key := strings.TrimSpace(s.input.Value())
		if key == "" {
			s.err = "the API key cannot be empty"
			return s, nil
		}
		state.Config.APIKey = key
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.err = ""
	return s, cmd
}

func (s *APIKeyStep) View(state *InstallState) string {
	var hint string
	if s.err != "" {
		hint = errorStyle.Render(s.err) + "\n\n"
	}
	return fmt.Sprintf("Enter your AP elections API key:\n\n%s\n\n%s(press enter to confirm)\n", s.input.View(), hint)
}
