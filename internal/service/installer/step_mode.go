package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ModeStep picks whether requests ask for live or test results by default
type ModeStep struct {
	choices []string
	cursor  int
}

func NewModeStep() Step {
	return &ModeStep{
		choices: []string{"Live results", "Test results"},
	}
}

func (s *ModeStep) Init() tea.Cmd {
	return nil
}

func (s *ModeStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.Config.Test = s.cursor == 1
			return nil, nil
		}
	}
	return s, nil
}

func (s *ModeStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Which results should elex request by default?\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
