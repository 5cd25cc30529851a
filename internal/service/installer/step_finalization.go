package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep fills the defaults the user was not asked about
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.Config.BaseURL == "" {
		state.Config.BaseURL = DefaultBaseURL
	}
	if state.Config.Debug == "" {
		state.Config.Debug = "0"
	}
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
