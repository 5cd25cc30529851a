package installer

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/elex/internal/config"
	"github.com/sandevgo/elex/pkg/env"
)

// SaveEnvStep writes the collected configuration to the runtime .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	if err := SaveEnv(config.GetRuntimePath(), &state.Config); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

// SaveEnv writes cfg as <dir>/.env, refusing to replace an existing file.
func SaveEnv(dir string, cfg *SetupConfig) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		return fmt.Errorf(".env file already exists at %s", envPath)
	}

	content, err := env.MarshalEnv(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(envPath, []byte(content), 0600)
}
