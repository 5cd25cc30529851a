package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizard_CollectsSettings(t *testing.T) {
	var m tea.Model = initialModel([]Step{NewAPIKeyStep(), NewModeStep(), NewFinalizationStep()})

	send := func(msg tea.Msg) {
		m, _ = m.Update(msg)
	}

	// Empty key is rejected
	send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, m.(model).currentStep)

	send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc123")})
	send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, m.(model).currentStep)

	send(tea.KeyMsg{Type: tea.KeyDown})
	send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 2, m.(model).currentStep)

	send(nextMsg{})

	state := m.(model).state
	assert.Equal(t, "abc123", state.Config.APIKey)
	assert.True(t, state.Config.Test)
	assert.Equal(t, DefaultBaseURL, state.Config.BaseURL)
	assert.Equal(t, "0", state.Config.Debug)
	assert.Equal(t, "Configuration complete!\n", m.View())
}

func TestWizard_CtrlCQuits(t *testing.T) {
	var m tea.Model = initialModel(getSteps())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.(model).quitting)
	assert.Equal(t, "Setup cancelled.\n", m.View())
}

func TestSaveEnv(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runtime")

	cfg := &SetupConfig{APIKey: "abc123", BaseURL: DefaultBaseURL, Test: true, Debug: "0"}
	require.NoError(t, SaveEnv(dir, cfg))

	values, err := godotenv.Read(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"AP_API_KEY":      "abc123",
		"AP_API_BASE_URL": DefaultBaseURL,
		"ELEX_TEST":       "true",
		"ELEX_DEBUG":      "0",
	}, values)

	info, err := os.Stat(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	assert.Error(t, SaveEnv(dir, cfg), "existing .env must not be replaced")
}
