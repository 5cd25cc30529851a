package installer

// SetupConfig is what the wizard writes to the runtime .env file.
type SetupConfig struct {
	APIKey  string `env:"AP_API_KEY"`
	BaseURL string `env:"AP_API_BASE_URL"`
	Test    bool   `env:"ELEX_TEST"`
	Debug   string `env:"ELEX_DEBUG"`
}

type InstallState struct {
	Config SetupConfig
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
