package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const APIKeyEnv = "AP_API_KEY"

type APConfig struct {
	APIKey  string        `env:"AP_API_KEY,required,notEmpty"`
	BaseURL string        `env:"AP_API_BASE_URL" envDefault:"https://api.ap.org/v2"`
	Timeout time.Duration `env:"AP_API_TIMEOUT" envDefault:"30s"`
}

// MissingKeyError reports a required environment variable that is unset or empty.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s environment variable is not set", e.Key)
}

// NewAPConfig reads the AP API settings from the environment. An unset or
// empty AP_API_KEY is reported as *MissingKeyError.
func NewAPConfig() (*APConfig, error) {
	c := &APConfig{}
	if err := env.Parse(c); err != nil {
		if key, ok := missingKey(err); ok {
			return nil, &MissingKeyError{Key: key}
		}
		return nil, fmt.Errorf("parse AP config: %w", err)
	}
	return c, nil
}

func missingKey(err error) (string, bool) {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return "", false
	}
	for _, e := range agg.Errors {
		var notSet env.VarIsNotSetError
		if errors.As(e, &notSet) {
			return notSet.Key, true
		}
		var empty env.EmptyVarError
		if errors.As(e, &empty) {
			return empty.Key, true
		}
	}
	return "", false
}
