package validate

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingEnv is returned when the environment cannot be parsed into an
// engine configuration.
var ErrParsingEnv = errors.New("failed to parse environment into engine configuration")

type envSettings struct {
	StrictMode       bool `env:"VALGUARD_STRICT_MODE" envDefault:"true"`
	AutoExtractNames bool `env:"VALGUARD_AUTO_EXTRACT_NAMES" envDefault:"true"`
	RaiseOnFailure   bool `env:"VALGUARD_RAISE_ON_FAILURE" envDefault:"true"`
}

// NewFromEnv builds an engine configured from VALGUARD_* environment
// variables. Without arguments it best-effort loads a .env file from the
// working directory first; explicitly named env files must exist.
func NewFromEnv(envFiles ...string) (*Engine, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("load env files: %w", err)
		}
	} else {
		// The default .env file might not exist and that's ok.
		_ = godotenv.Load()
	}

	var s envSettings
	if err := env.Parse(&s); err != nil {
		return nil, errors.Join(ErrParsingEnv, err)
	}

	return New(
		WithStrictMode(s.StrictMode),
		WithAutoExtractNames(s.AutoExtractNames),
		WithRaiseOnFailure(s.RaiseOnFailure),
	), nil
}
