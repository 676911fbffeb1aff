package llm

import (
	"fmt"
	"time"
)

// FactoryConfig is the provider-neutral construction input, resolved once
// from application config.
type FactoryConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// NewClient builds a gateway client for the configured provider. Provider
// "none" yields a stub that always triggers the deterministic fallback path.
func NewClient(cfg FactoryConfig) (Client, error) {
	switch cfg.Provider {
	case "openai", "":
		return NewOpenAIClient(OpenAIConfig{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}), nil
	case "none":
		return &StubClient{}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
