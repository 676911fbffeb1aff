// Package config holds all bidforge configuration: model settings for the
// completion gateway, pipeline layout, and the alias/template data that
// drives extraction. Everything here is loaded, not computed; components
// receive resolved values at construction time and never look anything up
// by string key at call time.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all bidforge configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Completion gateway settings
	LLM LLMConfig `yaml:"llm"`

	// Pipeline layout and budgets
	Pipeline PipelineConfig `yaml:"pipeline"`

	// Chapter-boundary aliases and fallback templates
	Extraction ExtractionConfig `yaml:"extraction"`

	// Outline prompt and fallback
	Outline OutlineConfig `yaml:"outline"`

	// Compliance categories for the sanity check
	Sanity SanityConfig `yaml:"sanity"`

	Logging LoggingConfig `yaml:"logging"`
}

// LLMConfig configures the completion gateway. Model and temperature are
// resolved once when the gateway client is built, never per call.
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // openai, none
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float64 `yaml:"temperature"`
	Timeout     string  `yaml:"timeout"`
	MaxRetries  int     `yaml:"max_retries"`
}

// PipelineConfig configures session storage and stage budgets.
type PipelineConfig struct {
	// SessionsDir is the root under which per-session artifact directories
	// are created.
	SessionsDir string `yaml:"sessions_dir"`

	// SpecPromptBudget caps how many characters of the specification excerpt
	// are sent to the gateway when outlining. Truncation is always from the
	// start of the excerpt.
	SpecPromptBudget int `yaml:"spec_prompt_budget"`

	// SpecAppendixBudget caps the specification appendix embedded in the
	// assembled draft.
	SpecAppendixBudget int `yaml:"spec_appendix_budget"`
}

// LoggingConfig configures the zap logger built by the CLI.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration, including the literal
// alias lists and fallback templates.
func DefaultConfig() *Config {
	return &Config{
		Name:    "bidforge",
		Version: "0.3.0",

		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "qwen-plus",
			BaseURL:     "https://dashscope.aliyuncs.com/compatible-mode/v1",
			Temperature: 0.2,
			Timeout:     "120s",
			MaxRetries:  1,
		},

		Pipeline: PipelineConfig{
			SessionsDir:        "sessions",
			SpecPromptBudget:   12000,
			SpecAppendixBudget: 20000,
		},

		Extraction: defaultExtractionConfig(),
		Outline:    defaultOutlineConfig(),
		Sanity:     defaultSanityConfig(),

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets environment variables override file settings.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BIDFORGE_API_KEY"); v != "" {
		c.LLM.APIKey = v
		if c.LLM.Provider == "" {
			c.LLM.Provider = "openai"
		}
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = v
		if c.LLM.Provider == "" {
			c.LLM.Provider = "openai"
		}
	}
	if v := os.Getenv("BIDFORGE_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("BIDFORGE_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("BIDFORGE_SESSIONS_DIR"); v != "" {
		c.Pipeline.SessionsDir = v
	}
}

// GetLLMTimeout returns the gateway timeout as a duration.
func (c *Config) GetLLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Pipeline.SpecPromptBudget <= 0 {
		return fmt.Errorf("pipeline.spec_prompt_budget must be positive")
	}
	if c.Pipeline.SpecAppendixBudget <= 0 {
		return fmt.Errorf("pipeline.spec_appendix_budget must be positive")
	}
	if len(c.Extraction.DefaultSkeleton) == 0 {
		return fmt.Errorf("extraction.default_skeleton must not be empty")
	}
	if len(c.Sanity.Categories) == 0 {
		return fmt.Errorf("sanity.categories must not be empty")
	}
	for _, cat := range c.Sanity.Categories {
		if cat.Name == "" || len(cat.Keywords) == 0 {
			return fmt.Errorf("sanity category needs a name and at least one keyword")
		}
	}
	return nil
}
