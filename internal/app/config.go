package app

import (
	"errors"
	"fmt"

	"github.com/vk/amazego/internal/generator"
	"github.com/vk/amazego/internal/nodeid"
)

// DefaultForkAfter is used when neither the CLI nor a manifest sets a threshold.
const DefaultForkAfter = 4

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MazePath string // .hcl manifest, directory, or text layout
	Name     string // run only this definition

	// ForkAfter overrides every manifest value when >= 0. Negative means
	// "use the manifest value, else DefaultForkAfter".
	ForkAfter int

	// Start overrides each maze's own start node.
	Start *nodeid.ID

	Generate string // "WxH"; replaces MazePath
	Seed     uint64

	Render      bool
	NoColor     bool
	RequirePath bool

	SocketIOURL     string
	HealthcheckPort int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	switch {
	case cfg.MazePath == "" && cfg.Generate == "":
		return nil, errors.New("a maze path or -generate is required")
	case cfg.MazePath != "" && cfg.Generate != "":
		return nil, errors.New("a maze path and -generate cannot be combined")
	}

	if cfg.Generate != "" {
		if _, _, err := generator.ParseSize(cfg.Generate); err != nil {
			return nil, err
		}
		if cfg.Name != "" {
			return nil, errors.New("-name only applies to loaded manifests")
		}
	}

	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return &cfg, nil
}

// forkAfterFor resolves the threshold for one maze.
func (c *Config) forkAfterFor(manifest *int) int {
	if c.ForkAfter >= 0 {
		return c.ForkAfter
	}
	if manifest != nil {
		return *manifest
	}
	return DefaultForkAfter
}
