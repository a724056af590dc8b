package patterns

import (
	"os"

	"github.com/XiaoConstantine/agentic-go/pkg/errors"
	"github.com/XiaoConstantine/agentic-go/pkg/tools"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the shared configuration bag recognized by the pattern
// constructors. A zero value means "use the pattern default"; negative
// bounds are rejected by Validate.
type Config struct {
	// MaxIterations bounds the Reflexion loop (default 3).
	MaxIterations int `yaml:"max_iterations" validate:"gte=0"`
	// MaxDepth bounds the TreeOfThoughts search depth (default 3).
	MaxDepth int `yaml:"max_depth" validate:"gte=0"`
	// ThoughtsPerLevel is the TreeOfThoughts branching factor (default 3).
	ThoughtsPerLevel int `yaml:"thoughts_per_level" validate:"gte=0"`
	// NumAgents is recorded by MultiAgentDebate metadata. The debate
	// pipeline itself always runs its three built-in personas.
	NumAgents int `yaml:"num_agents" validate:"gte=0"`
	// Tools is the registry used by ToolUse; nil selects the default set.
	Tools *tools.Registry `yaml:"-"`
}

var validate = validator.New()

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, errors.ValidationFailed, "invalid pattern configuration")
	}
	return nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, errors.InvalidInput, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.InvalidInput, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
