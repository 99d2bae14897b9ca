// Package config loads the coursework CLI configuration.
//
// A YAML file is optional. Missing fields are filled from `default` tags
// (github.com/creasty/defaults) and the result is checked against `validate`
// tags (github.com/go-playground/validator/v10).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every load, decode or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full CLI configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Caesar CaesarConfig `yaml:"caesar"`
	Merge  MergeConfig  `yaml:"merge"`
	Loss   LossConfig   `yaml:"loss"`
	Format FormatConfig `yaml:"format"`
}

type LogConfig struct {
	Level string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
}

type CaesarConfig struct {
	Shift int `yaml:"shift" default:"3"`
}

type MergeConfig struct {
	Threshold float64 `yaml:"threshold" default:"0.5" validate:"gt=0,lte=1"`
	Inclusive bool    `yaml:"inclusive"`
	Output    string  `yaml:"output" default:"yaml" validate:"oneof=yaml json text"`
}

type LossConfig struct {
	Strategy string `yaml:"strategy" default:"optimized" validate:"oneof=optimized bruteforce"`
	Top      int    `yaml:"top" default:"5" validate:"gte=0"`
}

// FormatConfig: Places -1 keeps fractions verbatim.
type FormatConfig struct {
	Symbol string `yaml:"symbol"`
	Places int    `yaml:"places" default:"-1" validate:"gte=-1"`
}

// Default returns a Config holding only default values.
func Default() *Config {
	cfg := &Config{}
	// Tags are static; Set only fails on malformed tags.
	if err := defaults.Set(cfg); err != nil {
		panic(fmt.Sprintf("config: default tags: %v", err))
	}

	return cfg
}

// Load reads path (empty → defaults only) and validates the result.
//
// Defaults are applied BEFORE decoding, so an explicit zero in the file
// (caesar.shift: 0, format.places: 0) is kept rather than replaced.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cfg against its validate tags and reports every failing
// field in one error.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
