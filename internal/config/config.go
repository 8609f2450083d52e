package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const DefaultPath = "internal/config/.env"

var ErrInvalidEnv = errors.New("environment can only be dev or prod")

var validate = validator.New()

type Config struct {
	Env             string `mapstructure:"ENV" validate:"oneof=dev prod"`
	Port            int    `mapstructure:"PORT" validate:"min=1,max=65535"`
	Allowed_origins string `mapstructure:"ALLOWED_ORIGINS" validate:"required"`
	Log_file        string `mapstructure:"LOG_FILE"`
}

// Origins splits ALLOWED_ORIGINS on commas, dropping blanks.
func (c *Config) Origins() []string {
	var origins []string

	for _, o := range strings.Split(c.Allowed_origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}

// Load reads the optional .env file at path and then the process environment.
// A missing file is not an error; every key has a default.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", 8080)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("LOG_FILE", "")

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading in config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading in config: %w", err)
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	err := validate.Struct(c)

	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Env" {
				return fmt.Errorf("%w, got %q", ErrInvalidEnv, c.Env)
			}
		}
	}

	return fmt.Errorf("invalid config: %w", err)
}
