// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"employee_onboarding/internal/common"
)

// Directory group listings are capped by the Admin SDK at 200 per page.
const maxGroupPageSize = 200

// Config holds all configuration for the onboarding tool. Tokens and org
// identifiers come from the process environment (or a .env file); nothing
// is read ad hoc at call sites — the struct is built once in Load and
// passed into each client constructor.
type Config struct {
	// Slack
	SlackToken string `mapstructure:"SLACK_TOKEN" validate:"required"`

	// Trello
	TrelloToken string `mapstructure:"TRELLO_TOKEN" validate:"required"`
	TrelloKey   string `mapstructure:"TRELLO_KEY" validate:"required"`
	TrelloOrg   string `mapstructure:"TRELLO_ORG" validate:"required"`

	// GitHub
	GitHubUser string `mapstructure:"GITHUB_USER" validate:"required"`
	GitHubKey  string `mapstructure:"GITHUB_KEY" validate:"required"`
	GitHubOrg  string `mapstructure:"GITHUB_ORG" validate:"required"`

	// Google Workspace
	OrgDomain              string `mapstructure:"ORG_DOMAIN"`
	GoogleClientSecretFile string `mapstructure:"GOOGLE_CLIENT_SECRET_FILE"`
	GoogleCredentialsCache string `mapstructure:"GOOGLE_CREDENTIALS_CACHE"`
	GoogleCustomerID       string `mapstructure:"GOOGLE_CUSTOMER_ID"`
	GroupPageSize          int64  `mapstructure:"GROUP_PAGE_SIZE"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

// Load attempts to load configuration from a .env file (if present) and
// environment variables. Missing required variables are reported together
// in a single configuration error, before any prompt is shown.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("SLACK_TOKEN", "")
	v.SetDefault("TRELLO_TOKEN", "")
	v.SetDefault("TRELLO_KEY", "")
	v.SetDefault("TRELLO_ORG", "")
	v.SetDefault("GITHUB_USER", "")
	v.SetDefault("GITHUB_KEY", "")
	v.SetDefault("GITHUB_ORG", "")

	v.SetDefault("ORG_DOMAIN", "connected-ventures.com")
	v.SetDefault("GOOGLE_CLIENT_SECRET_FILE", "client_secret.json")
	v.SetDefault("GOOGLE_CREDENTIALS_CACHE", "~/.credentials/employee-onboarding.json")
	v.SetDefault("GOOGLE_CUSTOMER_ID", "my_customer")
	v.SetDefault("GROUP_PAGE_SIZE", maxGroupPageSize)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, common.NewConfigError("error unmarshalling configuration").Wrap(err)
	}

	if cfg.GroupPageSize <= 0 || cfg.GroupPageSize > maxGroupPageSize {
		cfg.GroupPageSize = maxGroupPageSize
	}

	expanded, err := expandHome(cfg.GoogleCredentialsCache)
	if err != nil {
		return nil, common.NewConfigError("error resolving GOOGLE_CREDENTIALS_CACHE path").Wrap(err)
	}
	cfg.GoogleCredentialsCache = expanded

	if err := validator.New().Struct(&cfg); err != nil {
		var verrs validator.ValidationErrors
		missing := make([]string, 0)
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				missing = append(missing, envNameForField(fe.StructField()))
			}
		}
		return nil, common.NewConfigError(
			fmt.Sprintf("missing required environment variables: %s", strings.Join(missing, ", "))).Wrap(err)
	}

	return &cfg, nil
}

func expandHome(path string) (string, error) {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// envNameForField maps a Config struct field back to its environment
// variable name so validation failures read like the operator's .env file.
func envNameForField(field string) string {
	t, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return field
	}
	if tag := t.Tag.Get("mapstructure"); tag != "" {
		return tag
	}
	return field
}
