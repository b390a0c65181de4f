package config

import (
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// App is the configuration of the formguard service and CLI.
type App struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"formguard"`
	LogLevel string `env:"LOG_LEVEL"`

	// DeniedEmailDomains overrides the consumer-mail deny-list. Empty keeps
	// the built-in list.
	DeniedEmailDomains []string `env:"FORMGUARD_DENIED_EMAIL_DOMAINS" envSeparator:","`
	FormsFile          string   `env:"FORMGUARD_FORMS_FILE" envDefault:"forms.yaml"`

	HTTP httpserver.Config
}

// RegistryOptions returns the rule registry options implied by the config.
func (a App) RegistryOptions() []validator.Option {
	if len(a.DeniedEmailDomains) == 0 {
		return nil
	}
	return []validator.Option{validator.WithDeniedDomains(a.DeniedEmailDomains...)}
}

// LoggerOptions returns logger options for the environment. An explicit
// LOG_LEVEL wins over the environment default.
func (a App) LoggerOptions() []logger.Option {
	opts := []logger.Option{logger.WithEnvironment(a.Env, a.Name)}
	if a.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(a.LogLevel))
	}
	return opts
}
