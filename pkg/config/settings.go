package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/dnscheck"
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Settings is the environment configuration of formkit binaries.
// Every variable is prefixed with FORMKIT_.
type Settings struct {
	Password     PasswordSettings `envPrefix:"FORMKIT_PASSWORD_"`
	URL          URLSettings      `envPrefix:"FORMKIT_URL_"`
	Log          LogSettings      `envPrefix:"FORMKIT_LOG_"`
	MessagesFile string           `env:"FORMKIT_MESSAGES_FILE"`
}

type PasswordSettings struct {
	MinLength        int    `env:"MIN_LENGTH" envDefault:"12" validate:"gte=0"`
	MaxLength        int    `env:"MAX_LENGTH" envDefault:"255" validate:"gte=1,gtefield=MinLength"`
	RequireLowercase bool   `env:"REQUIRE_LOWERCASE" envDefault:"true"`
	MinLowercase     int    `env:"MIN_LOWERCASE" envDefault:"1" validate:"gte=0"`
	RequireUppercase bool   `env:"REQUIRE_UPPERCASE" envDefault:"true"`
	MinUppercase     int    `env:"MIN_UPPERCASE" envDefault:"1" validate:"gte=0"`
	RequireDigits    bool   `env:"REQUIRE_DIGITS" envDefault:"true"`
	MinDigits        int    `env:"MIN_DIGITS" envDefault:"1" validate:"gte=0"`
	RequireSpecial   bool   `env:"REQUIRE_SPECIAL" envDefault:"true"`
	MinSpecial       int    `env:"MIN_SPECIAL" envDefault:"1" validate:"gte=0"`
	SpecialChars     string `env:"SPECIAL_CHARS"`
}

// Config converts the settings. An empty special set means the default set.
func (s PasswordSettings) Config() validator.PasswordConfig {
	special := s.SpecialChars
	if special == "" {
		special = validator.DefaultSpecialChars
	}
	return validator.PasswordConfig{
		MinLength:        s.MinLength,
		MaxLength:        s.MaxLength,
		RequireLowercase: s.RequireLowercase,
		MinLowercase:     s.MinLowercase,
		RequireUppercase: s.RequireUppercase,
		MinUppercase:     s.MinUppercase,
		RequireDigits:    s.RequireDigits,
		MinDigits:        s.MinDigits,
		RequireSpecial:   s.RequireSpecial,
		MinSpecial:       s.MinSpecial,
		SpecialChars:     special,
	}
}

type URLSettings struct {
	Schemes        []string      `env:"SCHEMES" envSeparator:"," envDefault:"http,https,ftp,ftps" validate:"min=1,dive,urlscheme"`
	Protocol       string        `env:"PROTOCOL" envDefault:"absolute" validate:"oneof=none relative absolute"`
	AllowBasicAuth bool          `env:"ALLOW_BASIC_AUTH"`
	AllowDomains   bool          `env:"ALLOW_DOMAINS" envDefault:"true"`
	AllowIPv4      bool          `env:"ALLOW_IPV4" envDefault:"true"`
	AllowIPv6      bool          `env:"ALLOW_IPV6" envDefault:"true"`
	AllowPorts     bool          `env:"ALLOW_PORTS" envDefault:"true"`
	Hostnames      []string      `env:"HOSTNAMES" envSeparator:","`
	Ports          []string      `env:"PORTS" envSeparator:"," validate:"dive,omitempty,numeric"`
	DNSType        string        `env:"DNS_TYPE" validate:"dnstype"`
	DNSTimeout     time.Duration `env:"DNS_TIMEOUT" envDefault:"2s" validate:"gte=0"`
}

func (s URLSettings) Config() (validator.URLConfig, error) {
	protocol, err := validator.ParseProtocol(s.Protocol)
	if err != nil {
		return validator.URLConfig{}, err
	}
	rt, err := dnscheck.ParseRecordType(s.DNSType)
	if err != nil {
		return validator.URLConfig{}, fmt.Errorf("%w: %w", validator.ErrInvalidOption, err)
	}
	return validator.URLConfig{
		AllowedSchemes:   s.Schemes,
		AllowProtocol:    protocol,
		AllowBasicAuth:   s.AllowBasicAuth,
		AllowDomains:     s.AllowDomains,
		AllowIPv4:        s.AllowIPv4,
		AllowIPv6:        s.AllowIPv6,
		AllowPorts:       s.AllowPorts,
		AllowedHostnames: s.Hostnames,
		AllowedPorts:     s.Ports,
		DNSType:          rt,
		DNSTimeout:       s.DNSTimeout,
	}, nil
}

type LogSettings struct {
	Level  string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format string `env:"FORMAT" envDefault:"text" validate:"oneof=text json"`
	Env    string `env:"ENV" envDefault:"development"`
}

// LoadSettings loads and validates Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Registry builds the default validator registry with the password and URL
// policies from s, then applies the messages file when one is configured.
func (s Settings) Registry(ctx context.Context, logger *slog.Logger) (*validator.Registry, error) {
	urlCfg, err := s.URL.Config()
	if err != nil {
		return nil, err
	}
	// fail early instead of on first resolve
	if _, err := validator.NewURL(urlCfg); err != nil {
		return nil, err
	}
	if _, err := validator.NewPassword(s.Password.Config()); err != nil {
		return nil, err
	}

	reg := validator.DefaultRegistry()
	if err := reg.Register(validator.NameURL, validator.URLFactory(urlCfg)); err != nil {
		return nil, err
	}
	if err := reg.Register(validator.NamePassword, validator.PasswordFactory(s.Password.Config())); err != nil {
		return nil, err
	}

	if s.MessagesFile != "" {
		overrides, err := messages.LoadFile(ctx, s.MessagesFile)
		if err != nil {
			return nil, err
		}
		if err := overrides.Apply(reg); err != nil {
			return nil, err
		}
		if logger != nil {
			logger.DebugContext(ctx, "message overrides applied", "file", s.MessagesFile, "validators", len(overrides))
		}
	}
	return reg, nil
}
