// Package config loads the YAML settings that seed a staff.Registry.
package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"go-staff/staff"
)

const defaultConfigYAML = `# staffctl configuration
email_domain: email.com

# Raise multipliers per kind. Leave developer/manager out to keep the
# built-in defaults, or set 0 to use the employee value.
raise:
  employee: 1.04
  developer: 1.10

log_level: warn
`

// RaiseConfig holds multipliers per kind. A nil developer or manager value
// keeps the built-in default; 0 means "use the employee value".
type RaiseConfig struct {
	Employee  float64  `yaml:"employee"`
	Developer *float64 `yaml:"developer,omitempty"`
	Manager   *float64 `yaml:"manager,omitempty"`
}

type Config struct {
	EmailDomain string      `yaml:"email_domain"`
	Raise       RaiseConfig `yaml:"raise"`
	LogLevel    string      `yaml:"log_level"`
}

func Default() Config {
	return Config{
		EmailDomain: staff.DefaultEmailDomain,
		Raise:       RaiseConfig{Employee: staff.DefaultEmployeeRaise},
		LogLevel:    "warn",
	}
}

// DefaultYAML is a commented starting file equivalent to Default().
func DefaultYAML() string { return defaultConfigYAML }

// Load reads path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.EmailDomain = strings.TrimSpace(c.EmailDomain)
	if c.EmailDomain == "" {
		c.EmailDomain = staff.DefaultEmailDomain
	}
	if c.Raise.Employee == 0 {
		c.Raise.Employee = staff.DefaultEmployeeRaise
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

func (c Config) validate() error {
	if c.Raise.Employee < 0 {
		return fmt.Errorf("raise.employee must not be negative")
	}
	if c.Raise.Developer != nil && *c.Raise.Developer < 0 {
		return fmt.Errorf("raise.developer must not be negative")
	}
	if c.Raise.Manager != nil && *c.Raise.Manager < 0 {
		return fmt.Errorf("raise.manager must not be negative")
	}
	if strings.ContainsAny(c.EmailDomain, "@ ") {
		return fmt.Errorf("email_domain %q is not a domain", c.EmailDomain)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Options converts c into registry options.
func (c Config) Options() []staff.Option {
	opts := []staff.Option{
		staff.WithEmailDomain(c.EmailDomain),
		staff.WithRaise(staff.KindEmployee, c.Raise.Employee),
	}
	if c.Raise.Developer != nil {
		opts = append(opts, staff.WithRaise(staff.KindDeveloper, *c.Raise.Developer))
	}
	if c.Raise.Manager != nil {
		opts = append(opts, staff.WithRaise(staff.KindManager, *c.Raise.Manager))
	}
	return opts
}
