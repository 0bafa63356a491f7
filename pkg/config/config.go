package config

import (
	"slices"
	"strings"

	"github.com/arthur-debert/ansiout/pkg/ansi"
	"github.com/arthur-debert/ansiout/pkg/errors"
)

// Config is the decoded configuration.
type Config struct {
	Color  string              `koanf:"color"`
	Log    LogConfig           `koanf:"log"`
	Styles map[string][]string `koanf:"styles"`

	// Source is the config file that was loaded, empty when none was found.
	Source string `koanf:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// ColorMode selects how markup is enabled.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// String returns the canonical name of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ColorModes lists the canonical mode names.
func ColorModes() []string {
	return []string{ColorAuto.String(), ColorAlways.String(), ColorNever.String()}
}

var falsy = []string{"no", "off", "0", "false", "none"}

// ParseColorMode parses auto, always or never. Boolean-like words are also
// accepted: truthy values mean always and no/off/0/false/none mean never.
func ParseColorMode(s string) (ColorMode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "" || v == "auto":
		return ColorAuto, nil
	case v == "always" || v == "force" || ansi.ToBool(v):
		return ColorAlways, nil
	case v == "never" || slices.Contains(falsy, v):
		return ColorNever, nil
	}
	return ColorAuto, errors.Newf(errors.ErrConfigValid, "color must be one of %v, got %q", ColorModes(), s).
		WithDetail("color", s)
}

// ColorMode returns the parsed color setting.
func (c *Config) ColorMode() (ColorMode, error) {
	return ParseColorMode(c.Color)
}

// StyleCodes composes the configured extra styles into escape sequences.
func (c *Config) StyleCodes() (map[string]string, error) {
	codes := make(map[string]string, len(c.Styles))
	for name, primitives := range c.Styles {
		code, err := ansi.Compose(primitives...)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid style %q", name).
				WithDetail("style", name)
		}
		codes[name] = code
	}
	return codes, nil
}

// Validate checks the color mode and every style definition.
func (c *Config) Validate() error {
	if _, err := c.ColorMode(); err != nil {
		return err
	}
	if _, err := c.StyleCodes(); err != nil {
		return err
	}
	return nil
}

// Options converts the configuration into options for ansi.New. env is used
// for capability detection in auto mode.
func (c *Config) Options(env ansi.Environ) ([]ansi.Option, error) {
	mode, err := c.ColorMode()
	if err != nil {
		return nil, err
	}
	styles, err := c.StyleCodes()
	if err != nil {
		return nil, err
	}

	opts := []ansi.Option{ansi.WithEnviron(env), ansi.WithStyles(styles)}
	switch mode {
	case ColorAlways:
		opts = append(opts, ansi.WithMarkup(true))
	case ColorNever:
		opts = append(opts, ansi.WithMarkup(false))
	}
	return opts, nil
}

// NewOutput builds an ansi.Output from the configuration.
func (c *Config) NewOutput(env ansi.Environ) (*ansi.Output, error) {
	opts, err := c.Options(env)
	if err != nil {
		return nil, err
	}
	return ansi.New(opts...), nil
}
