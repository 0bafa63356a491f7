package ansi

import (
	"fmt"
	"io"
	"maps"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output renders markup for one destination. The markup flag and the style
// table are fixed when the Output is created, so an Output is safe for
// concurrent use.
type Output struct {
	markupEnabled bool
	markupMap     map[string]string
}

// Option configures an Output under construction.
type Option func(*options)

type options struct {
	env    Environ
	markup *bool
	styles map[string]string
}

// WithEnviron sets the environment used for capability detection.
func WithEnviron(env Environ) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithMarkup skips capability detection and enables or disables markup.
func WithMarkup(enabled bool) Option {
	return func(o *options) {
		o.markup = &enabled
	}
}

// WithStyles adds entries to the style table, replacing built-in entries of
// the same name. Values that are neither empty nor an escape sequence are
// ignored.
func WithStyles(styles map[string]string) Option {
	return func(o *options) {
		if o.styles == nil {
			o.styles = make(map[string]string, len(styles))
		}
		maps.Copy(o.styles, styles)
	}
}

func getLogger() zerolog.Logger {
	return log.With().Str("component", "ansi.Output").Logger()
}

// New creates an Output. Unless WithMarkup is given, ShouldDoMarkup runs
// once here against the configured environment.
func New(opts ...Option) *Output {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.env == nil {
		o.env = OSEnviron()
	}

	logger := getLogger()

	enabled := false
	if o.markup != nil {
		enabled = *o.markup
		logger.Debug().Bool("markup", enabled).Msg("Markup set explicitly")
	} else {
		decision := Detect(o.env)
		enabled = decision.Enabled
		logger.Debug().
			Bool("markup", enabled).
			Str("rule", decision.Rule.String()).
			Str("var", decision.Var).
			Msg("Markup detected from environment")
	}

	table := DefaultStyles()
	for name, code := range o.styles {
		if !ValidCode(code) {
			logger.Debug().Str("style", name).Msg("Ignoring style that is not an escape sequence")
			continue
		}
		table[name] = code
	}

	return &Output{
		markupEnabled: enabled,
		markupMap:     table,
	}
}

var (
	defaultOnce   sync.Once
	defaultOutput *Output
)

// Default returns a process-wide Output built from the process environment
// on first use. Later environment changes do not affect it.
func Default() *Output {
	defaultOnce.Do(func() {
		defaultOutput = New()
	})
	return defaultOutput
}

// MarkupEnabled reports whether ProcessMarkup emits escape sequences.
func (o *Output) MarkupEnabled() bool {
	return o.markupEnabled
}

// MarkupMap returns a copy of the style table.
func (o *Output) MarkupMap() map[string]string {
	return maps.Clone(o.markupMap)
}

// Code returns the escape sequence for a style name, or "" when unknown.
func (o *Output) Code(name string) string {
	return o.markupMap[name]
}

// StripMarkup removes all tags from text whether or not markup is enabled.
func (o *Output) StripMarkup(text string) string {
	return Strip(Tokenize(text))
}

// ProcessMarkup renders the tags in text as escape sequences when markup is
// enabled, and strips them otherwise.
func (o *Output) ProcessMarkup(text string) string {
	tokens := Tokenize(text)
	if !o.markupEnabled {
		return Strip(tokens)
	}
	return Render(tokens, o.Code)
}

// FormatScenario renders a scenario name as "[name]", green when markup is
// enabled.
func (o *Output) FormatScenario(name string) string {
	label := "[" + name + "]"
	if !o.markupEnabled {
		return label
	}
	return o.Code("scenario") + label + Reset
}

// FormatLogLevel left-aligns levelName in an 8 column field and, when markup
// is enabled, styles it according to the tier of levelNo.
func (o *Output) FormatLogLevel(levelName string, levelNo Level) string {
	label := fmt.Sprintf("%-*s", LevelLabelWidth, levelName)
	if !o.markupEnabled {
		return label
	}
	code := o.Code(levelStyle(levelNo))
	if code == "" {
		return label
	}
	return code + label + Reset
}

// Sprintf formats according to a format specifier and processes the markup
// in the result.
func (o *Output) Sprintf(format string, args ...any) string {
	return o.ProcessMarkup(fmt.Sprintf(format, args...))
}

// Fprintln writes the processed text followed by a newline.
func (o *Output) Fprintln(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, o.ProcessMarkup(text))
	return err
}
