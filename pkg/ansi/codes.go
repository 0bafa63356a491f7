package ansi

import (
	"slices"
	"strings"

	"github.com/arthur-debert/ansiout/pkg/errors"
	"github.com/muesli/termenv"
)

// SGR escape sequences used by the style table.
var (
	Reset     = sgr(termenv.ResetSeq)
	Bold      = sgr(termenv.BoldSeq)
	Dim       = sgr(termenv.FaintSeq)
	Italic    = sgr(termenv.ItalicSeq)
	Underline = sgr(termenv.UnderlineSeq)

	Red     = sgr(termenv.ANSIRed.Sequence(false))
	Green   = sgr(termenv.ANSIGreen.Sequence(false))
	Yellow  = sgr(termenv.ANSIYellow.Sequence(false))
	Blue    = sgr(termenv.ANSIBlue.Sequence(false))
	Magenta = sgr(termenv.ANSIMagenta.Sequence(false))
	Cyan    = sgr(termenv.ANSICyan.Sequence(false))
)

// EscapePrefix starts every non-empty code in a style table.
const EscapePrefix = termenv.CSI

func sgr(seq string) string {
	return termenv.CSI + seq + "m"
}

// primitives are the building blocks accepted by Compose.
var primitives = map[string]string{
	"red":       Red,
	"green":     Green,
	"yellow":    Yellow,
	"blue":      Blue,
	"magenta":   Magenta,
	"cyan":      Cyan,
	"bold":      Bold,
	"dim":       Dim,
	"italic":    Italic,
	"underline": Underline,
}

// DefaultStyles returns a fresh copy of the built-in style table.
func DefaultStyles() map[string]string {
	styles := map[string]string{
		"reset":  Reset,
		"normal": "",

		// semantic styles
		"info":          Dim + Cyan,
		"warning":       Magenta,
		"danger":        Bold + Red,
		"scenario":      Green,
		"action":        Green,
		"section_title": Bold + Cyan,

		// log level labels
		"logging.level.info":    Blue,
		"logging.level.warning": Red,
		"logging.level.error":   Bold,
	}
	for name, code := range primitives {
		styles[name] = code
	}
	return styles
}

// Primitives lists the names accepted by Compose, sorted.
func Primitives() []string {
	names := make([]string, 0, len(primitives))
	for name := range primitives {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Compose concatenates the codes of the named primitives. It fails with an
// errors.ErrStyleInvalid error when a name is not a primitive.
func Compose(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		code, ok := primitives[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return "", errors.Newf(errors.ErrStyleInvalid, "unknown style primitive %q", name).
				WithDetail("primitive", name)
		}
		b.WriteString(code)
	}
	return b.String(), nil
}

// ValidCode reports whether code may be stored in a style table.
func ValidCode(code string) bool {
	return code == "" || strings.HasPrefix(code, EscapePrefix)
}
