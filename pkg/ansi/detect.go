package ansi

import "strings"

// Environment variables consulted by ShouldDoMarkup.
const (
	EnvNoColor           = "NO_COLOR"
	EnvForceColor        = "FORCE_COLOR"
	EnvPyColors          = "PY_COLORS"
	EnvCliColor          = "CLICOLOR"
	EnvAnsibleForceColor = "ANSIBLE_FORCE_COLOR"
	EnvTerm              = "TERM"
)

// toolForceVars are force flags honored by tools the host CLI drives.
var toolForceVars = []string{EnvPyColors, EnvCliColor, EnvAnsibleForceColor}

// colorTerms are TERM base names known to render SGR colors.
var colorTerms = map[string]bool{
	"xterm":     true,
	"screen":    true,
	"tmux":      true,
	"rxvt":      true,
	"linux":     true,
	"vt100":     true,
	"vt220":     true,
	"cygwin":    true,
	"putty":     true,
	"konsole":   true,
	"alacritty": true,
	"kitty":     true,
	"wezterm":   true,
	"foot":      true,
	"st":        true,
	"eterm":     true,
	"gnome":     true,
	"iterm":     true,
	"iterm2":    true,
}

// Rule identifies which check decided a ShouldDoMarkup call.
type Rule int

const (
	RuleDefault Rule = iota
	RuleNoColor
	RuleForce
	RuleToolForce
	RuleTerm
)

// String returns a short human readable name for the rule.
func (r Rule) String() string {
	switch r {
	case RuleNoColor:
		return "NO_COLOR"
	case RuleForce:
		return "FORCE_COLOR"
	case RuleToolForce:
		return "tool force flag"
	case RuleTerm:
		return "TERM"
	default:
		return "default"
	}
}

// Decision is the outcome of capability detection.
type Decision struct {
	Enabled bool
	Rule    Rule
	// Var is the environment variable that fired, empty for RuleDefault.
	Var string
}

// ShouldDoMarkup reports whether ANSI styling should be emitted for env.
// A nil env reads the process environment. Nothing is cached; every call
// reads env again.
func ShouldDoMarkup(env Environ) bool {
	return Detect(env).Enabled
}

// Detect is ShouldDoMarkup with the deciding rule attached.
func Detect(env Environ) Decision {
	if env == nil {
		env = OSEnviron()
	}

	if env.Getenv(EnvNoColor) != "" {
		return Decision{Enabled: false, Rule: RuleNoColor, Var: EnvNoColor}
	}

	if v := env.Getenv(EnvForceColor); v != "" && ToBool(v) {
		return Decision{Enabled: true, Rule: RuleForce, Var: EnvForceColor}
	}

	for _, name := range toolForceVars {
		if v := env.Getenv(name); v != "" && ToBool(v) {
			return Decision{Enabled: true, Rule: RuleToolForce, Var: name}
		}
	}

	if term := env.Getenv(EnvTerm); term != "" {
		return Decision{Enabled: colorTerm(term), Rule: RuleTerm, Var: EnvTerm}
	}

	return Decision{Enabled: false, Rule: RuleDefault}
}

// colorTerm applies the TERM heuristic.
func colorTerm(term string) bool {
	term = strings.ToLower(term)
	if term == "dumb" {
		return false
	}
	if strings.Contains(term, "color") || strings.Contains(term, "ansi") {
		return true
	}
	base, _, _ := strings.Cut(term, "-")
	return colorTerms[base]
}
