package testutil

import "github.com/arthur-debert/ansiout/pkg/ansi"

// Fixed environments, one per detection outcome.
func ForceColor() ansi.MapEnviron { return ansi.MapEnviron{ansi.EnvForceColor: "1"} }
func NoColor() ansi.MapEnviron    { return ansi.MapEnviron{ansi.EnvNoColor: "1"} }
func ColorTerm() ansi.MapEnviron  { return ansi.MapEnviron{ansi.EnvTerm: "xterm-256color"} }
func DumbTerm() ansi.MapEnviron   { return ansi.MapEnviron{ansi.EnvTerm: "dumb"} }
