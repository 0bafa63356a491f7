/*
Package ansi turns lightweight bracket markup into ANSI styled terminal text.

Markup is a flat set of named tags closed by a single generic closer:

	[info]Running [scenario]default[/] > [action]create[/][/]

When colored output is appropriate each opening tag is replaced by the escape
sequence registered for its name and each closer by a reset. Otherwise the
tags are removed and only the plain text remains.

# Capability detection

ShouldDoMarkup decides from environment variables whether styling should be
emitted. The first matching rule wins:
  - NO_COLOR set: never
  - FORCE_COLOR truthy: always
  - PY_COLORS, CLICOLOR or ANSIBLE_FORCE_COLOR truthy: always
  - TERM unset, "dumb" or unknown: never; a color capable TERM: always

The environment is passed in as an Environ so callers and tests can supply a
snapshot instead of mutating the process environment.

# Rendering

An Output captures the detection result once, at construction time, together
with its style table:

	out := ansi.New()
	fmt.Println(out.ProcessMarkup("[danger]failed[/] after [bold]3[/] tries"))
	fmt.Println(out.FormatScenario("default"))
	fmt.Println(out.FormatLogLevel("INFO", ansi.LevelInfo) + "starting")

A closer always emits a full reset; the style of an enclosing tag is not
restored after an inner tag closes. Unknown tag names are consumed without
emitting any code, stray closers are dropped and tags left open at the end of
the text are closed implicitly.
*/
package ansi
