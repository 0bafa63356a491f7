package ansi_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/ansiout/pkg/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enabledOutput() *ansi.Output {
	return ansi.New(ansi.WithEnviron(ansi.MapEnviron{"FORCE_COLOR": "1"}))
}

func disabledOutput() *ansi.Output {
	return ansi.New(ansi.WithEnviron(ansi.MapEnviron{"NO_COLOR": "1"}))
}

func TestColorConstants(t *testing.T) {
	assert.Equal(t, "\033[0m", ansi.Reset)
	assert.Equal(t, "\033[31m", ansi.Red)
	assert.Equal(t, "\033[32m", ansi.Green)
	assert.Equal(t, "\033[34m", ansi.Blue)
	assert.Equal(t, "\033[1m", ansi.Bold)
	assert.Equal(t, "\033[2m", ansi.Dim)
	assert.Equal(t, "\033[", ansi.EscapePrefix)
}

func TestNewDetectsFromEnviron(t *testing.T) {
	assert.True(t, enabledOutput().MarkupEnabled())
	assert.False(t, disabledOutput().MarkupEnabled())
	assert.False(t, ansi.New(ansi.WithEnviron(ansi.MapEnviron{})).MarkupEnabled())
}

func TestNewSnapshotsProcessEnvironment(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("FORCE_COLOR", "1")

	out := ansi.New()
	require.True(t, out.MarkupEnabled())

	t.Setenv("NO_COLOR", "1")
	assert.True(t, out.MarkupEnabled(), "environment changes must not affect an existing Output")
	assert.False(t, ansi.New().MarkupEnabled())
}

func TestWithMarkupOverridesDetection(t *testing.T) {
	out := ansi.New(ansi.WithEnviron(ansi.MapEnviron{"NO_COLOR": "1"}), ansi.WithMarkup(true))
	assert.True(t, out.MarkupEnabled())

	out = ansi.New(ansi.WithEnviron(ansi.MapEnviron{"FORCE_COLOR": "1"}), ansi.WithMarkup(false))
	assert.False(t, out.MarkupEnabled())
}

func TestMarkupMapContainsExpectedStyles(t *testing.T) {
	styles := ansi.New().MarkupMap()

	for _, name := range []string{
		"info",
		"warning",
		"danger",
		"scenario",
		"action",
		"logging.level.info",
		"logging.level.warning",
		"logging.level.error",
		"red",
		"green",
		"blue",
		"bold",
		"dim",
		"reset",
	} {
		assert.Contains(t, styles, name)
	}
	assert.Equal(t, ansi.Reset, styles["reset"])
	assert.Equal(t, ansi.Green, styles["scenario"])
}

func TestMarkupMapValuesAreEscapeSequences(t *testing.T) {
	for name, code := range ansi.New().MarkupMap() {
		if code != "" {
			assert.True(t, strings.HasPrefix(code, "\033["), "style %q has code %q", name, code)
		}
	}
}

func TestMarkupMapIsACopy(t *testing.T) {
	out := enabledOutput()
	styles := out.MarkupMap()
	styles["red"] = ansi.Blue
	delete(styles, "bold")

	assert.Equal(t, ansi.Red, out.Code("red"))
	assert.Equal(t, ansi.Bold, out.Code("bold"))
}

func TestWithStyles(t *testing.T) {
	note, err := ansi.Compose("bold", "magenta")
	require.NoError(t, err)

	out := ansi.New(
		ansi.WithMarkup(true),
		ansi.WithStyles(map[string]string{
			"note":    note,
			"warning": ansi.Yellow,
			"plain":   "",
			"broken":  "not an escape",
		}),
	)

	assert.Equal(t, ansi.Bold+ansi.Magenta, out.Code("note"))
	assert.Equal(t, ansi.Yellow, out.Code("warning"))
	assert.Contains(t, out.MarkupMap(), "plain")
	assert.NotContains(t, out.MarkupMap(), "broken")
	assert.Equal(t, ansi.Bold+ansi.Magenta+"x"+ansi.Reset, out.ProcessMarkup("[note]x[/]"))
}

func TestCompose(t *testing.T) {
	code, err := ansi.Compose("Bold", " red ")
	require.NoError(t, err)
	assert.Equal(t, ansi.Bold+ansi.Red, code)

	code, err = ansi.Compose()
	require.NoError(t, err)
	assert.Equal(t, "", code)

	_, err = ansi.Compose("bold", "purple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purple")
}

func TestPrimitives(t *testing.T) {
	assert.Equal(t, []string{
		"blue", "bold", "cyan", "dim", "green", "italic", "magenta", "red", "underline", "yellow",
	}, ansi.Primitives())
}

func TestStripMarkupIgnoresEnabledState(t *testing.T) {
	input := "[red]Error message[/] with [bold]bold text[/]"
	assert.Equal(t, "Error message with bold text", enabledOutput().StripMarkup(input))
	assert.Equal(t, "Error message with bold text", disabledOutput().StripMarkup(input))
}

func TestProcessMarkupDisabled(t *testing.T) {
	out := disabledOutput()
	for _, input := range []string{
		"[red]Error message[/] with [bold]bold text[/]",
		"[info]Running [scenario]test[/] > [action]create[/][/]",
		"[/]stray and [unclosed",
		"",
	} {
		assert.Equal(t, out.StripMarkup(input), out.ProcessMarkup(input))
	}
	assert.Equal(t, "Error message with bold text", out.ProcessMarkup("[red]Error message[/] with [bold]bold text[/]"))
}

func TestProcessMarkupEnabled(t *testing.T) {
	result := enabledOutput().ProcessMarkup("[red]Error[/] message")
	assert.Equal(t, "\033[31mError\033[0m message", result)
}

func TestProcessMarkupUnknownTags(t *testing.T) {
	result := enabledOutput().ProcessMarkup("[unknown_tag]Text[/] with [red]known tag[/]")

	assert.Contains(t, result, ansi.Red)
	assert.Contains(t, result, ansi.Reset)
	assert.Contains(t, result, "Text")
	assert.Contains(t, result, "known tag")
	assert.NotContains(t, sgrPattern.ReplaceAllString(result, ""), "[")
	assert.NotContains(t, sgrPattern.ReplaceAllString(result, ""), "]")
}

func TestProcessMarkupNested(t *testing.T) {
	out := enabledOutput()
	input := "[info]Running [scenario]test[/] > [action]create[/][/]"
	result := out.ProcessMarkup(input)

	assert.Greater(t, strings.Count(result, "\033["), 1)
	assert.Equal(t, 3, strings.Count(result, ansi.Reset))
	assert.Equal(t, "Running test > create", sgrPattern.ReplaceAllString(result, ""))
	assert.Equal(t, "Running test > create", out.StripMarkup(input))
	assert.Equal(t, "Running test > create", disabledOutput().StripMarkup(input))
}

func TestFormatScenario(t *testing.T) {
	assert.Equal(t, "[x]", disabledOutput().FormatScenario("x"))
	assert.Equal(t, "[test_scenario]", disabledOutput().FormatScenario("test_scenario"))
	assert.Equal(t, ansi.Green+"[test_scenario]"+ansi.Reset, enabledOutput().FormatScenario("test_scenario"))
}

func TestFormatLogLevelEnabled(t *testing.T) {
	tests := []struct {
		name     string
		levelNo  ansi.Level
		expected string
	}{
		{"INFO", ansi.LevelInfo, ansi.Blue + "INFO    " + ansi.Reset},
		{"WARNING", ansi.LevelWarning, ansi.Red + "WARNING " + ansi.Reset},
		{"ERROR", ansi.LevelError, ansi.Bold + "ERROR   " + ansi.Reset},
		{"CRITICAL", ansi.LevelCritical, ansi.Bold + "CRITICAL" + ansi.Reset},
		{"INFO+5", ansi.LevelInfo + 5, ansi.Blue + "INFO+5  " + ansi.Reset},
		{"DEBUG", ansi.LevelDebug, "DEBUG   "},
		{"NOTSET", 0, "NOTSET  "},
	}

	out := enabledOutput()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, out.FormatLogLevel(tt.name, tt.levelNo))
		})
	}
}

func TestFormatLogLevelDisabled(t *testing.T) {
	out := disabledOutput()

	result := out.FormatLogLevel("INFO", ansi.LevelInfo)
	assert.Equal(t, "INFO    ", result)
	assert.NotContains(t, result, "\033[")

	assert.Equal(t, "ERROR   ", out.FormatLogLevel("ERROR", ansi.LevelError))
	assert.Equal(t, "VERYLONGLEVEL", out.FormatLogLevel("VERYLONGLEVEL", ansi.LevelError))
}

func TestLevelFromZerolog(t *testing.T) {
	assert.Equal(t, ansi.LevelDebug, ansi.LevelFromZerolog(zerolog.TraceLevel))
	assert.Equal(t, ansi.LevelDebug, ansi.LevelFromZerolog(zerolog.DebugLevel))
	assert.Equal(t, ansi.LevelInfo, ansi.LevelFromZerolog(zerolog.InfoLevel))
	assert.Equal(t, ansi.LevelWarning, ansi.LevelFromZerolog(zerolog.WarnLevel))
	assert.Equal(t, ansi.LevelError, ansi.LevelFromZerolog(zerolog.ErrorLevel))
	assert.Equal(t, ansi.LevelCritical, ansi.LevelFromZerolog(zerolog.FatalLevel))
	assert.Equal(t, ansi.LevelCritical, ansi.LevelFromZerolog(zerolog.PanicLevel))
	assert.Equal(t, ansi.Level(0), ansi.LevelFromZerolog(zerolog.NoLevel))
}

func TestSprintfAndFprintln(t *testing.T) {
	out := enabledOutput()
	assert.Equal(t, ansi.Bold+"3"+ansi.Reset+" tries", out.Sprintf("[bold]%d[/] tries", 3))

	var buf bytes.Buffer
	require.NoError(t, disabledOutput().Fprintln(&buf, "[danger]failed[/]"))
	assert.Equal(t, "failed\n", buf.String())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, ansi.Default(), ansi.Default())
}

func TestLevelByName(t *testing.T) {
	tests := []struct {
		name string
		want ansi.Level
		ok   bool
	}{
		{"info", ansi.LevelInfo, true},
		{"WARN", ansi.LevelWarning, true},
		{"Warning", ansi.LevelWarning, true},
		{"error", ansi.LevelError, true},
		{"critical", ansi.LevelCritical, true},
		{"debug", ansi.LevelDebug, true},
		{"verbose", 0, false},
	}
	for _, tt := range tests {
		got, ok := ansi.LevelByName(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
