package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/ansiout/pkg/ansi"
	"github.com/arthur-debert/ansiout/pkg/config"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newDetectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: MsgDetectShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.detect(cmd.OutOrStdout())
		},
	}
}

func (a *app) detect(w io.Writer) error {
	decision := ansi.Detect(a.env)
	mode, err := a.cfg.ColorMode()
	if err != nil {
		return err
	}

	state := MsgDisabled
	if a.out.MarkupEnabled() {
		state = MsgEnabled
	}
	rule := decision.Rule.String()
	if decision.Var != "" && decision.Var != rule {
		rule += " (" + decision.Var + ")"
	}
	if mode != config.ColorAuto {
		rule = "--color / config (" + mode.String() + ")"
	}
	source := a.cfg.Source
	if source == "" {
		source = MsgNoConfig
	}

	profile := termenv.NewOutput(w, termenv.WithEnvironment(a.env)).EnvColorProfile()

	lines := []string{
		fmt.Sprintf(MsgDetectMarkup, state),
		fmt.Sprintf(MsgDetectRule, rule),
		fmt.Sprintf(MsgDetectMode, mode),
		fmt.Sprintf(MsgDetectProfile, profileName(profile)),
		fmt.Sprintf(MsgDetectTTY, isTerminal(w)),
		fmt.Sprintf(MsgDetectConfig, source),
	}
	for _, line := range lines {
		if err := a.out.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
