package cli

import (
	"strings"

	"github.com/arthur-debert/ansiout/pkg/ansi"
	"github.com/arthur-debert/ansiout/pkg/errors"
	"github.com/spf13/cobra"
)

func newScenarioCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario NAME",
		Short: MsgScenarioShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeLine(cmd.OutOrStdout(), a.out.FormatScenario(args[0]))
		},
	}
}

func newLevelCmd(a *app) *cobra.Command {
	var number int

	cmd := &cobra.Command{
		Use:   "level NAME",
		Short: MsgLevelShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToUpper(args[0])
			levelNo, ok := ansi.LevelByName(name)
			if cmd.Flags().Changed("number") {
				levelNo, ok = ansi.Level(number), true
			}
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, "unknown level %q, pass --number to set its severity", args[0]).
					WithDetail("level", args[0])
			}
			return writeLine(cmd.OutOrStdout(), a.out.FormatLogLevel(name, levelNo))
		},
	}
	cmd.Flags().IntVarP(&number, "number", "n", 0, MsgFlagNumber)
	return cmd
}
