package cli

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/ansiout/pkg/errors"
	"github.com/arthur-debert/ansiout/pkg/logging"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render [text...]",
		Short: MsgRenderShort,
		Example: `  ansiout render "[danger]failed[/] after [bold]3[/] tries"
  some-tool | ansiout render`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform(cmd, args, a.out.ProcessMarkup)
		},
	}
}

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [text...]",
		Short: MsgStripShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform(cmd, args, a.out.StripMarkup)
		},
	}
}

// transform applies fn to the joined arguments, or to each stdin line when
// no arguments are given.
func transform(cmd *cobra.Command, args []string, fn func(string) string) error {
	logger := logging.GetLogger("cli." + cmd.Name())
	done := logging.LogOperationStart(logger, cmd.Name())
	defer done()

	w := cmd.OutOrStdout()
	if len(args) > 0 {
		logger.Trace().Int("args", len(args)).Msg("Processing arguments")
		return writeLine(w, fn(strings.Join(args, " ")))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	lines := 0
	for scanner.Scan() {
		lines++
		if err := writeLine(w, fn(scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "failed to read input")
	}
	logger.Trace().Int("lines", lines).Msg("Processed stdin")
	return nil
}

func writeLine(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s+"\n"); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
	}
	return nil
}
