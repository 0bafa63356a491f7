package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/arthur-debert/ansiout/pkg/ansi"
	"github.com/arthur-debert/ansiout/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// styleEntry is one row of the styles listing.
type styleEntry struct {
	Name     string `yaml:"name"`
	Sequence string `yaml:"sequence"`
}

func newStylesCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "styles",
		Short: MsgStylesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := styleEntries(a.out)
			switch format {
			case "table":
				return writeStylesTable(cmd.OutOrStdout(), a.out, entries)
			case "yaml":
				return writeStylesYAML(cmd.OutOrStdout(), entries)
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q, want table or yaml", format).
					WithDetail("format", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", MsgFlagFormat)
	return cmd
}

// styleEntries lists the style table sorted by name, with each sequence
// quoted so it is printable.
func styleEntries(out *ansi.Output) []styleEntry {
	styles := out.MarkupMap()
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]styleEntry, 0, len(names))
	for _, name := range names {
		seq := strconv.Quote(styles[name])
		entries = append(entries, styleEntry{Name: name, Sequence: seq[1 : len(seq)-1]})
	}
	return entries
}

func writeStylesTable(w io.Writer, out *ansi.Output, entries []styleEntry) error {
	re := lipgloss.NewRenderer(w)
	if out.MarkupEnabled() {
		re.SetColorProfile(termenv.ANSI)
	} else {
		re.SetColorProfile(termenv.Ascii)
	}
	header := re.NewStyle().Bold(true).Padding(0, 1)
	cell := re.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		sample := out.ProcessMarkup("[" + e.Name + "]sample[/]")
		rows = append(rows, []string{e.Name, e.Sequence, sample})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle()).
		Headers("NAME", "SEQUENCE", "SAMPLE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write styles")
	}
	return nil
}

func writeStylesYAML(w io.Writer, entries []styleEntry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to encode styles")
	}
	return enc.Close()
}
