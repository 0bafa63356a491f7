package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/ansiout/pkg/ansi"
	"github.com/arthur-debert/ansiout/pkg/config"
	"github.com/arthur-debert/ansiout/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configView is the effective configuration as printed by the config command.
type configView struct {
	Source    string              `yaml:"source"`
	Color     string              `yaml:"color"`
	Verbosity int                 `yaml:"verbosity"`
	Styles    map[string][]string `yaml:"styles,omitempty"`
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  fmt.Sprintf(MsgConfigLong, strings.Join(ansi.Primitives(), ", ")),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if defaults {
				_, err := io.WriteString(w, config.DefaultConfigContent())
				if err != nil {
					return errors.Wrap(err, errors.ErrOutputWrite, "failed to write defaults")
				}
				return nil
			}
			return writeConfig(w, a.cfg)
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	mode, err := cfg.ColorMode()
	if err != nil {
		return err
	}
	source := cfg.Source
	if source == "" {
		source = MsgNoConfig
	}
	view := configView{
		Source:    source,
		Color:     mode.String(),
		Verbosity: cfg.Log.Verbosity,
		Styles:    cfg.Styles,
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to encode configuration")
	}
	return enc.Close()
}
