package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/ansiout/internal/version"
	"github.com/arthur-debert/ansiout/pkg/ansi"
	"github.com/arthur-debert/ansiout/pkg/config"
	"github.com/arthur-debert/ansiout/pkg/errors"
	"github.com/arthur-debert/ansiout/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app is the state shared by all commands once the root pre-run has loaded
// the configuration.
type app struct {
	env        ansi.Environ
	configPath string
	color      string
	verbosity  int

	cfg *config.Config
	out *ansi.Output
}

// Execute runs ansiout with the process arguments and environment, reports
// any error on stderr and returns the exit status.
func Execute() int {
	return execute(ansi.OSEnviron(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(env ansi.Environ, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{env: env}
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	code, _ := errors.CodeOf(err)
	log.Debug().
		Str("code", string(code)).
		Fields(errors.Details(err)).
		Msg("Command failed")
	fmt.Fprintln(stderr, a.errorOutput().ProcessMarkup(MsgErrorPrefix)+err.Error())
	return exitCode(err)
}

// errorOutput is the configured Output, or one detected from the environment
// when setup failed before building it.
func (a *app) errorOutput() *ansi.Output {
	if a.out != nil {
		return a.out
	}
	return ansi.New(ansi.WithEnviron(a.env))
}

// exitCode returns 2 for bad input or configuration and 1 otherwise.
func exitCode(err error) int {
	if code, ok := errors.CodeOf(err); ok && code.Usage() {
		return 2
	}
	return 1
}

func newRootCmd(env ansi.Environ) *cobra.Command {
	return (&app{env: env}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ansiout",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "", MsgFlagColor)

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newStripCmd(a))
	rootCmd.AddCommand(newDetectCmd(a))
	rootCmd.AddCommand(newStylesCmd(a))
	rootCmd.AddCommand(newScenarioCmd(a))
	rootCmd.AddCommand(newLevelCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration, builds the Output and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("color") {
		overrides["color"] = a.color
	}
	if cmd.Flags().Changed("verbose") {
		overrides["log.verbosity"] = a.verbosity
	}

	cfg, err := config.Load(config.LoadOptions{Path: a.configPath, Overrides: overrides})
	if err != nil {
		return err
	}
	out, err := cfg.NewOutput(a.env)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.out = out

	logging.SetupLogger(cfg.Log.Verbosity, out)
	log.Debug().
		Str("command", cmd.Name()).
		Bool("markup", out.MarkupEnabled()).
		Msg("Command started")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}
