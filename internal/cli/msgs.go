package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "Render bracket markup as ANSI styled terminal text"
	MsgRootLong      = "ansiout converts [style]text[/] markup into ANSI escape sequences when the\nterminal supports color and strips it to plain text otherwise."
	MsgRenderShort   = "Render markup from arguments or stdin"
	MsgStripShort    = "Strip markup from arguments or stdin"
	MsgDetectShort   = "Explain whether colored output is enabled"
	MsgStylesShort   = "List the available markup styles"
	MsgScenarioShort = "Format a scenario name"
	MsgLevelShort    = "Format a log level label"
	MsgConfigShort   = "Show the effective configuration"
	MsgConfigLong    = "Prints the configuration after all layers are applied.\n\nStyles in the [styles] table are lists of primitives: %s."
	MsgVersionShort  = "Print version information"

	// Flags
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default: $XDG_CONFIG_HOME/ansiout/config.toml)"
	MsgFlagColor    = "Color mode: auto, always or never"
	MsgFlagFormat   = "Output format: table or yaml"
	MsgFlagNumber   = "Numeric severity, overrides the level implied by NAME"
	MsgFlagDefaults = "Print the built-in defaults instead"

	// Detect report, rendered through markup
	MsgDetectMarkup  = "[bold]markup[/]      %s"
	MsgDetectRule    = "[bold]decided by[/]  %s"
	MsgDetectMode    = "[bold]color mode[/]  %s"
	MsgDetectProfile = "[bold]profile[/]     %s"
	MsgDetectTTY     = "[bold]stdout tty[/]  %t"
	MsgDetectConfig  = "[bold]config[/]      %s"

	MsgEnabled  = "[green]enabled[/]"
	MsgDisabled = "[red]disabled[/]"
	MsgNoConfig = "(none)"

	MsgErrorPrefix = "[danger]Error:[/] "

	MsgVersionFormat = "ansiout version %s\n  commit: %s\n  built:  %s\n"
)
