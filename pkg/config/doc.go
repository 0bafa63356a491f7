// Package config loads ansiout settings from layered sources and turns them
// into ansi.Output options.
//
// Layers, later ones winning:
//  1. embedded defaults (embedded/defaults.toml)
//  2. a config file: an explicit path, or the first of
//     $XDG_CONFIG_HOME/ansiout/config.{toml,yaml,yml}
//  3. ANSIOUT_* environment variables (ANSIOUT_COLOR, ANSIOUT_LOG_VERBOSITY,
//     ANSIOUT_STYLES_<NAME>="bold,red", where the lower-cased NAME is kept
//     whole, so ANSIOUT_STYLES_SECTION_TITLE sets section_title)
//  4. explicit overrides, typically command-line flags
package config
