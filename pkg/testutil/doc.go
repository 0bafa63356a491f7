// Package testutil provides utilities for testing ansiout components.
//
// Key components:
//   - TestEnvironment: isolated XDG config and state directories
//   - Color environments: fixed ansi.MapEnviron values for each detection
//     outcome. pkg/ansi's own tests cannot import this package and keep a
//     local helper for the process environment.
//
// Usage guidelines:
//   - Tests that load configuration or set up logging must use a
//     TestEnvironment so the user's own files are never read or written
//   - Tests that depend on color detection pass an explicit environment
//     instead of mutating the process environment
//   - All test data should be defined inline, not in external files
package testutil
