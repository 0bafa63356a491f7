// pkg/testutil/environment.go
// DEPENDENCIES: adrg/xdg
// PURPOSE: Isolate the XDG directories seen by tests

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// AppName is the XDG subdirectory ansiout reads and writes.
const AppName = "ansiout"

// TestEnvironment points every XDG directory ansiout uses at temp dirs.
type TestEnvironment struct {
	// ConfigHome is $XDG_CONFIG_HOME
	ConfigHome string
	// ConfigDir is the ansiout directory under ConfigHome
	ConfigDir string
	// StateHome is $XDG_STATE_HOME
	StateHome string

	t *testing.T
}

// NewTestEnvironment creates the temp directories, exports them through the
// XDG variables and reloads the xdg package. Everything is restored when the
// test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		ConfigHome: filepath.Join(root, "config"),
		StateHome:  filepath.Join(root, "state"),
		t:          t,
	}
	env.ConfigDir = filepath.Join(env.ConfigHome, AppName)

	for _, dir := range []string{env.ConfigDir, env.StateHome, filepath.Join(root, "config-dirs")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "config-dirs"))
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// WriteConfig writes content to name inside ConfigDir and returns its path.
func (env *TestEnvironment) WriteConfig(name, content string) string {
	env.t.Helper()
	return env.WriteFile(filepath.Join(env.ConfigDir, name), content)
}

// WriteFile writes content to an arbitrary path, creating parent directories.
func (env *TestEnvironment) WriteFile(path, content string) string {
	env.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// LogFile is where logging.SetupLogger writes inside StateHome.
func (env *TestEnvironment) LogFile() string {
	return filepath.Join(env.StateHome, AppName, AppName+".log")
}
