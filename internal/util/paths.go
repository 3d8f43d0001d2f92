package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/zannat/internal/config"
)

// StateDir follows XDG_STATE_HOME, falling back to ~/.local/state/<app>.
func StateDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); base != "" {
		return filepath.Join(expandHome(base), app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "state", app)
}

// ResolveLogPath keeps explicit paths and places bare file names in the
// application state directory, creating it when needed.
func ResolveLogPath(path string) (string, error) {
	path = expandHome(strings.TrimSpace(path))
	if path != "" && (filepath.IsAbs(path) || strings.ContainsRune(path, filepath.Separator)) {
		return path, nil
	}
	if path == "" {
		path = config.AppName + ".log"
	}
	dir := StateDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create state dir: %w", err)
	}
	return filepath.Join(dir, path), nil
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = ""
	}
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(home, path[2:])
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
