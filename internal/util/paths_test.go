package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStateDirUsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_STATE_HOME", base)
	if got, want := StateDir("zannat"), filepath.Join(base, "zannat"); got != want {
		t.Fatalf("StateDir() = %q, want %q", got, want)
	}
}

func TestResolveLogPath(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_STATE_HOME", base)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"absolute", filepath.Join(base, "custom", "x.log"), filepath.Join(base, "custom", "x.log")},
		{"bare", "debug.log", filepath.Join(base, "zannat", "debug.log")},
		{"empty", "  ", filepath.Join(base, "zannat", "zannat.log")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLogPath(tt.in)
			if err != nil {
				t.Fatalf("ResolveLogPath failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ResolveLogPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
	if info, err := os.Stat(filepath.Join(base, "zannat")); err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to be created, err=%v", err)
	}
}

func TestResolveLogPathReportsStateDirFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("XDG_STATE_HOME", blocker)

	if _, err := ResolveLogPath("debug.log"); err == nil || !strings.Contains(err.Error(), "create state dir") {
		t.Fatalf("expected state dir error, got %v", err)
	}
}
