package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("Load() = %+v, want %+v", s, DefaultSettings())
	}
}

func TestLoadPartialOverrideKeepsDefaults(t *testing.T) {
	t.Setenv("ZANNAT_SPRING_DAMPING", "30")
	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := DefaultSettings()
	want.SpringDamping = 30
	if s != want {
		t.Fatalf("Load() = %+v, want %+v", s, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ZANNAT_THEME", "dark")
	t.Setenv("ZANNAT_FPS", "30")
	t.Setenv("ZANNAT_STAGGER", "250ms")
	t.Setenv("ZANNAT_ALT_SCREEN", "false")
	t.Setenv("ZANNAT_LOG_FILE", "/tmp/zannat.log")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Theme != "dark" || s.FrameRate != 30 || s.StaggerUnit != 250*time.Millisecond {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if s.AltScreen {
		t.Fatalf("expected alt screen disabled")
	}
	if s.LogFile != "/tmp/zannat.log" {
		t.Fatalf("LogFile = %q", s.LogFile)
	}
	if got := s.FrameInterval(); got != time.Second/30 {
		t.Fatalf("FrameInterval() = %v", got)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero fps", "ZANNAT_FPS", "0"},
		{"huge fps", "ZANNAT_FPS", "1000"},
		{"negative stiffness", "ZANNAT_SPRING_STIFFNESS", "-1"},
		{"zero damping", "ZANNAT_SPRING_DAMPING", "0"},
		{"negative stagger", "ZANNAT_STAGGER", "-1s"},
		{"zero stagger", "ZANNAT_STAGGER", "0s"},
		{"zero duration", "ZANNAT_ENTRANCE_DURATION", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			s, err := Load()
			if !errors.Is(err, ErrInvalidSettings) {
				t.Fatalf("expected ErrInvalidSettings, got %v", err)
			}
			if s != DefaultSettings() {
				t.Fatalf("expected defaults on error, got %+v", s)
			}
		})
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("ZANNAT_FPS", "sixty")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}
