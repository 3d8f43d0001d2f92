package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidSettings reports an environment override outside its valid range.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the runtime knobs read from ZANNAT_* environment variables.
type Settings struct {
	Theme            string        `env:"ZANNAT_THEME"`
	FrameRate        int           `env:"ZANNAT_FPS"`
	SpringStiffness  float64       `env:"ZANNAT_SPRING_STIFFNESS"`
	SpringDamping    float64       `env:"ZANNAT_SPRING_DAMPING"`
	StaggerUnit      time.Duration `env:"ZANNAT_STAGGER"`
	EntranceDuration time.Duration `env:"ZANNAT_ENTRANCE_DURATION"`
	LogFile          string        `env:"ZANNAT_LOG_FILE"`
	AltScreen        bool          `env:"ZANNAT_ALT_SCREEN"`
}

// DefaultSettings returns the settings used when no overrides are present.
func DefaultSettings() Settings {
	return Settings{
		Theme:            "light",
		FrameRate:        DefaultFrameRate,
		SpringStiffness:  DefaultSpringStiffness,
		SpringDamping:    DefaultSpringDamping,
		StaggerUnit:      DefaultStaggerUnit,
		EntranceDuration: DefaultEntranceDuration,
		AltScreen:        true,
	}
}

// Load applies environment overrides on top of DefaultSettings and
// validates the result.
func Load() (Settings, error) {
	s := DefaultSettings()
	if err := env.Parse(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// Validate checks every numeric setting against its range.
func (s Settings) Validate() error {
	switch {
	case s.FrameRate <= 0 || s.FrameRate > MaxFrameRate:
		return fmt.Errorf("%w: frame rate %d outside 1..%d", ErrInvalidSettings, s.FrameRate, MaxFrameRate)
	case s.SpringStiffness <= 0:
		return fmt.Errorf("%w: spring stiffness must be positive", ErrInvalidSettings)
	case s.SpringDamping <= 0:
		return fmt.Errorf("%w: spring damping must be positive", ErrInvalidSettings)
	case s.StaggerUnit <= 0:
		return fmt.Errorf("%w: stagger unit must be positive", ErrInvalidSettings)
	case s.EntranceDuration <= 0:
		return fmt.Errorf("%w: entrance duration must be positive", ErrInvalidSettings)
	}
	return nil
}

// FrameInterval is the wall-clock time between two rendered frames.
func (s Settings) FrameInterval() time.Duration {
	if s.FrameRate <= 0 {
		return time.Second / DefaultFrameRate
	}
	return time.Second / time.Duration(s.FrameRate)
}
