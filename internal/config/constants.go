package config

import "time"

// Frame loop.
const (
	DefaultFrameRate = 60
	MaxFrameRate     = 240
)

// Spring defaults for the pointer marker (mass 1).
const (
	DefaultSpringStiffness = 700.0
	DefaultSpringDamping   = 25.0

	// SpringTolerance is the distance and speed below which a spring counts as settled.
	SpringTolerance = 0.01

	// MarkerStart is where the marker rests before the first pointer event.
	MarkerStart = -100.0
)

// Header translucency.
const (
	HeaderOpacityThreshold = 50
	HeaderOpaqueAlpha      = 0.9
	HeaderFadeDuration     = 300 * time.Millisecond
)

// Entrance animations.
const (
	DefaultStaggerUnit      = 100 * time.Millisecond
	DefaultEntranceDuration = 500 * time.Millisecond
	EntranceShiftPx         = 20.0
)

// Hero entrance delays.
const (
	HeroHeadingDelay = 200 * time.Millisecond
	HeroTaglineDelay = 400 * time.Millisecond
	HeroActionDelay  = 600 * time.Millisecond
)

// Drawer.
const (
	DrawerSlideDuration = 300 * time.Millisecond
)

// Application settings.
const (
	AppName   = "zannat"
	LogPrefix = "zannat"
)
