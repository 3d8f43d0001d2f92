package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringParams converts a mass-1 stiffness/damping pair into the angular
// frequency and damping ratio harmonica expects.
func SpringParams(stiffness, damping float64) (frequency, ratio float64) {
	frequency = math.Sqrt(stiffness)
	if frequency == 0 {
		return 0, 0
	}
	return frequency, damping / (2 * frequency)
}

// SpringSmoother follows a single-axis target with a damped spring.
type SpringSmoother struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func NewSpringSmoother(fps int, stiffness, damping, start float64) *SpringSmoother {
	freq, ratio := SpringParams(stiffness, damping)
	return &SpringSmoother{
		spring: harmonica.NewSpring(harmonica.FPS(fps), freq, ratio),
		pos:    start,
		target: start,
	}
}

// SetTarget moves the equilibrium point. The output catches up on later steps.
func (s *SpringSmoother) SetTarget(value float64) {
	s.target = value
}

func (s *SpringSmoother) Target() float64 {
	return s.target
}

// Step advances the spring by one frame.
func (s *SpringSmoother) Step() {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
}

// CurrentValue returns the output of the last Step.
func (s *SpringSmoother) CurrentValue() float64 {
	return s.pos
}

// Settled reports whether both distance to target and speed are within eps.
func (s *SpringSmoother) Settled(eps float64) bool {
	return math.Abs(s.pos-s.target) <= eps && math.Abs(s.vel) <= eps
}

// Spring2D smooths a point with two independent springs.
type Spring2D struct {
	X *SpringSmoother
	Y *SpringSmoother
}

func NewSpring2D(fps int, stiffness, damping, start float64) *Spring2D {
	return &Spring2D{
		X: NewSpringSmoother(fps, stiffness, damping, start),
		Y: NewSpringSmoother(fps, stiffness, damping, start),
	}
}

func (s *Spring2D) SetTarget(x, y float64) {
	s.X.SetTarget(x)
	s.Y.SetTarget(y)
}

func (s *Spring2D) Step() {
	s.X.Step()
	s.Y.Step()
}

func (s *Spring2D) Position() (x, y float64) {
	return s.X.CurrentValue(), s.Y.CurrentValue()
}

func (s *Spring2D) Settled(eps float64) bool {
	return s.X.Settled(eps) && s.Y.Settled(eps)
}
