package motion

import (
	"time"

	"github.com/akyairhashvil/zannat/internal/config"
	"github.com/tanema/gween/ease"
)

// Opacity maps a scroll offset in pixels to the header background alpha.
// The threshold is exclusive: 50 is still transparent, 51 is not.
func Opacity(offset int) float64 {
	if offset > config.HeaderOpacityThreshold {
		return config.HeaderOpaqueAlpha
	}
	return 0
}

// HeaderFade eases the displayed header alpha toward Opacity(offset).
type HeaderFade struct {
	t *Transition
}

func NewHeaderFade(duration time.Duration) *HeaderFade {
	return &HeaderFade{t: NewTransition(0, 0, duration, ease.Linear)}
}

// Follow re-evaluates the mapping for a new offset.
func (h *HeaderFade) Follow(offset int) {
	h.t.Retarget(Opacity(offset))
}

func (h *HeaderFade) Advance(dt time.Duration) {
	h.t.Advance(dt)
}

// Alpha is the alpha to draw this frame.
func (h *HeaderFade) Alpha() float64 {
	return h.t.Value()
}

// Target is the step-function alpha for the latest offset.
func (h *HeaderFade) Target() float64 {
	return h.t.Target()
}

// Settled reports whether the displayed alpha has reached its target.
func (h *HeaderFade) Settled() bool {
	return h.t.Done()
}
