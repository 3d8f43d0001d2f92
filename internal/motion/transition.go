package motion

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition eases a value toward a target over a fixed duration. Retargeting
// mid-flight starts a new tween from the current value, so the output never
// jumps.
type Transition struct {
	tween    *gween.Tween
	easing   ease.TweenFunc
	duration time.Duration
	value    float64
	target   float64
	done     bool
}

func NewTransition(from, to float64, duration time.Duration, fn ease.TweenFunc) *Transition {
	t := &Transition{easing: fn, duration: duration, value: from, target: to}
	t.restart()
	return t
}

func (t *Transition) restart() {
	t.tween = gween.New(float32(t.value), float32(t.target), float32(t.duration.Seconds()), t.easing)
	t.done = t.value == t.target
}

// Retarget redirects the transition. A no-op when to is already the target.
func (t *Transition) Retarget(to float64) {
	if to == t.target {
		return
	}
	t.target = to
	t.restart()
}

// Advance moves the tween forward by dt and returns the new value.
func (t *Transition) Advance(dt time.Duration) (float64, bool) {
	if t.done {
		return t.value, true
	}
	v, finished := t.tween.Update(float32(dt.Seconds()))
	t.value = float64(v)
	if finished {
		t.value = t.target
		t.done = true
	}
	return t.value, t.done
}

func (t *Transition) Value() float64  { return t.value }
func (t *Transition) Target() float64 { return t.target }
func (t *Transition) Done() bool      { return t.done }
