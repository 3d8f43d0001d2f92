// Package drawer owns the open/closed state of the off-canvas navigation
// panel and the slide that mounts and unmounts it.
package drawer

import (
	"time"

	"github.com/akyairhashvil/zannat/internal/motion"
	"github.com/tanema/gween/ease"
)

// Presence says whether the panel exists in the render tree at all.
type Presence int

const (
	Unmounted Presence = iota
	Mounted
)

func (p Presence) String() string {
	if p == Mounted {
		return "mounted"
	}
	return "unmounted"
}

// Controller is the single source of truth for drawer visibility. open only
// changes through Toggle and Close; the presence follows open once the exit
// slide has finished.
type Controller struct {
	open     bool
	presence Presence
	slide    *motion.Transition
}

func NewController(slideDuration time.Duration) *Controller {
	return &Controller{slide: motion.NewTransition(0, 0, slideDuration, ease.OutCubic)}
}

func (c *Controller) Toggle() {
	c.setOpen(!c.open)
}

func (c *Controller) Close() {
	c.setOpen(false)
}

func (c *Controller) IsOpen() bool {
	return c.open
}

func (c *Controller) setOpen(open bool) {
	c.open = open
	if open {
		c.presence = Mounted
		c.slide.Retarget(1)
		return
	}
	c.slide.Retarget(0)
	if c.slide.Done() {
		c.presence = Unmounted
	}
}

// Advance moves the slide by one frame and unmounts a closed panel whose
// exit slide has finished.
func (c *Controller) Advance(dt time.Duration) {
	if c.presence == Unmounted {
		return
	}
	_, done := c.slide.Advance(dt)
	if done && !c.open {
		c.presence = Unmounted
	}
}

func (c *Controller) Presence() Presence {
	return c.presence
}

// Progress is 0 when the panel is fully off-screen and 1 when fully shown.
func (c *Controller) Progress() float64 {
	if c.presence == Unmounted {
		return 0
	}
	return c.slide.Value()
}

// Sliding reports whether a transition is still running.
func (c *Controller) Sliding() bool {
	return c.presence == Mounted && !c.slide.Done()
}
