package drawer

import (
	"testing"
	"time"

	"github.com/akyairhashvil/zannat/internal/config"
)

const frame = time.Second / 60

func settle(c *Controller) {
	for i := 0; i < 60; i++ {
		c.Advance(frame)
	}
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	for _, start := range []bool{false, true} {
		c := NewController(config.DrawerSlideDuration)
		if start {
			c.Toggle()
		}
		c.Toggle()
		c.Toggle()
		if c.IsOpen() != start {
			t.Fatalf("toggle twice from %v gave %v", start, c.IsOpen())
		}
	}
}

func TestCloseForcesClosed(t *testing.T) {
	c := NewController(config.DrawerSlideDuration)
	c.Close()
	if c.IsOpen() {
		t.Fatalf("Close on a closed drawer must keep it closed")
	}
	c.Toggle()
	c.Close()
	if c.IsOpen() {
		t.Fatalf("Close must close an open drawer")
	}
}

func TestOpenMountsAndSlidesIn(t *testing.T) {
	c := NewController(config.DrawerSlideDuration)
	if c.Presence() != Unmounted || c.Progress() != 0 {
		t.Fatalf("drawer must start unmounted")
	}
	c.Toggle()
	if c.Presence() != Mounted {
		t.Fatalf("opening must mount immediately")
	}
	if c.Progress() != 0 {
		t.Fatalf("slide must start off-screen, got %v", c.Progress())
	}
	c.Advance(config.DrawerSlideDuration / 2)
	if p := c.Progress(); p <= 0 || p >= 1 {
		t.Fatalf("mid-slide progress = %v", p)
	}
	settle(c)
	if c.Progress() != 1 || c.Sliding() {
		t.Fatalf("expected fully shown drawer, got %v", c.Progress())
	}
}

func TestCloseUnmountsAfterExitSlide(t *testing.T) {
	c := NewController(config.DrawerSlideDuration)
	c.Toggle()
	settle(c)
	c.Close()
	if c.Presence() != Mounted {
		t.Fatalf("drawer must stay mounted during the exit slide")
	}
	c.Advance(frame)
	if c.Presence() != Mounted || !c.Sliding() {
		t.Fatalf("expected exit slide in progress")
	}
	settle(c)
	if c.Presence() != Unmounted {
		t.Fatalf("drawer must unmount after the exit slide")
	}
	if c.Progress() != 0 {
		t.Fatalf("unmounted drawer progress = %v", c.Progress())
	}
}

func TestReopenDuringExitSlideKeepsMounted(t *testing.T) {
	c := NewController(config.DrawerSlideDuration)
	c.Toggle()
	settle(c)
	c.Toggle()
	c.Advance(frame * 3)
	mid := c.Progress()
	c.Toggle()
	if c.Presence() != Mounted || !c.IsOpen() {
		t.Fatalf("reopen must keep the drawer mounted")
	}
	c.Advance(0)
	if c.Progress() < mid-1e-6 {
		t.Fatalf("reopen jumped from %v to %v", mid, c.Progress())
	}
	settle(c)
	if c.Progress() != 1 {
		t.Fatalf("expected drawer fully open, got %v", c.Progress())
	}
}

func TestToggleWhileClosedBeforeAnyFrame(t *testing.T) {
	c := NewController(config.DrawerSlideDuration)
	c.Toggle()
	c.Toggle()
	// Opened and closed before a frame ran: nothing ever slid in.
	if c.Presence() != Unmounted {
		t.Fatalf("expected unmounted, got %v", c.Presence())
	}
}

func TestPresenceString(t *testing.T) {
	if Mounted.String() != "mounted" || Unmounted.String() != "unmounted" {
		t.Fatalf("unexpected presence names")
	}
}
