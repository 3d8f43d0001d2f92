package motion

import (
	"math"
	"testing"
	"time"
)

func TestOpacityThresholdIsExclusive(t *testing.T) {
	cases := []struct {
		offset int
		want   float64
	}{
		{-10, 0},
		{0, 0},
		{50, 0},
		{51, 0.9},
		{5000, 0.9},
	}
	for _, tc := range cases {
		if got := Opacity(tc.offset); got != tc.want {
			t.Fatalf("Opacity(%d) = %v, want %v", tc.offset, got, tc.want)
		}
	}
}

func TestHeaderFadeFollowsOffset(t *testing.T) {
	h := NewHeaderFade(300 * time.Millisecond)
	if h.Alpha() != 0 {
		t.Fatalf("expected transparent header at rest")
	}
	h.Follow(64)
	if h.Target() != 0.9 {
		t.Fatalf("Target() = %v, want 0.9", h.Target())
	}
	h.Advance(150 * time.Millisecond)
	if a := h.Alpha(); a <= 0 || a >= 0.9 {
		t.Fatalf("mid-fade alpha = %v, want between 0 and 0.9", a)
	}
	h.Advance(200 * time.Millisecond)
	if h.Alpha() != 0.9 {
		t.Fatalf("Alpha() = %v, want 0.9", h.Alpha())
	}

	h.Follow(50)
	h.Advance(400 * time.Millisecond)
	if math.Abs(h.Alpha()) > 1e-9 {
		t.Fatalf("Alpha() = %v, want 0 at the threshold", h.Alpha())
	}
}

func TestHeaderFadeSettled(t *testing.T) {
	h := NewHeaderFade(300 * time.Millisecond)
	if !h.Settled() {
		t.Fatalf("expected a new fade to be settled")
	}
	h.Follow(64)
	if h.Settled() {
		t.Fatalf("expected fade in progress after a threshold crossing")
	}
	h.Advance(350 * time.Millisecond)
	if !h.Settled() {
		t.Fatalf("expected fade settled after its duration")
	}
	h.Follow(80)
	if !h.Settled() {
		t.Fatalf("expected no new fade when the target is unchanged")
	}
}
