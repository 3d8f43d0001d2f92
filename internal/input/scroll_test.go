package input

import "testing"

func TestScrollTrackerReflectsLatestOffset(t *testing.T) {
	var seen []int
	bus := NewBus()
	tracker := NewScrollTracker(func(offset int) { seen = append(seen, offset) })
	sub := tracker.Subscribe(bus)
	defer sub.Release()

	for _, off := range []int{16, 48, 32, -5} {
		bus.PublishScroll(ScrollEvent{Offset: off})
	}
	if got := tracker.CurrentOffset(); got != 0 {
		t.Fatalf("CurrentOffset() = %d, want negative offsets clamped to 0", got)
	}
	if len(seen) != 4 || seen[1] != 48 {
		t.Fatalf("onChange calls = %v", seen)
	}
}

func TestScrollTrackerStopsAfterRelease(t *testing.T) {
	bus := NewBus()
	tracker := NewScrollTracker(nil)
	sub := tracker.Subscribe(bus)
	bus.PublishScroll(ScrollEvent{Offset: 64})
	sub.Release()
	bus.PublishScroll(ScrollEvent{Offset: 128})
	if got := tracker.CurrentOffset(); got != 64 {
		t.Fatalf("CurrentOffset() = %d, want 64", got)
	}
}
