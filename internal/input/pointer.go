package input

// Follower receives the marker target derived from each pointer event.
//
//go:generate mockgen -source=pointer.go -destination=mock_follower_test.go -package=input
type Follower interface {
	SetTarget(x, y float64)
}

// PointerTracker keeps the latest raw pointer position and feeds a centered
// marker target to its follower on every notification.
type PointerTracker struct {
	follower   Follower
	halfWidth  float64
	halfHeight float64
	position   PointerEvent
	seen       bool
}

func NewPointerTracker(follower Follower, markerWidth, markerHeight float64) *PointerTracker {
	return &PointerTracker{
		follower:   follower,
		halfWidth:  markerWidth / 2,
		halfHeight: markerHeight / 2,
	}
}

// Subscribe attaches the tracker to bus for as long as the handle lives.
func (t *PointerTracker) Subscribe(bus *Bus) Subscription {
	return bus.OnPointerMove(t.handle)
}

func (t *PointerTracker) handle(e PointerEvent) {
	t.position = e
	t.seen = true
	t.follower.SetTarget(e.X-t.halfWidth, e.Y-t.halfHeight)
}

// Position returns the latest raw pointer position and whether any event
// has arrived yet.
func (t *PointerTracker) Position() (PointerEvent, bool) {
	return t.position, t.seen
}
