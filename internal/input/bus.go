// Package input turns host notifications into page state. The Bus stands in
// for the display surface: the page publishes raw pointer and scroll
// notifications on it and the trackers subscribe with scoped handles.
package input

// PointerEvent is a raw pointer position in surface cells.
type PointerEvent struct {
	X, Y float64
}

// ScrollEvent is the vertical scroll distance of the viewport in pixels.
type ScrollEvent struct {
	Offset int
}

type eventKind int

const (
	eventPointerMove eventKind = iota
	eventScroll
)

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type scrollHandler struct {
	id uint32
	fn func(ScrollEvent)
}

// Bus dispatches notifications synchronously, in subscription order.
type Bus struct {
	pointerMove []pointerHandler
	scroll      []scrollHandler
	nextID      uint32
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscription is the handle returned by every On* call.
type Subscription struct {
	id   uint32
	bus  *Bus
	kind eventKind
}

// Release unregisters the handler. Releasing twice is a no-op.
func (s Subscription) Release() {
	if s.bus == nil {
		return
	}
	switch s.kind {
	case eventPointerMove:
		s.bus.pointerMove = removeHandler(s.bus.pointerMove, func(h pointerHandler) bool { return h.id == s.id })
	case eventScroll:
		s.bus.scroll = removeHandler(s.bus.scroll, func(h scrollHandler) bool { return h.id == s.id })
	}
}

func removeHandler[H any](s []H, match func(H) bool) []H {
	for i := range s {
		if match(s[i]) {
			var zero H
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// OnPointerMove registers fn for pointer-movement notifications.
func (b *Bus) OnPointerMove(fn func(PointerEvent)) Subscription {
	b.nextID++
	b.pointerMove = append(b.pointerMove, pointerHandler{id: b.nextID, fn: fn})
	return Subscription{id: b.nextID, bus: b, kind: eventPointerMove}
}

// OnScroll registers fn for scroll notifications.
func (b *Bus) OnScroll(fn func(ScrollEvent)) Subscription {
	b.nextID++
	b.scroll = append(b.scroll, scrollHandler{id: b.nextID, fn: fn})
	return Subscription{id: b.nextID, bus: b, kind: eventScroll}
}

func (b *Bus) PublishPointer(e PointerEvent) {
	for _, h := range b.pointerMove {
		h.fn(e)
	}
}

func (b *Bus) PublishScroll(e ScrollEvent) {
	for _, h := range b.scroll {
		h.fn(e)
	}
}

// Subscribers is the number of live handlers.
func (b *Bus) Subscribers() int {
	return len(b.pointerMove) + len(b.scroll)
}

// Scope releases every subscription it holds when closed.
type Scope struct {
	subs   []Subscription
	closed bool
}

// Add takes ownership of sub. Adding to a closed scope releases sub at once.
func (s *Scope) Add(sub Subscription) {
	if s.closed {
		sub.Release()
		return
	}
	s.subs = append(s.subs, sub)
}

func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.subs) - 1; i >= 0; i-- {
		s.subs[i].Release()
	}
	s.subs = nil
}

func (s *Scope) Closed() bool {
	return s.closed
}
