package input

// ScrollTracker records the latest viewport scroll offset.
type ScrollTracker struct {
	offset   int
	onChange func(int)
}

// NewScrollTracker takes an optional callback run after every sample.
func NewScrollTracker(onChange func(int)) *ScrollTracker {
	return &ScrollTracker{onChange: onChange}
}

func (t *ScrollTracker) Subscribe(bus *Bus) Subscription {
	return bus.OnScroll(t.handle)
}

func (t *ScrollTracker) handle(e ScrollEvent) {
	t.offset = max(e.Offset, 0)
	if t.onChange != nil {
		t.onChange(t.offset)
	}
}

func (t *ScrollTracker) CurrentOffset() int {
	return t.offset
}
