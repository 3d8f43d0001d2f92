package input

import "testing"

func TestBusDispatchInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []string
	bus.OnPointerMove(func(PointerEvent) { order = append(order, "a") })
	bus.OnPointerMove(func(PointerEvent) { order = append(order, "b") })
	bus.PublishPointer(PointerEvent{})
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("dispatch order = %v", order)
	}
}

func TestSubscriptionReleaseIsIdempotent(t *testing.T) {
	bus := NewBus()
	calls := 0
	keep := bus.OnScroll(func(ScrollEvent) { calls++ })
	drop := bus.OnScroll(func(ScrollEvent) { calls += 100 })
	drop.Release()
	drop.Release()
	bus.PublishScroll(ScrollEvent{Offset: 1})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if bus.Subscribers() != 1 {
		t.Fatalf("Subscribers() = %d, want 1", bus.Subscribers())
	}
	keep.Release()
	if bus.Subscribers() != 0 {
		t.Fatalf("expected no subscribers")
	}
	var zero Subscription
	zero.Release()
}

func TestScopeReleasesEverything(t *testing.T) {
	bus := NewBus()
	var scope Scope
	scope.Add(bus.OnPointerMove(func(PointerEvent) {}))
	scope.Add(bus.OnScroll(func(ScrollEvent) {}))
	if bus.Subscribers() != 2 {
		t.Fatalf("Subscribers() = %d, want 2", bus.Subscribers())
	}
	scope.Close()
	scope.Close()
	if !scope.Closed() || bus.Subscribers() != 0 {
		t.Fatalf("expected all subscriptions released, have %d", bus.Subscribers())
	}

	scope.Add(bus.OnScroll(func(ScrollEvent) {}))
	if bus.Subscribers() != 0 {
		t.Fatalf("adding to a closed scope must release immediately")
	}
}
