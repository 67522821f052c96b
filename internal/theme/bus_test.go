package theme

import (
	"testing"
	"time"
)

func TestBusDeliversInPublishOrder(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe()
	defer sub.Cancel()

	modes := []EffectiveMode{EffectiveLight, EffectiveDark, EffectiveLight, EffectiveDark}
	for _, m := range modes {
		bus.Publish(BaseModeChanged{Mode: m})
	}

	for i, want := range modes {
		ev := <-sub.C
		mc, ok := ev.(BaseModeChanged)
		if !ok {
			t.Fatalf("event %d: got %T, want BaseModeChanged", i, ev)
		}
		if mc.Mode != want {
			t.Errorf("event %d: Mode = %s, want %s", i, mc.Mode, want)
		}
	}
}

func TestBusNoDropsWithSlowSubscriber(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe()
	defer sub.Cancel()

	// Publish far more events than any channel buffer before reading one.
	const n = 500
	for i := 0; i < n; i++ {
		bus.Publish(PaletteChanged{Palette: BuildBasePalette(EffectiveDark)})
	}

	got := 0
	timeout := time.After(5 * time.Second)
	for got < n {
		select {
		case <-sub.C:
			got++
		case <-timeout:
			t.Fatalf("received %d of %d events", got, n)
		}
	}
}

func TestBusFanOut(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe()
	b := bus.Subscribe()
	defer a.Cancel()
	defer b.Cancel()

	bus.Publish(BaseModeChanged{Mode: EffectiveDark})

	for name, sub := range map[string]*Subscription{"a": a, "b": b} {
		select {
		case ev := <-sub.C:
			if _, ok := ev.(BaseModeChanged); !ok {
				t.Errorf("subscriber %s: got %T", name, ev)
			}
		case <-time.After(time.Second):
			t.Errorf("subscriber %s: no event", name)
		}
	}
}

func TestBusCancelStopsDelivery(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe()

	bus.Publish(BaseModeChanged{Mode: EffectiveLight})
	<-sub.C
	sub.Cancel()

	// Publishing after cancel must not block and must not reach sub.
	bus.Publish(BaseModeChanged{Mode: EffectiveDark})

	select {
	case _, ok := <-sub.C:
		if ok {
			t.Error("received event after Cancel")
		}
	case <-time.After(time.Second):
		t.Error("channel not closed after Cancel")
	}
}

func TestBusCancelWhileBlocked(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe()

	// Nobody is receiving; the drain goroutine is parked on the send.
	bus.Publish(BaseModeChanged{Mode: EffectiveLight})
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		sub.Cancel()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Cancel blocked with an undelivered event pending")
	}
}

func TestBusLateSubscriberMissesEarlierEvents(t *testing.T) {
	bus := NewBus()
	bus.Publish(BaseModeChanged{Mode: EffectiveDark})

	sub := bus.Subscribe()
	defer sub.Cancel()

	select {
	case ev := <-sub.C:
		t.Errorf("late subscriber received pre-subscribe event %#v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
