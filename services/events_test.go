package services

import (
	"mestar-backend/models"
	"testing"
)

func TestEventHub_FanOut(t *testing.T) {
	hub := NewEventHub()

	a, unsubA := hub.Subscribe()
	b, unsubB := hub.Subscribe()
	defer unsubA()
	defer unsubB()

	hub.Publish(AppointmentEvent{Type: EventCreated, Appointment: &models.Appointment{}})

	for name, ch := range map[string]<-chan AppointmentEvent{"a": a, "b": b} {
		select {
		case ev := <-ch:
			if ev.Type != EventCreated {
				t.Errorf("subscriber %s: unexpected event type %s", name, ev.Type)
			}
		default:
			t.Errorf("subscriber %s: missing event", name)
		}
	}
}

func TestEventHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewEventHub()
	ch, unsub := hub.Subscribe()

	unsub()
	if _, open := <-ch; open {
		t.Fatal("expected channel closed after unsubscribe")
	}

	// Idempotent, and publishing afterwards must not panic.
	unsub()
	hub.Publish(AppointmentEvent{Type: EventUpdated})
}

func TestEventHub_SlowSubscriberDropsEvents(t *testing.T) {
	hub := NewEventHub()
	ch, unsub := hub.Subscribe()
	defer unsub()

	// Overfill the buffer; Publish must never block.
	for i := 0; i < 64; i++ {
		hub.Publish(AppointmentEvent{Type: EventUpdated})
	}

	drained := 0
	for {
		select {
		case <-ch:
			drained++
			continue
		default:
		}
		break
	}
	if drained == 0 || drained > 16 {
		t.Fatalf("expected 1..16 buffered events, drained %d", drained)
	}
}
