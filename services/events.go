package services

import (
	"mestar-backend/models"
	"sync"
)

const (
	EventCreated = "created"
	EventUpdated = "updated"
)

// AppointmentEvent mirrors one write to the appointments table. Events are
// advisory only: a consumer must re-query the schedule before acting, the
// payload may already be stale when it arrives.
type AppointmentEvent struct {
	Type        string              `json:"type"`
	Appointment *models.Appointment `json:"appointment"`
}

// EventHub fans appointment changes out to live dashboard streams. Slow
// subscribers lose events instead of blocking bookings; a dropped event costs
// one refresh, never correctness.
type EventHub struct {
	mu   sync.Mutex
	subs map[chan AppointmentEvent]struct{}
}

func NewEventHub() *EventHub {
	return &EventHub{subs: make(map[chan AppointmentEvent]struct{})}
}

// Subscribe registers a listener. The returned func unsubscribes and closes
// the channel; callers must stop reading after calling it.
func (h *EventHub) Subscribe() (<-chan AppointmentEvent, func()) {
	ch := make(chan AppointmentEvent, 16)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
	}
}

func (h *EventHub) Publish(ev AppointmentEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
