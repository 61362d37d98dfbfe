package services

import "fmt"

// GenerateSlots emits every bookable "HH:MM" start time for a day, ascending.
// The top-of-hour closing instant itself counts as a start time (a 30-minute
// service booked there runs past closing; kept that way on purpose, see the
// loop condition). A closed day yields nothing.
func GenerateSlots(h DayHours) []string {
	if h.Closed || h.SlotMinutes <= 0 {
		return nil
	}

	var slots []string
	hour, minute := h.StartHour, h.StartMinute
	for hour < h.EndHour || (hour == h.EndHour && minute == 0) {
		slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		minute += h.SlotMinutes
		for minute >= 60 {
			minute -= 60
			hour++
		}
	}
	return slots
}
