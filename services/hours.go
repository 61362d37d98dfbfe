package services

import "time"

// DayHours is the operating-hours policy for a single calendar date.
type DayHours struct {
	Closed      bool
	StartHour   int
	StartMinute int
	EndHour     int
	SlotMinutes int
}

// HoursFor maps a date to the venue policy. Sundays are closed, Saturdays run
// a short day. Total over all dates, no I/O.
func HoursFor(date time.Time) DayHours {
	switch date.Weekday() {
	case time.Sunday:
		return DayHours{Closed: true}
	case time.Saturday:
		return DayHours{StartHour: 8, StartMinute: 0, EndHour: 14, SlotMinutes: 30}
	default:
		return DayHours{StartHour: 8, StartMinute: 30, EndHour: 18, SlotMinutes: 30}
	}
}
