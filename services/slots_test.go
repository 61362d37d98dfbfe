package services

import (
	"testing"
	"time"
)

func TestGenerateSlots_Weekday(t *testing.T) {
	slots := GenerateSlots(HoursFor(date(2024, time.June, 10))) // Monday

	if len(slots) != 20 {
		t.Fatalf("expected 20 weekday slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "08:30" {
		t.Errorf("expected first slot 08:30, got %s", slots[0])
	}
	// The closing instant itself is a bookable start, by design.
	if slots[len(slots)-1] != "18:00" {
		t.Errorf("expected last slot 18:00, got %s", slots[len(slots)-1])
	}
}

func TestGenerateSlots_Saturday(t *testing.T) {
	slots := GenerateSlots(HoursFor(date(2024, time.June, 8)))

	want := []string{
		"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00",
		"11:30", "12:00", "12:30", "13:00", "13:30", "14:00",
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d saturday slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], slots[i])
		}
	}
}

func TestGenerateSlots_Sunday(t *testing.T) {
	if slots := GenerateSlots(HoursFor(date(2024, time.June, 9))); len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %v", slots)
	}
}

func TestGenerateSlots_AscendingNoDuplicates(t *testing.T) {
	for _, d := range []time.Time{date(2024, time.June, 8), date(2024, time.June, 10)} {
		slots := GenerateSlots(HoursFor(d))
		for i := 1; i < len(slots); i++ {
			if slots[i] <= slots[i-1] {
				t.Errorf("%s: slots not strictly ascending at %d: %s then %s",
					d.Format(DateLayout), i, slots[i-1], slots[i])
			}
		}
	}
}

func TestGenerateSlots_ZeroStep(t *testing.T) {
	if slots := GenerateSlots(DayHours{StartHour: 8, EndHour: 14}); slots != nil {
		t.Fatalf("expected nil for zero slot minutes, got %v", slots)
	}
}
