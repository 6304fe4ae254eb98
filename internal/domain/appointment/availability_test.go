package appointment

import (
	"testing"
	"time"
)

func stdWindow() Window {
	return Window{Open: "09:00", Close: "18:00", SlotMinutes: 30}
}

func allOpen() Source {
	return SourceFunc(func(barberID, date, timeStr string) bool { return true })
}

func TestWindowTimes(t *testing.T) {
	times := stdWindow().Times()

	if len(times) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(times))
	}
	if times[0] != "09:00" || times[len(times)-1] != "17:30" {
		t.Fatalf("unexpected boundary slots: %v", times)
	}

	for _, ts := range times {
		if _, err := time.Parse("15:04", ts); err != nil {
			t.Fatalf("malformed slot time %q: %v", ts, err)
		}
	}
}

func TestWindowContains(t *testing.T) {
	w := stdWindow()

	if !w.Contains("10:30") {
		t.Fatal("expected 10:30 on the grid")
	}
	if w.Contains("10:15") {
		t.Fatal("expected 10:15 off the grid")
	}
	if w.Contains("18:00") {
		t.Fatal("expected close time off the grid")
	}
}

func TestWindowInvalid(t *testing.T) {
	if got := (Window{Open: "bogus", Close: "18:00", SlotMinutes: 30}).Times(); got != nil {
		t.Fatalf("expected nil times for invalid window, got %v", got)
	}
	if got := (Window{Open: "09:00", Close: "18:00", SlotMinutes: 0}).Times(); got != nil {
		t.Fatalf("expected nil times for zero slot width, got %v", got)
	}
}

func TestHashSourceDeterministic(t *testing.T) {
	src := NewHashSource(316, 0.7)

	for _, ts := range stdWindow().Times() {
		first := src.Available("barber1", "2026-09-01", ts)
		for i := 0; i < 5; i++ {
			if src.Available("barber1", "2026-09-01", ts) != first {
				t.Fatalf("slot %s changed availability between draws", ts)
			}
		}
	}
}

func TestHashSourceRateBounds(t *testing.T) {
	open := NewHashSource(1, 1.0)
	closed := NewHashSource(1, 0)

	for _, ts := range stdWindow().Times() {
		if !open.Available("barber1", "2026-09-01", ts) {
			t.Fatalf("rate 1.0 should leave every slot open, %s was blocked", ts)
		}
		if closed.Available("barber1", "2026-09-01", ts) {
			t.Fatalf("rate 0 should block every slot, %s was open", ts)
		}
	}
}

func TestDeriveSlotsFullSequence(t *testing.T) {
	slots := DeriveSlots(stdWindow(), allOpen(), "barber1", "2026-09-01", nil)

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("expected slot %s available", s.Time)
		}
	}
}

func TestDeriveSlotsBookedOverride(t *testing.T) {
	booked := map[string]bool{"10:00": true}

	slots := DeriveSlots(stdWindow(), allOpen(), "barber1", "2026-09-01", booked)

	for _, s := range slots {
		if s.Time == "10:00" && s.Available {
			t.Fatal("expected booked slot 10:00 unavailable")
		}
		if s.Time != "10:00" && !s.Available {
			t.Fatalf("expected slot %s untouched", s.Time)
		}
	}
}

func TestDeriveSlotsBaseBlockWins(t *testing.T) {
	blocked := SourceFunc(func(barberID, date, timeStr string) bool {
		return timeStr != "11:00"
	})

	slots := DeriveSlots(stdWindow(), blocked, "barber1", "2026-09-01", nil)

	for _, s := range slots {
		if s.Time == "11:00" && s.Available {
			t.Fatal("expected base-blocked slot 11:00 unavailable")
		}
	}
}
