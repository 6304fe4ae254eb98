package appointment

import (
	"fmt"
	"hash/fnv"
	"time"
)

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ===============================
// Slot window
// ===============================

// Window is the bookable part of a shop day. Slots start at Open and are
// laid out every SlotMinutes up to (excluding) Close.
type Window struct {
	Open        string
	Close       string
	SlotMinutes int
}

func (w Window) Times() []string {
	open, err1 := parseClockToMinutes(w.Open)
	clos, err2 := parseClockToMinutes(w.Close)
	if err1 != nil || err2 != nil || w.SlotMinutes <= 0 {
		return nil
	}

	var times []string
	for cur := open; cur < clos; cur += w.SlotMinutes {
		times = append(times, minutesToClock(cur))
	}
	return times
}

// Contains reports whether timeStr lies exactly on the window's slot grid.
func (w Window) Contains(timeStr string) bool {
	for _, t := range w.Times() {
		if t == timeStr {
			return true
		}
	}
	return false
}

func parseClockToMinutes(timeStr string) (int, error) {
	tm, err := time.Parse("15:04", timeStr)
	if err != nil {
		return 0, err
	}
	return tm.Hour()*60 + tm.Minute(), nil
}

func minutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ===============================
// Base availability source
// ===============================

// Source decides the base availability of a slot before the ledger is
// consulted. The shop floor marks roughly a third of slots as blocked
// (walk-ins, cleanup, breaks) without modelling the real reason.
type Source interface {
	Available(barberID, date, timeStr string) bool
}

// SourceFunc adapts a plain function into a Source.
type SourceFunc func(barberID, date, timeStr string) bool

func (f SourceFunc) Available(barberID, date, timeStr string) bool {
	return f(barberID, date, timeStr)
}

// HashSource draws base availability from an FNV hash of
// (seed, barber, date, time). Unlike an independent random draw per query,
// the same slot always resolves the same way, so a slot that was offered is
// still offered when the booking is confirmed.
type HashSource struct {
	seed int64
	rate float64
}

func NewHashSource(seed int64, rate float64) *HashSource {
	return &HashSource{seed: seed, rate: rate}
}

func (s *HashSource) Available(barberID, date, timeStr string) bool {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s|%s", s.seed, barberID, date, timeStr)
	draw := float64(h.Sum64()%1000) / 1000.0
	return draw < s.rate
}

// ===============================
// Slot derivation
// ===============================

// DeriveSlots produces the full slot sequence for one barber and date.
// Every window time is present; a slot is available when the base source
// allows it and no live appointment occupies it. The sequence is produced
// even for an unknown barber, callers pre-validate.
func DeriveSlots(w Window, src Source, barberID, date string, booked map[string]bool) []TimeSlot {
	times := w.Times()
	slots := make([]TimeSlot, 0, len(times))

	for _, t := range times {
		slots = append(slots, TimeSlot{
			Time:      t,
			Available: src.Available(barberID, date, t) && !booked[t],
		})
	}

	return slots
}
