package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/studio316/booking-api/internal/audit"
	domain "github.com/studio316/booking-api/internal/domain/appointment"
	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/reconcile"
	"github.com/studio316/booking-api/internal/store"
)

var testNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	store  *store.Store
	book   *BookAppointment
	cancel *CancelAppointment
	slots  *GetAvailability
}

// newFixture wires the usecases against a seeded in-memory store with a
// fully open availability source, so only the ledger decides conflicts.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := store.New()
	st.SeedCatalog(testNow)

	clock := func() time.Time { return testNow }
	window := domain.Window{Open: "09:00", Close: "18:00", SlotMinutes: 30}
	source := domain.SourceFunc(func(barberID, date, timeStr string) bool { return true })

	auditd := audit.NewDispatcher(audit.New(st))
	reconciler := reconcile.NewDispatcher(st, clock)

	return &fixture{
		store:  st,
		book:   NewBookAppointment(st, source, window, auditd, reconciler, clock),
		cancel: NewCancelAppointment(st, auditd, reconciler, clock),
		slots:  NewGetAvailability(st, source, window),
	}
}

func TestBookAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.book.Execute(ctx, BookAppointmentInput{
		UserID:    "user1",
		BarberID:  "barber1",
		ServiceID: "service1",
		Date:      "2026-09-02",
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if ap.ID == "" {
		t.Fatal("expected a generated appointment id")
	}
	if ap.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", ap.Status)
	}

	stored, err := f.store.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatalf("ledger lookup: %v", err)
	}
	if stored.UserID != "user1" || stored.BarberID != "barber1" || stored.Time != "10:00" {
		t.Fatalf("ledger entry mismatch: %+v", stored)
	}

	// The booked slot must now derive as unavailable.
	slots, err := f.slots.Execute(ctx, "barber1", "2026-09-02")
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	for _, s := range slots {
		if s.Time == "10:00" && s.Available {
			t.Fatal("booked slot still derives as available")
		}
	}
}

func TestBookAppointmentTakenSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := BookAppointmentInput{
		UserID:    "user1",
		BarberID:  "barber1",
		ServiceID: "service1",
		Date:      "2026-09-02",
		Time:      "10:00",
	}
	if _, err := f.book.Execute(ctx, in); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	in.UserID = "user2"
	if _, err := f.book.Execute(ctx, in); !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
}

func TestBookAppointmentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := BookAppointmentInput{
		UserID:    "user1",
		BarberID:  "barber1",
		ServiceID: "service1",
		Date:      "2026-09-02",
		Time:      "10:00",
	}

	cases := []struct {
		name   string
		mutate func(*BookAppointmentInput)
		code   string
	}{
		{"no user", func(in *BookAppointmentInput) { in.UserID = "" }, "unauthenticated"},
		{"bad date", func(in *BookAppointmentInput) { in.Date = "02/09/2026" }, "invalid_date_or_time"},
		{"bad time", func(in *BookAppointmentInput) { in.Time = "10am" }, "invalid_date_or_time"},
		{"unknown barber", func(in *BookAppointmentInput) { in.BarberID = "barber99" }, "not_found"},
		{"unknown service", func(in *BookAppointmentInput) { in.ServiceID = "service99" }, "not_found"},
		{"off the grid", func(in *BookAppointmentInput) { in.Time = "10:10" }, "slot_unavailable"},
		{"before opening", func(in *BookAppointmentInput) { in.Time = "08:00" }, "slot_unavailable"},
	}

	for _, tc := range cases {
		in := base
		tc.mutate(&in)
		if _, err := f.book.Execute(ctx, in); !httperr.IsBusiness(err, tc.code) {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}

	if aps, _ := f.store.ListForDate(ctx, ""); len(aps) != 0 {
		t.Fatalf("rejected bookings must not touch the ledger, found %d", len(aps))
	}
}

func TestBookAppointmentBlockedSource(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	blocked := domain.SourceFunc(func(barberID, date, timeStr string) bool { return false })
	book := NewBookAppointment(f.store, blocked,
		domain.Window{Open: "09:00", Close: "18:00", SlotMinutes: 30},
		audit.NewDispatcher(audit.New(f.store)),
		reconcile.NewDispatcher(f.store, func() time.Time { return testNow }),
		func() time.Time { return testNow })

	_, err := book.Execute(ctx, BookAppointmentInput{
		UserID:    "user1",
		BarberID:  "barber1",
		ServiceID: "service1",
		Date:      "2026-09-02",
		Time:      "10:00",
	})
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Fatalf("expected slot_unavailable, got %v", err)
	}
}

func TestCancelAppointmentOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.book.Execute(ctx, BookAppointmentInput{
		UserID:    "user1",
		BarberID:  "barber1",
		ServiceID: "service1",
		Date:      "2026-09-02",
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	// Another customer cannot cancel it.
	if _, err := f.cancel.Execute(ctx, ap.ID, "user2"); !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("expected forbidden, got %v", err)
	}
	stored, _ := f.store.GetAppointment(ctx, ap.ID)
	if stored.Status != string(domain.StatusConfirmed) {
		t.Fatalf("forbidden cancel must leave the ledger untouched, got %s", stored.Status)
	}

	// The owner can.
	got, err := f.cancel.Execute(ctx, ap.ID, "user1")
	if err != nil {
		t.Fatalf("owner cancel: %v", err)
	}
	if got.Status != string(domain.StatusCancelled) || got.CancelledAt == nil {
		t.Fatalf("expected cancelled with timestamp, got %+v", got)
	}
}

func TestCancelAppointmentAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, _ := f.book.Execute(ctx, BookAppointmentInput{
		UserID:    "user1",
		BarberID:  "barber1",
		ServiceID: "service1",
		Date:      "2026-09-02",
		Time:      "10:00",
	})

	got, err := f.cancel.Execute(ctx, ap.ID, "admin1")
	if err != nil {
		t.Fatalf("admin cancel: %v", err)
	}
	if got.Status != string(domain.StatusCancelled) {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}
}

func TestCancelAppointmentIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, _ := f.book.Execute(ctx, BookAppointmentInput{
		UserID:    "user1",
		BarberID:  "barber1",
		ServiceID: "service1",
		Date:      "2026-09-02",
		Time:      "10:00",
	})

	first, err := f.cancel.Execute(ctx, ap.ID, "user1")
	if err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	second, err := f.cancel.Execute(ctx, ap.ID, "user1")
	if err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if second.Status != string(domain.StatusCancelled) {
		t.Fatalf("expected cancelled, got %s", second.Status)
	}
	if !second.CancelledAt.Equal(*first.CancelledAt) {
		t.Fatal("repeat cancel must not move the cancellation timestamp")
	}
}

func TestCancelAppointmentErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.cancel.Execute(ctx, "nope", ""); !httperr.IsBusiness(err, "unauthenticated") {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if _, err := f.cancel.Execute(ctx, "nope", "ghost"); !httperr.IsBusiness(err, "unauthenticated") {
		t.Fatalf("unknown actor: expected unauthenticated, got %v", err)
	}
	if _, err := f.cancel.Execute(ctx, "nope", "user1"); !httperr.IsBusiness(err, "not_found") {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestGetAvailabilityErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.slots.Execute(ctx, "barber99", "2026-09-02"); !httperr.IsBusiness(err, "not_found") {
		t.Fatalf("expected not_found, got %v", err)
	}
	if _, err := f.slots.Execute(ctx, "barber1", "tomorrow"); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("expected invalid_date_or_time, got %v", err)
	}
}
