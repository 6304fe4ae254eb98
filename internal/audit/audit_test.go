package audit

import (
	"sync"
	"testing"
	"time"

	"github.com/studio316/booking-api/internal/models"
)

type captureSink struct {
	mu      sync.Mutex
	entries []models.AuditLog
	expect  int
	done    chan struct{}
}

func newCaptureSink(expect int) *captureSink {
	return &captureSink{expect: expect, done: make(chan struct{})}
}

func (s *captureSink) AppendAudit(entry models.AuditLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if len(s.entries) == s.expect {
		close(s.done)
	}
}

func (s *captureSink) wait(t *testing.T) []models.AuditLog {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for audit entries")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries
}

func TestLoggerMarshalsMetadata(t *testing.T) {
	sink := newCaptureSink(1)
	logger := New(sink)

	userID := "user1"
	entityID := "appointment1"
	if err := logger.Log(&userID, "appointment_booked", "appointment", &entityID, map[string]string{"note": "walk-in"}); err != nil {
		t.Fatalf("log: %v", err)
	}

	entries := sink.wait(t)
	e := entries[0]
	if e.Action != "appointment_booked" || e.Entity != "appointment" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if *e.UserID != "user1" || *e.EntityID != "appointment1" {
		t.Fatalf("unexpected ids: %+v", e)
	}
	if e.Metadata != `{"note":"walk-in"}` {
		t.Fatalf("unexpected metadata: %q", e.Metadata)
	}
	if e.CreatedAt.IsZero() {
		t.Fatal("entry has no timestamp")
	}
}

func TestLoggerNilMetadata(t *testing.T) {
	sink := newCaptureSink(1)
	logger := New(sink)

	if err := logger.Log(nil, "barber_status_changed", "barber", nil, nil); err != nil {
		t.Fatalf("log: %v", err)
	}

	entries := sink.wait(t)
	if entries[0].Metadata != "" {
		t.Fatalf("expected empty metadata, got %q", entries[0].Metadata)
	}
}

func TestDispatcherDeliversAsync(t *testing.T) {
	sink := newCaptureSink(3)
	d := NewDispatcher(New(sink))

	for i := 0; i < 3; i++ {
		id := "user1"
		d.Dispatch(Event{UserID: &id, Action: "appointment_booked", Entity: "appointment"})
	}

	entries := sink.wait(t)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}
