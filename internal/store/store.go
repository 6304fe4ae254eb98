// Package store owns every piece of mutable state in the process: the
// identity list, the barber and service catalog, the appointment ledger and
// the audit trail. Nothing here survives a restart; that is the point of
// the design, not an accident. All access goes through the Store handle so
// no package holds ambient globals.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domain "github.com/studio316/booking-api/internal/domain/appointment"
	barberdomain "github.com/studio316/booking-api/internal/domain/barber"
	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/models"
)

type Store struct {
	mu sync.RWMutex

	users    []models.User
	barbers  []models.Barber
	services []models.Service

	appointments []models.Appointment
	audits       []models.AuditLog
	nextAuditID  uint
}

func New() *Store {
	return &Store{nextAuditID: 1}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

// CreateUser registers a new identity. Email uniqueness is checked and the
// record appended under one lock.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, u.Email) {
			return httperr.ErrBusiness("email_taken")
		}
	}

	s.users = append(s.users, *u)
	return nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (s *Store) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Barber, len(s.barbers))
	copy(out, s.barbers)
	return out, nil
}

func (s *Store) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.barbers {
		if s.barbers[i].ID == id {
			b := s.barbers[i]
			return &b, nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

// SetBarberStatus applies a manual status override.
func (s *Store) SetBarberStatus(ctx context.Context, id string, status barberdomain.Status) (*models.Barber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.barbers {
		if s.barbers[i].ID == id {
			s.barbers[i].Status = string(status)
			b := s.barbers[i]
			return &b, nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out, nil
}

func (s *Store) GetService(ctx context.Context, id string) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.services {
		if s.services[i].ID == id {
			sv := s.services[i]
			return &sv, nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

// CreateAppointmentIfFree is the slot reservation: the conflict check and
// the append happen under one lock, so two bookings for the same
// (barber, date, time) can never both succeed.
func (s *Store) CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		a := &s.appointments[i]
		if a.BarberID == ap.BarberID && a.Date == ap.Date && a.Time == ap.Time && domain.IsActive(a.Status) {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	s.appointments = append(s.appointments, *ap)
	return nil
}

func (s *Store) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			ap := s.appointments[i]
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

func (s *Store) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == ap.ID {
			s.appointments[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("not_found")
}

func (s *Store) ListForBarberDate(ctx context.Context, barberID, date string) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for i := range s.appointments {
		a := &s.appointments[i]
		if a.BarberID == barberID && a.Date == date && domain.IsActive(a.Status) {
			out = append(out, *a)
		}
	}
	sortByStart(out)
	return out, nil
}

func (s *Store) ListForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for i := range s.appointments {
		if s.appointments[i].UserID == userID {
			out = append(out, s.appointments[i])
		}
	}
	sortByStart(out)
	return out, nil
}

func (s *Store) ListForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for i := range s.appointments {
		if date == "" || s.appointments[i].Date == date {
			out = append(out, s.appointments[i])
		}
	}
	sortByStart(out)
	return out, nil
}

func sortByStart(aps []models.Appointment) {
	sort.Slice(aps, func(i, j int) bool {
		if aps[i].Date != aps[j].Date {
			return aps[i].Date < aps[j].Date
		}
		if aps[i].Time != aps[j].Time {
			return aps[i].Time < aps[j].Time
		}
		return aps[i].ID < aps[j].ID
	})
}

// --------------------------------------------------
// Reconciliation
// --------------------------------------------------

// Reconcile recomputes every barber's display status against the ledger at
// the given wall-clock time. A confirmed appointment today with a start at
// or before now marks the barber occupied; break and off are sticky.
func (s *Store) Reconcile(now time.Time) {
	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.barbers {
		b := &s.barbers[i]

		busy := false
		for j := range s.appointments {
			a := &s.appointments[j]
			if a.BarberID == b.ID && a.Date == today && a.Time <= clock && a.Status == string(domain.StatusConfirmed) {
				busy = true
				break
			}
		}

		b.Status = string(barberdomain.Derive(barberdomain.Status(b.Status), busy))
	}
}

// --------------------------------------------------
// Audit trail
// --------------------------------------------------

func (s *Store) AppendAudit(entry models.AuditLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextAuditID
	s.nextAuditID++
	s.audits = append(s.audits, entry)
}

// ListAuditLogs returns the most recent entries, newest first.
func (s *Store) ListAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.audits)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]models.AuditLog, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.audits[i])
	}
	return out, nil
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

type Stats struct {
	TotalAppointments     int `json:"total_appointments"`
	ConfirmedAppointments int `json:"confirmed_appointments"`
	CancelledAppointments int `json:"cancelled_appointments"`
	TodayAppointments     int `json:"today_appointments"`
}

func (s *Store) ComputeStats(ctx context.Context, today string) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Stats
	for i := range s.appointments {
		a := &s.appointments[i]
		st.TotalAppointments++
		switch a.Status {
		case string(domain.StatusConfirmed):
			st.ConfirmedAppointments++
		case string(domain.StatusCancelled):
			st.CancelledAppointments++
		}
		if a.Date == today {
			st.TodayAppointments++
		}
	}
	return st, nil
}

// Compile-time check
var _ domain.Repository = (*Store)(nil)
