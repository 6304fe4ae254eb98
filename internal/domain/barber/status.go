package barber

import "github.com/studio316/booking-api/internal/httperr"

// ===============================
// Barber Status
// ===============================

type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
	StatusBreak     Status = "break"
	StatusOff       Status = "off"
)

func Parse(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusOccupied, StatusBreak, StatusOff:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// IsManual reports whether the status was set by hand and must survive
// reconciliation.
func IsManual(s Status) bool {
	return s == StatusBreak || s == StatusOff
}

// Derive recomputes a barber's display status from the ledger. Manual
// states are sticky and survive reconciliation no matter what the ledger
// says; otherwise a confirmed appointment running right now marks the chair
// occupied, and an idle chair is open.
func Derive(current Status, busyNow bool) Status {
	if IsManual(current) {
		return current
	}
	if busyNow {
		return StatusOccupied
	}
	return StatusAvailable
}
