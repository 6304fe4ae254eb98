// Package reconcile re-derives barber display statuses whenever the
// appointment ledger changes.
package reconcile

import "time"

// Ledger is the slice of the store the reconciler needs.
type Ledger interface {
	Reconcile(now time.Time)
}

// Dispatcher coalesces ledger-change notifications into status
// recomputations on a single worker goroutine. Triggers arriving while a
// run is queued are dropped: reconciliation is a pure function of the
// latest state, so one pending run covers them all.
type Dispatcher struct {
	ledger Ledger
	clock  func() time.Time
	queue  chan struct{}
}

func NewDispatcher(ledger Ledger, clock func() time.Time) *Dispatcher {
	d := &Dispatcher{
		ledger: ledger,
		clock:  clock,
		queue:  make(chan struct{}, 1),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for range d.queue {
		d.ledger.Reconcile(d.clock())
	}
}

// Trigger requests a reconciliation; it never blocks the caller.
func (d *Dispatcher) Trigger() {
	select {
	case d.queue <- struct{}{}:
	default:
	}
}
