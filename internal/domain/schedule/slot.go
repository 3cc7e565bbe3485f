package schedule

import (
	"strings"
	"time"
)

// ===============================
// Slot Status
// ===============================

type Status string

const (
	StatusAvailable Status = "available"
	StatusBlocked   Status = "blocked"
	StatusReserved  Status = "reserved"
)

// Event is a remote calendar entry. The calendar owns it; we only read
// summary, start and end, and keep the remote id for deletes.
type Event struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
}

// Slot is a fixed 30-minute candidate interval inside the daily window.
// Derived per request, never persisted.
type Slot struct {
	EventID string
	Title   string
	Start   time.Time
	End     time.Time
	Status  Status
}

// Classify maps a remote event to a slot status by summary convention:
// anything mentioning "Blocked" is a doctor-blocked slot, the rest are
// booked appointments.
func Classify(summary string) Status {
	if strings.Contains(summary, "Blocked") {
		return StatusBlocked
	}
	return StatusReserved
}
