package booking

import (
	"context"
	"errors"
	"time"

	"github.com/mwangie/CareToCrown/internal/credentials"
	"github.com/mwangie/CareToCrown/internal/domain/schedule"
	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ListEventsInput struct {
	ProviderID uint
	RangeStart time.Time
	RangeEnd   time.Time
}

// ======================================================
// USE CASE
// ======================================================

// ListEvents pulls the provider's busy events from the remote calendar
// and merges them with the open half-hour slots of the clinic day.
type ListEvents struct {
	creds    credentials.Store
	calendar schedule.CalendarService

	// Now is swappable for tests. Defaults to the clinic clock.
	Now func() time.Time
}

func NewListEvents(creds credentials.Store, calendar schedule.CalendarService) *ListEvents {
	return &ListEvents{
		creds:    creds,
		calendar: calendar,
		Now:      timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ListEvents) Execute(ctx context.Context, in ListEventsInput) ([]schedule.Slot, error) {

	// --------------------------------------------------
	// 1. Provider must have granted calendar access
	// --------------------------------------------------
	tok, err := uc.creds.Get(ctx, in.ProviderID)
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			return nil, httperr.ErrBusiness("provider_not_authenticated")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Busy events for the requested range
	// --------------------------------------------------
	busy, err := uc.calendar.ListEvents(ctx, in.ProviderID, tok, in.RangeStart, in.RangeEnd)
	if err != nil {
		return nil, httperr.ErrBusiness("calendar_list_failed")
	}

	// --------------------------------------------------
	// 3. Merge busy events with open slots
	// --------------------------------------------------
	return schedule.Compute(busy, in.RangeStart, in.RangeEnd, uc.Now()), nil
}
