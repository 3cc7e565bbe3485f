package booking

import (
	"context"
	"errors"

	"github.com/mwangie/CareToCrown/internal/audit"
	"github.com/mwangie/CareToCrown/internal/credentials"
	"github.com/mwangie/CareToCrown/internal/domain/schedule"
	"github.com/mwangie/CareToCrown/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type AllowSlotInput struct {
	Role       string
	ProviderID uint
	EventID    string
}

// ======================================================
// USE CASE
// ======================================================

// AllowSlot re-opens a blocked slot by deleting the blocker event.
type AllowSlot struct {
	creds    credentials.Store
	calendar schedule.CalendarService
	audit    *audit.Dispatcher
}

func NewAllowSlot(
	creds credentials.Store,
	calendar schedule.CalendarService,
	audit *audit.Dispatcher,
) *AllowSlot {
	return &AllowSlot{creds: creds, calendar: calendar, audit: audit}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AllowSlot) Execute(ctx context.Context, in AllowSlotInput) error {

	if in.EventID == "" {
		return httperr.ErrBusiness("missing_event_id")
	}

	tok, err := uc.creds.Get(ctx, in.ProviderID)
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			return httperr.ErrBusiness("provider_not_authenticated")
		}
		return err
	}

	if err := uc.calendar.DeleteEvent(ctx, in.ProviderID, tok, in.EventID); err != nil {
		return httperr.ErrBusiness("event_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Role:       in.Role,
		ProviderID: &in.ProviderID,
		Action:     "slot_allowed",
		Entity:     "calendar_event",
		EntityID:   in.EventID,
	})

	return nil
}
