package booking

import (
	"context"
	"errors"
	"time"

	"github.com/mwangie/CareToCrown/internal/audit"
	"github.com/mwangie/CareToCrown/internal/credentials"
	"github.com/mwangie/CareToCrown/internal/domain/schedule"
	"github.com/mwangie/CareToCrown/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type BlockSlotInput struct {
	Role       string
	ProviderID uint
	StartTime  string // RFC 3339
}

// ======================================================
// USE CASE
// ======================================================

// BlockSlot marks a half-hour slot unavailable by writing a blocker
// event to the provider's own calendar.
type BlockSlot struct {
	creds    credentials.Store
	calendar schedule.CalendarService
	audit    *audit.Dispatcher
}

func NewBlockSlot(
	creds credentials.Store,
	calendar schedule.CalendarService,
	audit *audit.Dispatcher,
) *BlockSlot {
	return &BlockSlot{creds: creds, calendar: calendar, audit: audit}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BlockSlot) Execute(ctx context.Context, in BlockSlotInput) (string, error) {

	start, err := time.Parse(time.RFC3339, in.StartTime)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_start_time")
	}

	tok, err := uc.creds.Get(ctx, in.ProviderID)
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			return "", httperr.ErrBusiness("provider_not_authenticated")
		}
		return "", err
	}

	eventID, err := uc.calendar.InsertEvent(ctx, in.ProviderID, tok, schedule.Event{
		Summary: "Blocked Slot",
		Start:   start,
		End:     start.Add(schedule.SlotDuration),
	})
	if err != nil {
		return "", httperr.ErrBusiness("calendar_insert_failed")
	}

	uc.audit.Dispatch(audit.Event{
		Role:       in.Role,
		ProviderID: &in.ProviderID,
		Action:     "slot_blocked",
		Entity:     "calendar_event",
		EntityID:   eventID,
		Metadata:   map[string]any{"start": start.Format(time.RFC3339)},
	})

	return eventID, nil
}
