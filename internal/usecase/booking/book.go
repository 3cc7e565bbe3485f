package booking

import (
	"context"
	"errors"
	"time"

	"github.com/mwangie/CareToCrown/internal/audit"
	"github.com/mwangie/CareToCrown/internal/credentials"
	"github.com/mwangie/CareToCrown/internal/domain/directory"
	"github.com/mwangie/CareToCrown/internal/domain/schedule"
	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/models"
	"github.com/mwangie/CareToCrown/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	Role        string // doctor or pharmacist
	ProviderID  uint
	PatientName string
	StartTime   string // RFC 3339
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	providers directory.Repository
	creds     credentials.Store
	calendar  schedule.CalendarService
	notifier  *notify.Service
	audit     *audit.Dispatcher
}

func NewBook(
	providers directory.Repository,
	creds credentials.Store,
	calendar schedule.CalendarService,
	notifier *notify.Service,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		providers: providers,
		creds:     creds,
		calendar:  calendar,
		notifier:  notifier,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(ctx context.Context, in BookInput) (string, error) {

	// --------------------------------------------------
	// 1. Only bookable roles
	// --------------------------------------------------
	if in.Role != models.RoleDoctor && in.Role != models.RolePharmacist {
		return "", httperr.ErrBusiness("invalid_role")
	}

	// --------------------------------------------------
	// 2. Slot start
	// --------------------------------------------------
	start, err := time.Parse(time.RFC3339, in.StartTime)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_start_time")
	}

	// --------------------------------------------------
	// 3. Both parties must exist
	// --------------------------------------------------
	provider, err := uc.providers.FindByID(ctx, in.Role, in.ProviderID)
	if err != nil {
		return "", httperr.ErrBusiness("provider_not_found")
	}

	patient, err := uc.providers.FindByName(ctx, models.RolePatient, in.PatientName)
	if err != nil {
		return "", httperr.ErrBusiness("patient_not_found")
	}

	// --------------------------------------------------
	// 4. Credential check before touching the calendar
	// --------------------------------------------------
	tok, err := uc.creds.Get(ctx, provider.ID)
	if err != nil {
		if errors.Is(err, credentials.ErrNotFound) {
			return "", httperr.ErrBusiness("provider_not_authenticated")
		}
		return "", err
	}

	// --------------------------------------------------
	// 5. Insert the appointment event
	// --------------------------------------------------
	// No reservation step: two requests racing for the same boundary
	// both insert, and the grid only reflects it on the next read.
	eventID, err := uc.calendar.InsertEvent(ctx, provider.ID, tok, schedule.Event{
		Summary: "Appointment with " + patient.Name,
		Start:   start,
		End:     start.Add(schedule.SlotDuration),
	})
	if err != nil {
		return "", httperr.ErrBusiness("calendar_insert_failed")
	}

	// --------------------------------------------------
	// 6. Notify both parties (best effort)
	// --------------------------------------------------
	uc.notifier.BookingConfirmed(ctx, patient, provider, start)

	// --------------------------------------------------
	// 7. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Role:       in.Role,
		ProviderID: &provider.ID,
		Action:     "booking_created",
		Entity:     "calendar_event",
		EntityID:   eventID,
		Metadata: map[string]any{
			"patient": patient.Name,
			"start":   start.Format(time.RFC3339),
		},
	})

	return eventID, nil
}
