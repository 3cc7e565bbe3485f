package booking

import (
	"context"
	"time"

	"github.com/mwangie/CareToCrown/internal/audit"
	"github.com/mwangie/CareToCrown/internal/domain/directory"
	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/models"
	"github.com/mwangie/CareToCrown/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type NotifyTransporterInput struct {
	TransporterID  uint // 0 falls back to the configured default
	DoctorID       uint
	PatientName    string
	PickupLocation string
	StartTime      string // RFC 3339
}

// ======================================================
// USE CASE
// ======================================================

type NotifyTransporter struct {
	providers            directory.Repository
	notifier             *notify.Service
	audit                *audit.Dispatcher
	defaultTransporterID uint
}

func NewNotifyTransporter(
	providers directory.Repository,
	notifier *notify.Service,
	audit *audit.Dispatcher,
	defaultTransporterID uint,
) *NotifyTransporter {
	return &NotifyTransporter{
		providers:            providers,
		notifier:             notifier,
		audit:                audit,
		defaultTransporterID: defaultTransporterID,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *NotifyTransporter) Execute(ctx context.Context, in NotifyTransporterInput) error {

	start, err := time.Parse(time.RFC3339, in.StartTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_start_time")
	}

	transporterID := in.TransporterID
	if transporterID == 0 {
		transporterID = uc.defaultTransporterID
	}

	transporter, err := uc.providers.FindByID(ctx, models.RoleTransporter, transporterID)
	if err != nil {
		return httperr.ErrBusiness("transporter_not_found")
	}

	doctor, err := uc.providers.FindByID(ctx, models.RoleDoctor, in.DoctorID)
	if err != nil {
		return httperr.ErrBusiness("doctor_not_found")
	}

	uc.notifier.TransportRequested(ctx, transporter, doctor, in.PatientName, in.PickupLocation, start)

	uc.audit.Dispatch(audit.Event{
		Role:       models.RoleTransporter,
		ProviderID: &transporter.ID,
		Action:     "transport_requested",
		Entity:     "provider",
		Metadata: map[string]any{
			"patient": in.PatientName,
			"pickup":  in.PickupLocation,
			"start":   start.Format(time.RFC3339),
		},
	})

	return nil
}
