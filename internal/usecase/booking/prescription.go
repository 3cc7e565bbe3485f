package booking

import (
	"context"
	"log"
	"time"

	"github.com/mwangie/CareToCrown/internal/audit"
	"github.com/mwangie/CareToCrown/internal/domain/directory"
	"github.com/mwangie/CareToCrown/internal/domain/pharmacy"
	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/models"
	"github.com/mwangie/CareToCrown/internal/notify"
	"github.com/mwangie/CareToCrown/internal/storage"
)

// ======================================================
// UPLOAD PRESCRIPTION
// ======================================================

type UploadPrescriptionInput struct {
	PharmacistID uint
	PatientName  string
	StartTime    string // RFC 3339
	Data         []byte
	MimeType     string
}

type UploadPrescription struct {
	providers directory.Repository
	records   pharmacy.Records
	files     storage.FileStore
	notifier  *notify.Service
	audit     *audit.Dispatcher
}

func NewUploadPrescription(
	providers directory.Repository,
	records pharmacy.Records,
	files storage.FileStore,
	notifier *notify.Service,
	audit *audit.Dispatcher,
) *UploadPrescription {
	return &UploadPrescription{
		providers: providers,
		records:   records,
		files:     files,
		notifier:  notifier,
		audit:     audit,
	}
}

func (uc *UploadPrescription) Execute(ctx context.Context, in UploadPrescriptionInput) (string, error) {

	// --------------------------------------------------
	// 1. Only PDF and image uploads
	// --------------------------------------------------
	if !storage.Allowed(in.MimeType) {
		return "", httperr.ErrBusiness("unsupported_file_type")
	}

	start, err := time.Parse(time.RFC3339, in.StartTime)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_start_time")
	}

	// --------------------------------------------------
	// 2. Pharmacist and patient must exist
	// --------------------------------------------------
	pharmacist, err := uc.providers.FindByID(ctx, models.RolePharmacist, in.PharmacistID)
	if err != nil {
		return "", httperr.ErrBusiness("pharmacist_not_found")
	}

	if _, err := uc.providers.FindByName(ctx, models.RolePatient, in.PatientName); err != nil {
		return "", httperr.ErrBusiness("patient_not_found")
	}

	// --------------------------------------------------
	// 3. Store the file
	// --------------------------------------------------
	filename, err := uc.files.Save(ctx, in.Data, in.MimeType)
	if err != nil {
		return "", httperr.ErrBusiness("file_store_failed")
	}

	// --------------------------------------------------
	// 4. Record for the pharmacist dashboard
	// --------------------------------------------------
	rec := &models.Prescription{
		PharmacistID: pharmacist.ID,
		PatientName:  in.PatientName,
		SlotStart:    start,
		Filename:     filename,
		MimeType:     in.MimeType,
		Status:       models.PrescriptionReceived,
	}
	if err := uc.records.Create(ctx, rec); err != nil {
		return "", err
	}

	// --------------------------------------------------
	// 5. Tell the pharmacist
	// --------------------------------------------------
	uc.notifier.PrescriptionReceived(ctx, pharmacist, in.PatientName, start)

	uc.audit.Dispatch(audit.Event{
		Role:       models.RolePharmacist,
		ProviderID: &pharmacist.ID,
		Action:     "prescription_uploaded",
		Entity:     "prescription",
		EntityID:   filename,
		Metadata: map[string]any{
			"patient": in.PatientName,
			"start":   start.Format(time.RFC3339),
		},
	})

	return filename, nil
}

// ======================================================
// MARK READY
// ======================================================

type MarkReadyInput struct {
	PharmacistID uint
	PatientName  string
	SlotStart    string // RFC 3339, identifies the upload
	PickupTime   time.Time
}

type MarkReady struct {
	providers directory.Repository
	records   pharmacy.Records
	notifier  *notify.Service
	audit     *audit.Dispatcher
}

func NewMarkReady(
	providers directory.Repository,
	records pharmacy.Records,
	notifier *notify.Service,
	audit *audit.Dispatcher,
) *MarkReady {
	return &MarkReady{
		providers: providers,
		records:   records,
		notifier:  notifier,
		audit:     audit,
	}
}

func (uc *MarkReady) Execute(ctx context.Context, in MarkReadyInput) error {

	pharmacist, err := uc.providers.FindByID(ctx, models.RolePharmacist, in.PharmacistID)
	if err != nil {
		return httperr.ErrBusiness("pharmacist_not_found")
	}

	patient, err := uc.providers.FindByName(ctx, models.RolePatient, in.PatientName)
	if err != nil {
		return httperr.ErrBusiness("patient_not_found")
	}

	// Update the record when we can find it; the notification goes out
	// either way.
	if in.SlotStart != "" {
		if slot, perr := time.Parse(time.RFC3339, in.SlotStart); perr == nil {
			if rec, ferr := uc.records.FindBySlot(ctx, pharmacist.ID, patient.Name, slot); ferr == nil {
				rec.Status = models.PrescriptionReady
				rec.PickupTime = &in.PickupTime
				if uerr := uc.records.Update(ctx, rec); uerr != nil {
					log.Printf("prescription: record update failed: %v", uerr)
				}
			}
		}
	}

	uc.notifier.PrescriptionReady(ctx, patient, pharmacist, in.PickupTime)

	uc.audit.Dispatch(audit.Event{
		Role:       models.RolePharmacist,
		ProviderID: &pharmacist.ID,
		Action:     "prescription_ready",
		Entity:     "prescription",
		Metadata: map[string]any{
			"patient": patient.Name,
			"pickup":  in.PickupTime.Format(time.RFC3339),
		},
	})

	return nil
}
