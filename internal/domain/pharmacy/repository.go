package pharmacy

import (
	"context"
	"time"

	"github.com/mwangie/CareToCrown/internal/models"
)

// Records keeps prescription uploads so pharmacist dashboards can list
// them and mark-ready can attach a pickup time.
type Records interface {
	Create(
		ctx context.Context,
		p *models.Prescription,
	) error

	FindBySlot(
		ctx context.Context,
		pharmacistID uint,
		patientName string,
		slotStart time.Time,
	) (*models.Prescription, error)

	Update(
		ctx context.Context,
		p *models.Prescription,
	) error

	ListForPharmacist(
		ctx context.Context,
		pharmacistID uint,
	) ([]models.Prescription, error)
}
