package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/mwangie/CareToCrown/internal/domain/pharmacy"
	"github.com/mwangie/CareToCrown/internal/models"
)

type PrescriptionGormRepository struct {
	db *gorm.DB
}

func NewPrescriptionGormRepository(db *gorm.DB) *PrescriptionGormRepository {
	return &PrescriptionGormRepository{db: db}
}

func (r *PrescriptionGormRepository) Create(
	ctx context.Context,
	p *models.Prescription,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PrescriptionGormRepository) FindBySlot(
	ctx context.Context,
	pharmacistID uint,
	patientName string,
	slotStart time.Time,
) (*models.Prescription, error) {

	var p models.Prescription
	if err := r.db.WithContext(ctx).
		Where(
			"pharmacist_id = ? AND patient_name = ? AND slot_start = ?",
			pharmacistID, patientName, slotStart,
		).
		Order("created_at DESC").
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PrescriptionGormRepository) Update(
	ctx context.Context,
	p *models.Prescription,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PrescriptionGormRepository) ListForPharmacist(
	ctx context.Context,
	pharmacistID uint,
) ([]models.Prescription, error) {

	var ps []models.Prescription
	if err := r.db.WithContext(ctx).
		Where("pharmacist_id = ?", pharmacistID).
		Order("slot_start ASC").
		Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

// Compile-time check
var _ domain.Records = (*PrescriptionGormRepository)(nil)
