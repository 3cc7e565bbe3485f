package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/mwangie/CareToCrown/internal/domain/directory"
	"github.com/mwangie/CareToCrown/internal/httperr"
	"github.com/mwangie/CareToCrown/internal/models"
)

type ProviderGormRepository struct {
	db *gorm.DB
}

func NewProviderGormRepository(db *gorm.DB) *ProviderGormRepository {
	return &ProviderGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *ProviderGormRepository) ListByRole(
	ctx context.Context,
	role string,
) ([]models.Provider, error) {

	var providers []models.Provider
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("id ASC").
		Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *ProviderGormRepository) FindByID(
	ctx context.Context,
	role string,
	id uint,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).
		Where("role = ? AND id = ?", role, id).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderGormRepository) FindByName(
	ctx context.Context,
	role string,
	name string,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).
		Where("role = ? AND name = ?", role, name).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderGormRepository) FindByUsername(
	ctx context.Context,
	role string,
	username string,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).
		Where("role = ? AND LOWER(username) = ?", role, strings.ToLower(username)).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Append (signup)
// --------------------------------------------------

func (r *ProviderGormRepository) Append(
	ctx context.Context,
	p *models.Provider,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Provider{}).
		Where("role = ? AND LOWER(username) = ?", p.Role, strings.ToLower(p.Username)).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("username_taken")
	}

	p.Username = strings.ToLower(p.Username)
	return r.db.WithContext(ctx).Create(p).Error
}

// Compile-time check
var _ domain.Repository = (*ProviderGormRepository)(nil)
