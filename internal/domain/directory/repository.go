package directory

import (
	"context"

	"github.com/mwangie/CareToCrown/internal/models"
)

// Repository is the provider directory: one append-only list per role.
type Repository interface {
	ListByRole(
		ctx context.Context,
		role string,
	) ([]models.Provider, error)

	FindByID(
		ctx context.Context,
		role string,
		id uint,
	) (*models.Provider, error)

	// FindByName matches the display name exactly.
	FindByName(
		ctx context.Context,
		role string,
		name string,
	) (*models.Provider, error)

	// FindByUsername matches case-insensitively.
	FindByUsername(
		ctx context.Context,
		role string,
		username string,
	) (*models.Provider, error)

	// Append rejects a username that already exists in the same role
	// list, compared case-insensitively.
	Append(
		ctx context.Context,
		p *models.Provider,
	) error
}
