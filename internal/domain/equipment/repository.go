package equipment

import (
	"context"

	"github.com/farmtech/agrirent/internal/models"
)

type Repository interface {
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Equipment, error)

	Update(
		ctx context.Context,
		eq *models.Equipment,
	) error

	// DeleteWithBookings removes the equipment row and every booking
	// referencing it as one transaction.
	DeleteWithBookings(
		ctx context.Context,
		equipmentID uint,
	) error
}
