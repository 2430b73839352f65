package equipment

import (
	"context"

	domain "github.com/farmtech/agrirent/internal/domain/equipment"
	"github.com/farmtech/agrirent/internal/httperr"
)

type DeleteEquipment struct {
	repo domain.Repository
}

func NewDeleteEquipment(repo domain.Repository) *DeleteEquipment {
	return &DeleteEquipment{repo: repo}
}

func (uc *DeleteEquipment) Execute(
	ctx context.Context,
	equipmentID uint,
	farmerID uint,
) error {

	existing, err := uc.repo.GetByID(ctx, equipmentID)
	if err != nil {
		return httperr.ErrBusiness("equipment_not_found")
	}

	if existing.OwnerID == 0 || existing.OwnerID != farmerID {
		return httperr.ErrBusiness("not_equipment_owner")
	}

	// Dependent bookings go with the equipment, atomically.
	return uc.repo.DeleteWithBookings(ctx, equipmentID)
}
