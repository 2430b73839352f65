package equipment

import (
	"context"

	domain "github.com/farmtech/agrirent/internal/domain/equipment"
	"github.com/farmtech/agrirent/internal/httperr"
	"github.com/farmtech/agrirent/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateEquipmentInput struct {
	EquipmentID uint
	FarmerID    uint

	Name         string
	Description  string
	Price        float64
	PricePerHour float64
	Image        string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateEquipment struct {
	repo domain.Repository
}

func NewUpdateEquipment(repo domain.Repository) *UpdateEquipment {
	return &UpdateEquipment{repo: repo}
}

func (uc *UpdateEquipment) Execute(
	ctx context.Context,
	in UpdateEquipmentInput,
) (*models.Equipment, error) {

	existing, err := uc.repo.GetByID(ctx, in.EquipmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("equipment_not_found")
	}

	if existing.OwnerID == 0 || existing.OwnerID != in.FarmerID {
		return nil, httperr.ErrBusiness("not_equipment_owner")
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = in.Price
	existing.PricePerHour = in.PricePerHour
	existing.Image = in.Image

	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}
