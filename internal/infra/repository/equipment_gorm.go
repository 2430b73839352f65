package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/farmtech/agrirent/internal/domain/equipment"
	"github.com/farmtech/agrirent/internal/models"
)

type EquipmentGormRepository struct {
	db *gorm.DB
}

func NewEquipmentGormRepository(db *gorm.DB) *EquipmentGormRepository {
	return &EquipmentGormRepository{db: db}
}

func (r *EquipmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Equipment, error) {

	var eq models.Equipment
	if err := r.db.WithContext(ctx).First(&eq, id).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

func (r *EquipmentGormRepository) Update(
	ctx context.Context,
	eq *models.Equipment,
) error {
	return r.db.WithContext(ctx).Save(eq).Error
}

func (r *EquipmentGormRepository) DeleteWithBookings(
	ctx context.Context,
	equipmentID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("equipment_id = ?", equipmentID).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Equipment{}, equipmentID).Error
	})
}

// Compile-time check
var _ domain.Repository = (*EquipmentGormRepository)(nil)
