package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/farmtech/agrirent/internal/domain/booking"
	"github.com/farmtech/agrirent/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Equipment / Farmer
// --------------------------------------------------

func (r *BookingGormRepository) GetEquipmentByID(
	ctx context.Context,
	id uint,
) (*models.Equipment, error) {

	var eq models.Equipment
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&eq, id).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

func (r *BookingGormRepository) GetFarmerByID(
	ctx context.Context,
	id uint,
) (*models.Farmer, error) {

	var farmer models.Farmer
	if err := r.db.WithContext(ctx).First(&farmer, id).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsByRenter(
	ctx context.Context,
	renterID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Equipment").
		Preload("Owner").
		Where("renter_id = ?", renterID).
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Equipment").
		Preload("Renter").
		Where("owner_id = ?", ownerID).
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
