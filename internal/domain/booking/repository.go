package booking

import (
	"context"

	"github.com/farmtech/agrirent/internal/models"
)

type Repository interface {
	// -------- Equipment / Farmer lookups --------
	GetEquipmentByID(
		ctx context.Context,
		id uint,
	) (*models.Equipment, error)

	GetFarmerByID(
		ctx context.Context,
		id uint,
	) (*models.Farmer, error)

	// -------- Booking (create / state change) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listings --------
	ListBookingsByRenter(
		ctx context.Context,
		renterID uint,
	) ([]models.Booking, error)

	ListBookingsByOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Booking, error)
}
