package booking

import (
	"context"

	domain "github.com/farmtech/agrirent/internal/domain/booking"
	"github.com/farmtech/agrirent/internal/httperr"
	"github.com/farmtech/agrirent/internal/models"
)

type UpdateBookingStatus struct {
	repo domain.Repository
}

func NewUpdateBookingStatus(repo domain.Repository) *UpdateBookingStatus {
	return &UpdateBookingStatus{repo: repo}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	bookingID uint,
	rawStatus string,
) (*models.Booking, error) {

	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanTransition(domain.Status(b.Status), next); err != nil {
		return nil, err
	}

	b.Status = string(next)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
