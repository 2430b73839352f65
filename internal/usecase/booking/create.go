package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/farmtech/agrirent/internal/domain/booking"
	"github.com/farmtech/agrirent/internal/httperr"
	"github.com/farmtech/agrirent/internal/models"
	"github.com/farmtech/agrirent/internal/notify"
	"github.com/farmtech/agrirent/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	EquipmentID uint
	RenterID    uint

	StartDate string
	EndDate   string
	Hours     int
	Location  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	notifier *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Equipment + renter must exist
	// --------------------------------------------------
	equipment, err := uc.repo.GetEquipmentByID(ctx, in.EquipmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("equipment_not_found")
	}

	renter, err := uc.repo.GetFarmerByID(ctx, in.RenterID)
	if err != nil {
		return nil, httperr.ErrBusiness("renter_not_found")
	}

	// --------------------------------------------------
	// Rental period
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		domain.DateLayout,
		in.StartDate,
		timezone.Location(timezone.DefaultTimezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_start_date")
	}

	b := &models.Booking{
		EquipmentID: equipment.ID,
		// Owner always mirrors the equipment's owner.
		OwnerID:   equipment.OwnerID,
		RenterID:  renter.ID,
		StartDate: start,
		Status:    string(domain.InitialStatus()),
	}

	if in.Hours > 0 {
		hours := in.Hours
		b.Hours = &hours
		end := domain.EndDateFromHours(start, hours)
		b.EndDate = &end
	} else if in.EndDate != "" {
		end, err := time.ParseInLocation(
			domain.DateLayout,
			in.EndDate,
			timezone.Location(timezone.DefaultTimezone),
		)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_end_date")
		}
		b.EndDate = &end
	}

	if loc := strings.TrimSpace(in.Location); loc != "" {
		b.Location = loc
	}

	// --------------------------------------------------
	// Persist, then notify both parties best-effort
	// --------------------------------------------------
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.dispatchSMS(b, equipment, renter)

	return b, nil
}

func (uc *CreateBooking) dispatchSMS(
	b *models.Booking,
	equipment *models.Equipment,
	renter *models.Farmer,
) {
	if uc.notifier == nil {
		return
	}

	hours := "-"
	if b.Hours != nil {
		hours = fmt.Sprintf("%d", *b.Hours)
	}
	start := b.StartDate.Format(domain.DateLayout)

	uc.notifier.Dispatch(notify.Message{
		BookingID: &b.ID,
		Phone:     equipment.Owner.Phone,
		Body: fmt.Sprintf(
			"Your equipment %s has been booked by %s. Start %s, Hours %s. Booking ID %d.",
			equipment.Name, renter.Name, start, hours, b.ID,
		),
	})

	uc.notifier.Dispatch(notify.Message{
		BookingID: &b.ID,
		Phone:     renter.Phone,
		Body: fmt.Sprintf(
			"You booked %s from %s. Start %s, Hours %s. Booking ID %d.",
			equipment.Name, equipment.Owner.Name, start, hours, b.ID,
		),
	})
}
