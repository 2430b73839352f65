package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/farmtech/agrirent/internal/domain/booking"
	"github.com/farmtech/agrirent/internal/httperr"
	"github.com/farmtech/agrirent/internal/httpresp"
	ucBooking "github.com/farmtech/agrirent/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	updateStatusUC *ucBooking.UpdateBookingStatus
	repo           domain.Repository
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	updateStatusUC *ucBooking.UpdateBookingStatus,
	repo domain.Repository,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		repo:           repo,
	}
}

// ======================================================
// CREATE
// ======================================================

// The booking form submits query parameters, kept for frontend
// compatibility: equipmentId, renterId, startDate, endDate, hours,
// location.
func (h *BookingHandler) Create(c *gin.Context) {
	equipmentID, ok := queryUint(c, "equipmentId")
	if !ok {
		httperr.BadRequest(c, "invalid_equipment_id", "A numeric equipmentId is required.")
		return
	}

	renterID, ok := queryUint(c, "renterId")
	if !ok {
		httperr.BadRequest(c, "invalid_renter_id", "A numeric renterId is required.")
		return
	}

	startDate := c.Query("startDate")
	if startDate == "" {
		httperr.BadRequest(c, "missing_start_date", "startDate is required.")
		return
	}

	hours := 0
	if raw := c.Query("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_hours", "hours must be a number.")
			return
		}
		hours = parsed
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		EquipmentID: equipmentID,
		RenterID:    renterID,
		StartDate:   startDate,
		EndDate:     c.Query("endDate"),
		Hours:       hours,
		Location:    c.Query("location"),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *BookingHandler) ListByRenter(c *gin.Context) {
	renterID, ok := paramUint(c, "renterId")
	if !ok {
		httperr.BadRequest(c, "invalid_renter_id", "A numeric renterId is required.")
		return
	}

	bookings, err := h.repo.ListBookingsByRenter(c.Request.Context(), renterID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := paramUint(c, "ownerId")
	if !ok {
		httperr.BadRequest(c, "invalid_owner_id", "A numeric ownerId is required.")
		return
	}

	bookings, err := h.repo.ListBookingsByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	bookingID, ok := paramUint(c, "bookingId")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "A numeric bookingId is required.")
		return
	}

	status := c.Query("status")
	if status == "" {
		httperr.BadRequest(c, "missing_status", "status is required.")
		return
	}

	b, err := h.updateStatusUC.Execute(c.Request.Context(), bookingID, status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// HELPERS
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "equipment_not_found"):
		httperr.NotFound(c, "equipment_not_found", "Equipment not found.")
	case httperr.IsBusiness(err, "renter_not_found"):
		httperr.NotFound(c, "renter_not_found", "Renter not found.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, "invalid_start_date"):
		httperr.BadRequest(c, "invalid_start_date", "startDate must be YYYY-MM-DD.")
	case httperr.IsBusiness(err, "invalid_end_date"):
		httperr.BadRequest(c, "invalid_end_date", "endDate must be YYYY-MM-DD.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "status must be PENDING, CONFIRMED or CANCELLED.")
	case httperr.IsBusiness(err, "invalid_transition"):
		httperr.Write(c, http.StatusUnprocessableEntity, "invalid_transition", "The booking cannot move to that status.")
	default:
		httperr.Internal(c, "booking_error", "Could not process the booking.")
	}
}
