package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/farmtech/agrirent/internal/db"
	domain "github.com/farmtech/agrirent/internal/domain/booking"
	"github.com/farmtech/agrirent/internal/httperr"
	infraRepo "github.com/farmtech/agrirent/internal/infra/repository"
	"github.com/farmtech/agrirent/internal/models"
	"github.com/farmtech/agrirent/internal/notify"
)

type failingSender struct{}

func (failingSender) Send(ctx context.Context, phone, message string) error {
	return errors.New("gateway down")
}

func setupTestDB(t *testing.T) (*gorm.DB, domain.Repository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	err = dbpkg.Migrate(db)
	assert.NoError(t, err)

	return db, infraRepo.NewBookingGormRepository(db)
}

func seedFarmersAndEquipment(t *testing.T, db *gorm.DB) (*models.Farmer, *models.Farmer, *models.Equipment) {
	owner := &models.Farmer{
		Phone: "9999999991", Email: "owner@gmail.com",
		PasswordHash: "x", Name: "Ramesh",
	}
	renter := &models.Farmer{
		Phone: "9999999992", Email: "renter@gmail.com",
		PasswordHash: "x", Name: "Suresh",
	}
	assert.NoError(t, db.Create(owner).Error)
	assert.NoError(t, db.Create(renter).Error)

	eq := &models.Equipment{
		OwnerID: owner.ID, Name: "Tractor",
		Price: 1500, PricePerHour: 200,
	}
	assert.NoError(t, db.Create(eq).Error)

	return owner, renter, eq
}

func TestCreateBooking_DerivesEndDateFromHours(t *testing.T) {
	db, repo := setupTestDB(t)
	_, renter, eq := seedFarmersAndEquipment(t, db)

	uc := NewCreateBooking(repo, nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID,
		RenterID:    renter.ID,
		StartDate:   "2024-01-01",
		Hours:       30,
	})
	assert.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Equal(t, "PENDING", b.Status)

	assert.NotNil(t, b.Hours)
	assert.Equal(t, 30, *b.Hours)
	assert.NotNil(t, b.EndDate)
	assert.Equal(t, "2024-01-03", b.EndDate.Format(domain.DateLayout))
}

func TestCreateBooking_MinimumOneDayForShortRentals(t *testing.T) {
	db, repo := setupTestDB(t)
	_, renter, eq := seedFarmersAndEquipment(t, db)

	uc := NewCreateBooking(repo, nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID,
		RenterID:    renter.ID,
		StartDate:   "2024-01-01",
		Hours:       3,
	})
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-02", b.EndDate.Format(domain.DateLayout))
}

func TestCreateBooking_KeepsExplicitEndDate(t *testing.T) {
	db, repo := setupTestDB(t)
	_, renter, eq := seedFarmersAndEquipment(t, db)

	uc := NewCreateBooking(repo, nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID,
		RenterID:    renter.ID,
		StartDate:   "2024-05-10",
		EndDate:     "2024-05-20",
	})
	assert.NoError(t, err)
	assert.Nil(t, b.Hours)
	assert.Equal(t, "2024-05-20", b.EndDate.Format(domain.DateLayout))
}

func TestCreateBooking_NoEndDateWhenNeitherGiven(t *testing.T) {
	db, repo := setupTestDB(t)
	_, renter, eq := seedFarmersAndEquipment(t, db)

	uc := NewCreateBooking(repo, nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID,
		RenterID:    renter.ID,
		StartDate:   "2024-05-10",
	})
	assert.NoError(t, err)
	assert.Nil(t, b.EndDate)
}

func TestCreateBooking_OwnerMirrorsEquipmentOwner(t *testing.T) {
	db, repo := setupTestDB(t)
	owner, renter, eq := seedFarmersAndEquipment(t, db)

	uc := NewCreateBooking(repo, nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID,
		RenterID:    renter.ID,
		StartDate:   "2024-01-01",
		Hours:       8,
	})
	assert.NoError(t, err)
	assert.Equal(t, owner.ID, b.OwnerID)
	assert.Equal(t, renter.ID, b.RenterID)
}

func TestCreateBooking_TrimsLocation(t *testing.T) {
	db, repo := setupTestDB(t)
	_, renter, eq := seedFarmersAndEquipment(t, db)

	uc := NewCreateBooking(repo, nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID,
		RenterID:    renter.ID,
		StartDate:   "2024-01-01",
		Hours:       8,
		Location:    "  Hosur village road  ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Hosur village road", b.Location)
}

func TestCreateBooking_MissingEquipmentOrRenter(t *testing.T) {
	db, repo := setupTestDB(t)
	_, renter, eq := seedFarmersAndEquipment(t, db)

	uc := NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID + 100,
		RenterID:    renter.ID,
		StartDate:   "2024-01-01",
	})
	assert.True(t, httperr.IsBusiness(err, "equipment_not_found"))

	_, err = uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID,
		RenterID:    renter.ID + 100,
		StartDate:   "2024-01-01",
	})
	assert.True(t, httperr.IsBusiness(err, "renter_not_found"))
}

func TestCreateBooking_InvalidStartDate(t *testing.T) {
	db, repo := setupTestDB(t)
	_, renter, eq := seedFarmersAndEquipment(t, db)

	uc := NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID,
		RenterID:    renter.ID,
		StartDate:   "01/01/2024",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_start_date"))
}

func TestCreateBooking_SucceedsWhenNotificationsFail(t *testing.T) {
	db, repo := setupTestDB(t)
	_, renter, eq := seedFarmersAndEquipment(t, db)

	notifier := notify.NewDispatcher(failingSender{}, notify.NewDeadLetterLog(db))
	uc := NewCreateBooking(repo, notifier)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID,
		RenterID:    renter.ID,
		StartDate:   "2024-01-01",
		Hours:       30,
	})
	assert.NoError(t, err)
	assert.NotZero(t, b.ID)

	var persisted models.Booking
	assert.NoError(t, db.First(&persisted, b.ID).Error)

	// Both failed sends end up in the dead-letter log.
	notifier.Close()

	var deadLetters []models.NotificationLog
	assert.NoError(t, db.Find(&deadLetters).Error)
	assert.Len(t, deadLetters, 2)
	for _, entry := range deadLetters {
		assert.Equal(t, b.ID, *entry.BookingID)
		assert.Contains(t, entry.Error, "gateway down")
	}
}

func TestCreateBooking_NotificationMessageContents(t *testing.T) {
	db, repo := setupTestDB(t)
	owner, renter, eq := seedFarmersAndEquipment(t, db)

	captured := &capturingSender{}
	notifier := notify.NewDispatcher(captured, nil)
	uc := NewCreateBooking(repo, notifier)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		EquipmentID: eq.ID,
		RenterID:    renter.ID,
		StartDate:   "2024-01-01",
		Hours:       30,
	})
	assert.NoError(t, err)

	notifier.Close()

	assert.Len(t, captured.sent, 2)
	assert.Equal(t, owner.Phone, captured.sent[0].phone)
	assert.Contains(t, captured.sent[0].message, "Tractor")
	assert.Contains(t, captured.sent[0].message, renter.Name)
	assert.Contains(t, captured.sent[0].message, "Hours 30")
	assert.Contains(t, captured.sent[0].message, fmt.Sprintf("Booking ID %d", b.ID))

	assert.Equal(t, renter.Phone, captured.sent[1].phone)
	assert.Contains(t, captured.sent[1].message, owner.Name)
	assert.Contains(t, captured.sent[1].message, "2024-01-01")
}

type capturedSMS struct {
	phone   string
	message string
}

type capturingSender struct {
	sent []capturedSMS
}

func (s *capturingSender) Send(ctx context.Context, phone, message string) error {
	s.sent = append(s.sent, capturedSMS{phone: phone, message: message})
	return nil
}
