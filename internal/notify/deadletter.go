package notify

import (
	"gorm.io/gorm"

	"github.com/farmtech/agrirent/internal/models"
)

// DeadLetterLog records failed sends so they are observable instead of
// silently discarded.
type DeadLetterLog struct {
	db *gorm.DB
}

func NewDeadLetterLog(db *gorm.DB) *DeadLetterLog {
	return &DeadLetterLog{db: db}
}

func (l *DeadLetterLog) Record(bookingID *uint, phone, message string, sendErr error) error {
	entry := models.NotificationLog{
		BookingID: bookingID,
		Phone:     phone,
		Message:   message,
		Error:     sendErr.Error(),
	}

	return l.db.Create(&entry).Error
}
