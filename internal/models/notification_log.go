package models

import "time"

// NotificationLog is the dead-letter record for SMS sends that failed.
// Booking creation never waits on these.
type NotificationLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID *uint  `json:"booking_id"`
	Phone     string `gorm:"size:20;not null" json:"phone"`
	Message   string `gorm:"type:text" json:"message"`
	Error     string `gorm:"size:255" json:"error"`

	CreatedAt time.Time `json:"created_at"`
}
