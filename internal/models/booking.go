package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EquipmentID uint      `gorm:"not null" json:"equipment_id"`
	Equipment   Equipment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"equipment"`

	// Owner duplicates Equipment.Owner so owner-side listings stay a
	// single indexed query. Must always equal the equipment's owner.
	OwnerID uint   `gorm:"not null" json:"owner_id"`
	Owner   Farmer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`

	RenterID uint   `gorm:"not null" json:"renter_id"`
	Renter   Farmer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"renter"`

	StartDate time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date"`
	Hours     *int       `json:"hours"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	// Address where the equipment is needed.
	Location string `gorm:"size:255" json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
