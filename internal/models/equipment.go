package models

import "time"

type Equipment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint   `gorm:"not null" json:"owner_id"`
	Owner   Farmer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	Description  string  `gorm:"size:255" json:"description"`
	Price        float64 `json:"price"`
	PricePerHour float64 `json:"price_per_hour"`
	Image        string  `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Equipment) TableName() string {
	return "equipments"
}
