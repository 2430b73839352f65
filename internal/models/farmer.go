package models

import "time"

type Farmer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Phone        string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Name     string     `gorm:"size:100;not null" json:"name"`
	FullName string     `gorm:"size:150" json:"full_name"`
	Gender   string     `gorm:"size:10" json:"gender"`
	Dob      *time.Time `gorm:"type:date" json:"dob"`

	Address  string `gorm:"size:255" json:"address"`
	Village  string `gorm:"size:100" json:"village"`
	District string `gorm:"size:100" json:"district"`
	State    string `gorm:"size:100" json:"state"`
	Pincode  string `gorm:"size:10" json:"pincode"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	FarmSize       string `gorm:"size:50" json:"farm_size"`
	CropType       string `gorm:"size:100" json:"crop_type"`
	Experience     string `gorm:"size:100" json:"experience"`
	EquipmentOwned string `gorm:"size:255" json:"equipment_owned"`

	Role string `gorm:"size:20;default:'FARMER'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Farmer) TableName() string {
	return "farmers"
}
