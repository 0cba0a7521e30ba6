package models

import "time"

// Location is a physical store. Read-only from the order workflow.
type Location struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"not null"`
	AddressLine1 string  `json:"addressLine1" gorm:"not null"`
	AddressLine2 string  `json:"addressLine2"`
	City         string  `json:"city" gorm:"not null"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zipCode"`
	Phone        string  `json:"phone"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`

	Hours []LocationHours `json:"hours,omitempty" gorm:"foreignKey:LocationID"`

	HasDriveThru      bool `json:"hasDriveThru" gorm:"default:false"`
	HasWifi           bool `json:"hasWifi" gorm:"default:false"`
	HasOutdoorSeating bool `json:"hasOutdoorSeating" gorm:"default:false"`

	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// LocationHours holds one weekday's open/close pair.
// Nil OpensAt/ClosesAt means closed that day.
type LocationHours struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	LocationID uint    `json:"locationId" gorm:"not null;index"`
	Weekday    int     `json:"weekday" gorm:"not null"` // 0 = Sunday
	OpensAt    *string `json:"opensAt"`                 // "07:00"
	ClosesAt   *string `json:"closesAt"`                // "22:00"
}
