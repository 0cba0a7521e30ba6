package models

import "time"

// FavoriteItem bookmarks a menu item for a user.
type FavoriteItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"not null;uniqueIndex:idx_favorite_user_item"`
	MenuItemID uint      `json:"menuItemId" gorm:"not null;uniqueIndex:idx_favorite_user_item"`
	MenuItem   MenuItem  `json:"menuItem,omitempty" gorm:"foreignKey:MenuItemID"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Address is a saved delivery address.
type Address struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Label     string    `json:"label"`
	Line1     string    `json:"line1" gorm:"not null"`
	Line2     string    `json:"line2"`
	City      string    `json:"city" gorm:"not null"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zipCode"`
	IsDefault bool      `json:"isDefault" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// Preferences holds per-user notification and dietary settings (1:1).
type Preferences struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"userId" gorm:"uniqueIndex;not null"`
	EmailOffers  bool      `json:"emailOffers" gorm:"default:true"`
	SmsUpdates   bool      `json:"smsUpdates" gorm:"default:false"`
	DietaryNotes string    `json:"dietaryNotes"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
