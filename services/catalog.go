package services

import (
	"github.com/Bapiggott/BigBoy-sub001/models"

	"gorm.io/gorm"
)

// MenuItemQuery names the optional filters a catalog lookup supports.
type MenuItemQuery struct {
	IDs           []uint
	CategoryID    *uint
	AvailableOnly bool
}

// FindMenuItems loads menu items with their modifier groups/modifiers.
func FindMenuItems(db *gorm.DB, q MenuItemQuery) ([]models.MenuItem, error) {
	query := db.Preload("ModifierGroups.Modifiers")
	if len(q.IDs) > 0 {
		query = query.Where("id IN ?", q.IDs)
	}
	if q.CategoryID != nil {
		query = query.Where("category_id = ?", *q.CategoryID)
	}
	if q.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}
	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// LocationQuery names the optional filters a location lookup supports.
type LocationQuery struct {
	Search     string
	City       string
	ActiveOnly bool
	Amenity    string // "drive_thru", "wifi", "outdoor_seating"
}

// FindLocations loads store locations with their weekly hours.
func FindLocations(db *gorm.DB, q LocationQuery) ([]models.Location, error) {
	query := db.Preload("Hours")
	if q.Search != "" {
		query = query.Where("name LIKE ? OR address_line1 LIKE ?", "%"+q.Search+"%", "%"+q.Search+"%")
	}
	if q.City != "" {
		query = query.Where("city = ?", q.City)
	}
	if q.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	switch q.Amenity {
	case "drive_thru":
		query = query.Where("has_drive_thru = ?", true)
	case "wifi":
		query = query.Where("has_wifi = ?", true)
	case "outdoor_seating":
		query = query.Where("has_outdoor_seating = ?", true)
	}
	var locations []models.Location
	if err := query.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
