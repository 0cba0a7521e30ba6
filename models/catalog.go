package models

import "time"

type Category struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null;uniqueIndex"`
	Description string     `json:"description"`
	SortOrder   int        `json:"sortOrder" gorm:"default:0"`
	IsActive    bool       `json:"isActive" gorm:"default:true"`
	MenuItems   []MenuItem `json:"menuItems,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"-"`
}

// MenuItem is read-only from the order workflow's perspective; orders
// snapshot its name and price at creation time.
type MenuItem struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	CategoryID  uint     `json:"categoryId" gorm:"not null;index"`
	Category    Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name        string   `json:"name" gorm:"not null"`
	Description string   `json:"description"`
	Price       float64  `json:"price" gorm:"not null"`
	IsAvailable bool     `json:"isAvailable" gorm:"default:true"`
	Calories    *int     `json:"calories,omitempty"`

	ModifierGroups []ModifierGroup `json:"modifierGroups,omitempty" gorm:"many2many:menu_item_modifier_groups"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

type ModifierGroup struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	MinSelect int        `json:"minSelect" gorm:"default:0"`
	MaxSelect int        `json:"maxSelect" gorm:"default:0"` // 0 = unlimited
	Modifiers []Modifier `json:"modifiers,omitempty" gorm:"foreignKey:ModifierGroupID"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"-"`
}

type Modifier struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	ModifierGroupID uint      `json:"modifierGroupId" gorm:"not null;index"`
	Name            string    `json:"name" gorm:"not null"`
	Price           float64   `json:"price" gorm:"not null;default:0"` // delta, zero or positive
	IsAvailable     bool      `json:"isAvailable" gorm:"default:true"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"-"`
}
