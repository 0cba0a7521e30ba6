package models

import "time"

// LoyaltyTier is a named loyalty level granted by an operator.
// It is a stored field, never derived from lifetime points.
type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "BRONZE"
	TierSilver LoyaltyTier = "SILVER"
	TierGold   LoyaltyTier = "GOLD"
)

// ValidTier reports whether t is one of the known tiers.
func ValidTier(t LoyaltyTier) bool {
	return t == TierBronze || t == TierSilver || t == TierGold
}

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-"`
	GoogleID     string `json:"-" gorm:"index"`
	Name         string `json:"name" gorm:"not null"`
	Phone        string `json:"phone"`

	// Loyalty ledger — mutated only by the order workflow and the
	// admin adjustment path.
	CurrentPoints  int         `json:"currentPoints" gorm:"not null;default:0"`
	LifetimePoints int         `json:"lifetimePoints" gorm:"not null;default:0"`
	Tier           LoyaltyTier `json:"tier" gorm:"not null;default:'BRONZE'"`

	IsAdmin   bool      `json:"isAdmin" gorm:"default:false"`
	CreatedAt time.Time `json:"joinedAt"`
	UpdatedAt time.Time `json:"-"`
}
