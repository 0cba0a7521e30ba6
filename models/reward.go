package models

import "time"

// Reward is a loyalty-catalog entry redeemable for points.
type Reward struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"not null"`
	Description string      `json:"description"`
	PointsCost  int         `json:"pointsCost" gorm:"not null"`
	MinTier     LoyaltyTier `json:"minTier" gorm:"not null;default:'BRONZE'"`
	Category    string      `json:"category"`

	// Optional validity window.
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`

	// Optional cap on total redemptions across all users.
	MaxRedemptions *int `json:"maxRedemptions"`

	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// UserReward is a single-use redemption created by spending points.
type UserReward struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"userId" gorm:"not null;index"`
	RewardID  uint       `json:"rewardId" gorm:"not null"`
	Reward    Reward     `json:"reward,omitempty" gorm:"foreignKey:RewardID"`
	Code      string     `json:"code" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time  `json:"expiresAt"`
	UsedAt    *time.Time `json:"usedAt"`
	CreatedAt time.Time  `json:"createdAt"`
}
