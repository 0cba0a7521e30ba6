package services

import (
	"github.com/Bapiggott/BigBoy-sub001/models"

	"gorm.io/gorm"
)

// LoyaltyService owns the administrative ledger and tier paths. The
// order workflow applies its own ledger deltas inside the order
// transaction; nothing else writes these fields.
type LoyaltyService struct {
	db     *gorm.DB
	policy Policy
}

func NewLoyaltyService(db *gorm.DB, policy Policy) *LoyaltyService {
	return &LoyaltyService{db: db, policy: policy}
}

// LoyaltyStatus is the display shape of a user's ledger.
// PointsToNextTier is derived; everything else is stored.
type LoyaltyStatus struct {
	CurrentPoints    int                `json:"currentPoints"`
	LifetimePoints   int                `json:"lifetimePoints"`
	Tier             models.LoyaltyTier `json:"tier"`
	PointsToNextTier int                `json:"pointsToNextTier"`
}

func (s *LoyaltyService) Status(user *models.User) LoyaltyStatus {
	return LoyaltyStatus{
		CurrentPoints:    user.CurrentPoints,
		LifetimePoints:   user.LifetimePoints,
		Tier:             user.Tier,
		PointsToNextTier: s.policy.PointsToNextTier(user.Tier, user.LifetimePoints),
	}
}

// AdjustPoints applies an explicit administrative ledger delta.
func (s *LoyaltyService) AdjustPoints(userID uint, pointsDelta, lifetimeDelta int) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, NotFound("User not found")
	}
	err := s.db.Model(&user).Updates(map[string]interface{}{
		"current_points":  gorm.Expr("current_points + ?", pointsDelta),
		"lifetime_points": gorm.Expr("lifetime_points + ?", lifetimeDelta),
	}).Error
	if err != nil {
		return nil, err
	}
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SetTier is the only path that changes a user's tier. Crossing a
// lifetime-point threshold never promotes automatically.
func (s *LoyaltyService) SetTier(userID uint, tier models.LoyaltyTier) (*models.User, error) {
	if !models.ValidTier(tier) {
		return nil, InvalidRequest("Unknown tier: " + string(tier))
	}
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, NotFound("User not found")
	}
	if err := s.db.Model(&user).Update("tier", tier).Error; err != nil {
		return nil, err
	}
	user.Tier = tier
	return &user, nil
}
