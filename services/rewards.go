package services

import (
	"time"

	"github.com/Bapiggott/BigBoy-sub001/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const rewardValidityDays = 30

// RewardService lists the loyalty reward catalog and redeems rewards
// by spending points from the user's ledger.
type RewardService struct {
	db     *gorm.DB
	policy Policy
}

func NewRewardService(db *gorm.DB, policy Policy) *RewardService {
	return &RewardService{db: db, policy: policy}
}

// ListAvailable returns active rewards inside their validity window.
func (s *RewardService) ListAvailable(now time.Time) ([]models.Reward, error) {
	var rewards []models.Reward
	err := s.db.Where("is_active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("points_cost asc").
		Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

// Redeem spends points for a reward and issues a single-use code.
func (s *RewardService) Redeem(userID, rewardID uint) (*models.UserReward, error) {
	now := time.Now()

	var reward models.Reward
	if err := s.db.Where("is_active = ?", true).First(&reward, rewardID).Error; err != nil {
		return nil, NotFound("Reward not found")
	}
	if reward.StartsAt != nil && now.Before(*reward.StartsAt) {
		return nil, InvalidRequest("Reward is not yet available")
	}
	if reward.EndsAt != nil && now.After(*reward.EndsAt) {
		return nil, InvalidRequest("Reward is no longer available")
	}
	if reward.MaxRedemptions != nil {
		var redeemed int64
		if err := s.db.Model(&models.UserReward{}).Where("reward_id = ?", reward.ID).Count(&redeemed).Error; err != nil {
			return nil, err
		}
		if redeemed >= int64(*reward.MaxRedemptions) {
			return nil, Conflict("Reward has been fully redeemed")
		}
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, NotFound("User not found")
	}
	if !TierAtLeast(user.Tier, reward.MinTier) {
		return nil, Forbidden("Reward requires " + string(reward.MinTier) + " tier")
	}
	if user.CurrentPoints < reward.PointsCost {
		return nil, InvalidRequest("Insufficient points")
	}

	userReward := &models.UserReward{
		UserID:    user.ID,
		RewardID:  reward.ID,
		Code:      uuid.NewString(),
		ExpiresAt: now.AddDate(0, 0, rewardValidityDays),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Spending points reduces the current balance only; lifetime
		// points are untouched.
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("current_points", gorm.Expr("current_points - ?", reward.PointsCost)).Error; err != nil {
			return err
		}
		return tx.Create(userReward).Error
	})
	if err != nil {
		return nil, err
	}
	userReward.Reward = reward
	return userReward, nil
}

// ListUserRewards returns the user's redemption history, newest first.
func (s *RewardService) ListUserRewards(userID uint) ([]models.UserReward, error) {
	var rewards []models.UserReward
	err := s.db.Preload("Reward").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}
