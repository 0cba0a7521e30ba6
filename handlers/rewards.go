package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Bapiggott/BigBoy-sub001/config"
	"github.com/Bapiggott/BigBoy-sub001/middleware"
	"github.com/Bapiggott/BigBoy-sub001/models"
	"github.com/Bapiggott/BigBoy-sub001/services"

	"github.com/gin-gonic/gin"
)

func rewardService() *services.RewardService {
	return services.NewRewardService(config.DB, config.Policy)
}

// ListRewards returns the active reward catalog. When the caller is
// authenticated, each reward is annotated with redeemability.
func ListRewards(c *gin.Context) {
	rewards, err := rewardService().ListAvailable(time.Now())
	if err != nil {
		renderServiceError(c, err)
		return
	}

	callerID := middleware.GetOptionalUserID(c)
	if callerID == nil {
		c.JSON(http.StatusOK, gin.H{"count": len(rewards), "rewards": rewards})
		return
	}

	var user models.User
	if err := config.DB.First(&user, *callerID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"count": len(rewards), "rewards": rewards})
		return
	}

	annotated := make([]gin.H, 0, len(rewards))
	for _, r := range rewards {
		annotated = append(annotated, gin.H{
			"reward":     r,
			"redeemable": services.TierAtLeast(user.Tier, r.MinTier) && user.CurrentPoints >= r.PointsCost,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"count":         len(rewards),
		"rewards":       annotated,
		"currentPoints": user.CurrentPoints,
	})
}

// RedeemReward spends points for a reward and returns the issued code
func RedeemReward(c *gin.Context) {
	rewardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reward id"})
		return
	}

	userReward, err := rewardService().Redeem(middleware.GetUserID(c), uint(rewardID))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Reward redeemed successfully",
		"reward":  userReward,
	})
}

// GetMyRewards returns the caller's redemption history
func GetMyRewards(c *gin.Context) {
	rewards, err := rewardService().ListUserRewards(middleware.GetUserID(c))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rewards), "rewards": rewards})
}
