package handlers

import (
	"net/http"
	"strconv"

	"github.com/Bapiggott/BigBoy-sub001/config"
	"github.com/Bapiggott/BigBoy-sub001/models"
	"github.com/Bapiggott/BigBoy-sub001/services"

	"github.com/gin-gonic/gin"
)

func loyaltyService() *services.LoyaltyService {
	return services.NewLoyaltyService(config.DB, config.Policy)
}

// AdminGetStats returns aggregate order/user statistics — admin only
func AdminGetStats(c *gin.Context) {
	var orders []models.Order
	config.DB.Find(&orders)

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusCompleted {
			totalRevenue += o.Total
		}
	}

	var userCount int64
	config.DB.Model(&models.User{}).Count(&userCount)

	// Outstanding points across all ledgers
	var pointsLiability int64
	config.DB.Model(&models.User{}).Select("COALESCE(SUM(current_points), 0)").Scan(&pointsLiability)

	c.JSON(http.StatusOK, gin.H{
		"order_summary":    summary,
		"total_revenue":    totalRevenue,
		"order_count":      len(orders),
		"user_count":       userCount,
		"points_liability": pointsLiability,
	})
}

// AdminGetAllOrders returns all orders with full detail — admin only
func AdminGetAllOrders(c *gin.Context) {
	query := config.DB.Preload("Items.Modifiers").Preload("User").Preload("Location")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if userID := c.Query("userId"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if locationID := c.Query("locationId"); locationID != "" {
		query = query.Where("location_id = ?", locationID)
	}

	var orders []models.Order
	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AdminSetOrderStatus lets staff set any order status (no transition
// validation on this path — deliberately permissive)
func AdminSetOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var before models.Order
	if err := config.DB.First(&before, uint(orderID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	prevStatus := before.Status

	order, err := orderService().ForceStatus(uint(orderID), req.Status)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  req.Status,
	})
}

// AdminGetAllUsers returns all users — admin only
func AdminGetAllUsers(c *gin.Context) {
	query := config.DB
	if tier := c.Query("tier"); tier != "" {
		query = query.Where("tier = ?", tier)
	}
	var users []models.User
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminAdjustPoints applies an explicit ledger delta to a user
func AdminAdjustPoints(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req struct {
		PointsDelta   int    `json:"pointsDelta"`
		LifetimeDelta int    `json:"lifetimeDelta"`
		Reason        string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := loyaltyService().AdjustPoints(uint(userID), req.PointsDelta, req.LifetimeDelta)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Points adjusted",
		"user":    user,
		"loyalty": loyaltyService().Status(user),
	})
}

// AdminSetTier is the explicit tier-update path; tiers never change
// automatically
func AdminSetTier(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req struct {
		Tier models.LoyaltyTier `json:"tier" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := loyaltyService().SetTier(uint(userID), req.Tier)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Tier updated",
		"user":    user,
		"loyalty": loyaltyService().Status(user),
	})
}
