package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Bapiggott/BigBoy-sub001/config"
	"github.com/Bapiggott/BigBoy-sub001/middleware"
	"github.com/Bapiggott/BigBoy-sub001/models"
	"github.com/Bapiggott/BigBoy-sub001/services"
	"github.com/Bapiggott/BigBoy-sub001/statemachine"

	"github.com/gin-gonic/gin"
)

func orderService() *services.OrderService {
	return services.NewOrderService(config.DB, config.Policy)
}

type PlaceOrderItemRequest struct {
	MenuItemID          uint   `json:"menuItemId" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"specialInstructions"`
	Modifiers           []struct {
		ModifierID uint `json:"modifierId" binding:"required"`
	} `json:"modifiers"`
}

type PlaceOrderRequest struct {
	LocationID          uint                    `json:"locationId" binding:"required"`
	Type                models.FulfillmentType  `json:"type" binding:"required,oneof=PICKUP DINE_IN DELIVERY"`
	Items               []PlaceOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName        string                  `json:"customerName" binding:"required"`
	CustomerPhone       string                  `json:"customerPhone" binding:"required"`
	CustomerEmail       string                  `json:"customerEmail"`
	PaymentMethod       string                  `json:"paymentMethod" binding:"required"`
	ScheduledFor        *time.Time              `json:"scheduledFor"`
	SpecialInstructions string                  `json:"specialInstructions"`
	Tip                 float64                 `json:"tip" binding:"gte=0"`
	RedeemPoints        int                     `json:"redeemPoints" binding:"gte=0"`
}

// PlaceOrder creates a new order. Guests may order without a token.
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": services.CodeInvalidRequest, "error": err.Error()})
		return
	}

	items := make([]services.LineItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		modifierIDs := make([]uint, 0, len(it.Modifiers))
		for _, m := range it.Modifiers {
			modifierIDs = append(modifierIDs, m.ModifierID)
		}
		items = append(items, services.LineItemInput{
			MenuItemID:          it.MenuItemID,
			Quantity:            it.Quantity,
			SpecialInstructions: it.SpecialInstructions,
			ModifierIDs:         modifierIDs,
		})
	}

	order, err := orderService().PlaceOrder(services.PlaceOrderInput{
		LocationID:          req.LocationID,
		Type:                req.Type,
		Items:               items,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerEmail:       req.CustomerEmail,
		PaymentMethod:       req.PaymentMethod,
		ScheduledFor:        req.ScheduledFor,
		SpecialInstructions: req.SpecialInstructions,
		Tip:                 req.Tip,
		RedeemPoints:        req.RedeemPoints,
		UserID:              middleware.GetOptionalUserID(c),
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetMyOrders returns one page of the caller's orders
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	orders, total, err := orderService().ListUserOrders(userID, page, pageSize)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  total,
		"page":   page,
		"orders": orders,
	})
}

// GetOrder returns a single order by id or order number. Unowned
// (guest) orders are viewable by anyone holding the order number;
// owned orders require matching ownership.
func GetOrder(c *gin.Context) {
	order, err := orderService().GetOrder(c.Param("id"))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	if order.UserID != nil {
		callerID := middleware.GetOptionalUserID(c)
		isAdmin := c.GetBool("isAdmin")
		if !isAdmin && (callerID == nil || *callerID != *order.UserID) {
			c.JSON(http.StatusForbidden, gin.H{"code": services.CodeForbidden, "error": "This order does not belong to you"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetOrderLifecycle returns the order status transitions for
// informational purposes
func GetOrderLifecycle(c *gin.Context) {
	statuses := []models.OrderStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
		models.StatusReady, models.StatusCompleted, models.StatusCancelled,
	}
	transitions := []gin.H{}
	var terminal []models.OrderStatus
	for _, status := range statuses {
		if statemachine.IsTerminal(status) {
			terminal = append(terminal, status)
			continue
		}
		for _, next := range statemachine.ValidTransitionsFrom(status) {
			transitions = append(transitions, gin.H{"from": status, "to": next})
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"transitions":     transitions,
		"terminal_states": terminal,
		"description":     "Order Lifecycle State Machine",
	})
}

// CancelOrder cancels a PENDING or CONFIRMED order and reverses its
// loyalty-ledger effect.
func CancelOrder(c *gin.Context) {
	order, err := orderService().CancelOrder(c.Param("id"), middleware.GetOptionalUserID(c))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"order":   order,
	})
}
