package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Bapiggott/BigBoy-sub001/models"
	"github.com/Bapiggott/BigBoy-sub001/statemachine"

	"gorm.io/gorm"
)

const orderNumberAttempts = 3

// OrderService owns the order placement and cancellation workflow:
// price/points computation and the atomic order + loyalty-ledger write.
type OrderService struct {
	db     *gorm.DB
	policy Policy
}

func NewOrderService(db *gorm.DB, policy Policy) *OrderService {
	return &OrderService{db: db, policy: policy}
}

type LineItemInput struct {
	MenuItemID          uint
	Quantity            int
	SpecialInstructions string
	ModifierIDs         []uint
}

type PlaceOrderInput struct {
	LocationID          uint
	Type                models.FulfillmentType
	Items               []LineItemInput
	CustomerName        string
	CustomerPhone       string
	CustomerEmail       string
	PaymentMethod       string
	ScheduledFor        *time.Time
	SpecialInstructions string
	Tip                 float64
	RedeemPoints        int

	// Nil for guest orders: points are still computed and stored on
	// the order, but no ledger is touched.
	UserID *uint
}

// PlaceOrder validates the request, computes totals and point deltas,
// and persists the order, its items, and the placing user's ledger
// adjustment in a single transaction.
func (s *OrderService) PlaceOrder(in PlaceOrderInput) (*models.Order, error) {
	var location models.Location
	if err := s.db.Where("is_active = ?", true).First(&location, in.LocationID).Error; err != nil {
		return nil, NotFound("Location not found")
	}

	switch in.Type {
	case models.FulfillmentPickup, models.FulfillmentDineIn, models.FulfillmentDelivery:
	default:
		return nil, InvalidRequest("Invalid fulfillment type")
	}
	if len(in.Items) == 0 {
		return nil, InvalidRequest("Order must contain at least one item")
	}
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return nil, InvalidRequest("Item quantity must be a positive integer")
		}
	}
	if in.Tip < 0 {
		return nil, InvalidRequest("Tip cannot be negative")
	}
	if in.RedeemPoints < 0 {
		return nil, InvalidRequest("Redeemed points cannot be negative")
	}

	var user *models.User
	if in.UserID != nil {
		var u models.User
		if err := s.db.First(&u, *in.UserID).Error; err != nil {
			return nil, NotFound("User not found")
		}
		user = &u
	}

	ids := make([]uint, 0, len(in.Items))
	for _, line := range in.Items {
		ids = append(ids, line.MenuItemID)
	}
	menuItems, err := FindMenuItems(s.db, MenuItemQuery{IDs: ids})
	if err != nil {
		return nil, err
	}
	itemsByID := make(map[uint]models.MenuItem, len(menuItems))
	for _, mi := range menuItems {
		itemsByID[mi.ID] = mi
	}

	// Build line items with name/price snapshots and compute the
	// subtotal. The computation order is fixed: later steps depend on
	// earlier results.
	var orderItems []models.OrderItem
	var subtotal float64
	totalUnits := 0
	for _, line := range in.Items {
		menuItem, ok := itemsByID[line.MenuItemID]
		if !ok {
			return nil, InvalidRequest(fmt.Sprintf("Menu item %d not found", line.MenuItemID))
		}
		if !menuItem.IsAvailable {
			return nil, InvalidRequest("Menu item '" + menuItem.Name + "' is not available")
		}

		modifiers, err := s.selectModifiers(menuItem, line.ModifierIDs)
		if err != nil {
			return nil, err
		}

		unitPrice := menuItem.Price
		for _, m := range modifiers {
			unitPrice += m.Price
		}
		lineTotal := unitPrice * float64(line.Quantity)
		subtotal += lineTotal
		totalUnits += line.Quantity

		orderItems = append(orderItems, models.OrderItem{
			MenuItemID:          menuItem.ID,
			Name:                menuItem.Name,
			UnitPrice:           unitPrice,
			Quantity:            line.Quantity,
			LineTotal:           lineTotal,
			SpecialInstructions: line.SpecialInstructions,
			Modifiers:           modifiers,
		})
	}

	tax := roundCents(subtotal * s.policy.TaxRate)
	tip := in.Tip

	// Redemption: capped by subtotal and by available balance. An
	// over-budget request is skipped silently, not rejected.
	var discount float64
	pointsRedeemed := 0
	if user != nil && in.RedeemPoints > 0 && user.CurrentPoints >= in.RedeemPoints {
		discount = math.Min(float64(in.RedeemPoints)/float64(s.policy.RedeemPointsPerDollar), subtotal)
		pointsRedeemed = cents(discount) * s.policy.RedeemPointsPerDollar / 100
	}

	total := roundCents(subtotal + tax + tip - discount)
	pointsEarned := cents(total) * s.policy.PointsPerDollar / 100

	prepMinutes := s.policy.BasePrepMinutes + min(s.policy.PrepMinutesPerItem*totalUnits, s.policy.PrepMinutesCap)
	estimatedReady := time.Now().Add(time.Duration(prepMinutes) * time.Minute)

	// Persist atomically; regenerate the order number on a unique
	// collision, then give up with CONFLICT.
	var order *models.Order
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		candidate := &models.Order{
			OrderNumber:         generateOrderNumber(),
			UserID:              in.UserID,
			LocationID:          location.ID,
			Type:                in.Type,
			Status:              models.StatusPending,
			Subtotal:            roundCents(subtotal),
			Tax:                 tax,
			Tip:                 tip,
			Discount:            discount,
			Total:               total,
			CustomerName:        in.CustomerName,
			CustomerPhone:       in.CustomerPhone,
			CustomerEmail:       in.CustomerEmail,
			PaymentMethod:       in.PaymentMethod,
			PaymentStatus:       models.PaymentPending,
			ScheduledFor:        in.ScheduledFor,
			EstimatedReady:      &estimatedReady,
			PointsEarned:        pointsEarned,
			PointsRedeemed:      pointsRedeemed,
			SpecialInstructions: in.SpecialInstructions,
			Items:               cloneOrderItems(orderItems),
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(candidate).Error; err != nil {
				return err
			}
			if in.UserID != nil {
				return tx.Model(&models.User{}).Where("id = ?", *in.UserID).
					Updates(map[string]interface{}{
						"current_points":  gorm.Expr("current_points + ?", pointsEarned-pointsRedeemed),
						"lifetime_points": gorm.Expr("lifetime_points + ?", pointsEarned),
					}).Error
			}
			return nil
		})
		if err == nil {
			order = candidate
			break
		}
		if isDuplicateOrderNumber(err) {
			continue
		}
		return nil, err
	}
	if order == nil {
		return nil, Conflict("Could not generate a unique order number, please retry")
	}

	var persisted models.Order
	if err := s.db.Preload("Items.Modifiers").Preload("Location").First(&persisted, order.ID).Error; err != nil {
		return nil, err
	}
	return &persisted, nil
}

// selectModifiers resolves requested modifier ids against the menu
// item's associated groups. Selections outside those groups (or
// unavailable ones) are dropped, or rejected when the policy says so.
func (s *OrderService) selectModifiers(menuItem models.MenuItem, modifierIDs []uint) ([]models.OrderItemModifier, error) {
	if len(modifierIDs) == 0 {
		return nil, nil
	}
	allowed := make(map[uint]models.Modifier)
	for _, group := range menuItem.ModifierGroups {
		for _, m := range group.Modifiers {
			allowed[m.ID] = m
		}
	}
	var selected []models.OrderItemModifier
	for _, id := range modifierIDs {
		m, ok := allowed[id]
		if !ok || !m.IsAvailable {
			if s.policy.RejectUnknownModifiers {
				return nil, InvalidRequest(fmt.Sprintf("Modifier %d is not valid for menu item '%s'", id, menuItem.Name))
			}
			continue
		}
		selected = append(selected, models.OrderItemModifier{
			ModifierID: m.ID,
			Name:       m.Name,
			Price:      m.Price,
		})
	}
	return selected, nil
}

// GetOrder looks an order up by numeric id or by order number.
func (s *OrderService) GetOrder(idOrNumber string) (*models.Order, error) {
	query := s.db.Preload("Items.Modifiers").Preload("Location")
	var order models.Order
	var err error
	if id, convErr := strconv.ParseUint(idOrNumber, 10, 64); convErr == nil {
		err = query.First(&order, uint(id)).Error
	} else {
		err = query.Where("order_number = ?", idOrNumber).First(&order).Error
	}
	if err != nil {
		return nil, NotFound("Order not found")
	}
	return &order, nil
}

// ListUserOrders returns one page of the user's orders, newest first,
// with the total count.
func (s *OrderService) ListUserOrders(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 50 {
		pageSize = 50
	}
	var total int64
	if err := s.db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []models.Order
	err := s.db.Preload("Items.Modifiers").Preload("Location").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// CancelOrder moves an early-stage order to CANCELLED and reverses the
// ledger effect applied at creation, atomically.
func (s *OrderService) CancelOrder(idOrNumber string, requesterID *uint) (*models.Order, error) {
	order, err := s.GetOrder(idOrNumber)
	if err != nil {
		return nil, err
	}
	if order.UserID != nil && requesterID != nil && *order.UserID != *requesterID {
		return nil, Forbidden("This order does not belong to you")
	}
	if !statemachine.CanCancel(order.Status) {
		return nil, InvalidState("Cannot cancel at this stage")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": models.StatusCancelled}
		if order.PaymentStatus == models.PaymentAuthorized {
			updates["payment_status"] = models.PaymentRefunded
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
			return err
		}
		if order.UserID == nil {
			return nil
		}
		if s.policy.ClampBalanceOnCancel {
			var u models.User
			if err := tx.First(&u, *order.UserID).Error; err != nil {
				return err
			}
			current := u.CurrentPoints - (order.PointsEarned - order.PointsRedeemed)
			if current < 0 {
				current = 0
			}
			lifetime := u.LifetimePoints - order.PointsEarned
			if lifetime < 0 {
				lifetime = 0
			}
			return tx.Model(&u).Updates(map[string]interface{}{
				"current_points":  current,
				"lifetime_points": lifetime,
			}).Error
		}
		// Reference behavior: unconditional decrement, may go negative.
		return tx.Model(&models.User{}).Where("id = ?", *order.UserID).
			Updates(map[string]interface{}{
				"current_points":  gorm.Expr("current_points - ?", order.PointsEarned-order.PointsRedeemed),
				"lifetime_points": gorm.Expr("lifetime_points - ?", order.PointsEarned),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(strconv.FormatUint(uint64(order.ID), 10))
}

// ForceStatus sets an order to any status without transition
// validation. This is the deliberately permissive admin path; the
// cancellation window applies only to CancelOrder.
func (s *OrderService) ForceStatus(orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, InvalidRequest("Unknown order status: " + string(status))
	}
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		return nil, NotFound("Order not found")
	}
	updates := map[string]interface{}{"status": status}
	if status == models.StatusCompleted {
		now := time.Now()
		updates["completed_at"] = &now
		order.CompletedAt = &now
	}
	if err := s.db.Model(&order).Updates(updates).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return &order, nil
}

// generateOrderNumber builds a short opaque token with a time
// component and a random component. Uniqueness is enforced by the
// database index; callers retry on collision.
func generateOrderNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().Unix(), 36))
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return "BB-" + ts + strings.ToUpper(hex.EncodeToString(buf))
}

func isDuplicateOrderNumber(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") &&
		strings.Contains(err.Error(), "order_number")
}

func cloneOrderItems(items []models.OrderItem) []models.OrderItem {
	out := make([]models.OrderItem, len(items))
	copy(out, items)
	for i := range out {
		mods := make([]models.OrderItemModifier, len(items[i].Modifiers))
		copy(mods, items[i].Modifiers)
		out[i].Modifiers = mods
	}
	return out
}
