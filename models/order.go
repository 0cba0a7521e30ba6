package models

import "time"

// OrderStatus represents the lifecycle of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "PICKUP"
	FulfillmentDineIn   FulfillmentType = "DINE_IN"
	FulfillmentDelivery FulfillmentType = "DELIVERY"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentAuthorized PaymentStatus = "AUTHORIZED"
	PaymentPaid       PaymentStatus = "PAID"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

type Order struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrderNumber string `json:"orderNumber" gorm:"uniqueIndex;not null"`

	// Guest orders have no user reference.
	UserID *uint `json:"userId"`
	User   *User `json:"user,omitempty" gorm:"foreignKey:UserID"`

	LocationID uint     `json:"locationId" gorm:"not null;index"`
	Location   Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`

	Type   FulfillmentType `json:"type" gorm:"not null"`
	Status OrderStatus     `json:"status" gorm:"not null;default:'PENDING'"`

	// Each amount is persisted independently for auditability.
	// total = subtotal + tax + tip - discount, fixed at creation.
	Subtotal float64 `json:"subtotal" gorm:"not null"`
	Tax      float64 `json:"tax" gorm:"not null"`
	Tip      float64 `json:"tip" gorm:"not null;default:0"`
	Discount float64 `json:"discount" gorm:"not null;default:0"`
	Total    float64 `json:"total" gorm:"not null"`

	// Contact snapshot, captured even for registered users.
	CustomerName  string `json:"customerName" gorm:"not null"`
	CustomerPhone string `json:"customerPhone" gorm:"not null"`
	CustomerEmail string `json:"customerEmail"`

	PaymentMethod string        `json:"paymentMethod" gorm:"not null"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"not null;default:'PENDING'"`

	ScheduledFor   *time.Time `json:"scheduledFor"`
	EstimatedReady *time.Time `json:"estimatedReady"`

	PointsEarned   int `json:"pointsEarned" gorm:"not null;default:0"`
	PointsRedeemed int `json:"pointsRedeemed" gorm:"not null;default:0"`

	SpecialInstructions string `json:"specialInstructions"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`

	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
	UpdatedAt   time.Time  `json:"-"`
}

// OrderItem snapshots name and unit price at order time so later
// catalog edits never alter historical orders.
type OrderItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"orderId" gorm:"not null;index"`
	MenuItemID uint    `json:"menuItemId" gorm:"not null"`
	Name       string  `json:"name" gorm:"not null"`
	UnitPrice  float64 `json:"unitPrice" gorm:"not null"`
	Quantity   int     `json:"quantity" gorm:"not null"`
	LineTotal  float64 `json:"lineTotal" gorm:"not null"`

	SpecialInstructions string `json:"specialInstructions"`

	Modifiers []OrderItemModifier `json:"modifiers,omitempty" gorm:"foreignKey:OrderItemID"`
}

type OrderItemModifier struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	OrderItemID uint    `json:"orderItemId" gorm:"not null;index"`
	ModifierID  uint    `json:"modifierId" gorm:"not null"`
	Name        string  `json:"name" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
}
