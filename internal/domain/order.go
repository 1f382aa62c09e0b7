package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order represents a placed order. The admin API only reads orders.
// JSON keys are camelCase to match the rest of the dashboard payload.
type Order struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	TotalAmount float64   `json:"totalAmount" db:"total_amount"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// RecentOrder is an order enriched with the buyer's name and email,
// as shown on the admin dashboard. The buyer's credential is never carried.
type RecentOrder struct {
	Order
	BuyerName  string `json:"buyerName" db:"buyer_name"`
	BuyerEmail string `json:"buyerEmail" db:"buyer_email"`
}
