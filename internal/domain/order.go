package domain

import "time"

// Order statuses. StatusPaid is the canonical terminal state; any other value
// mirrors whatever the gateway last reported.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Order is a purchase intent for a single gift. It is created pending and only
// ever transitions through webhook reconciliation.
type Order struct {
	ID            int64
	GiftID        int64
	CustomerName  string
	CustomerEmail string
	Status        string
	PaymentRef    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderWithGift pairs an order with a snapshot of its gift.
type OrderWithGift struct {
	Order
	Gift Gift
}
