package domain

import "time"

// Sale is the append-only settlement record created once an order is paid.
type Sale struct {
	ID            int64
	GiftID        int64
	CustomerName  string
	CustomerEmail string
	AmountCents   int64
	PaymentMethod string
	PaymentRef    string
	Status        string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleWithGift pairs a sale with its gift snapshot for admin listings.
type SaleWithGift struct {
	Sale
	Gift Gift
}

// SalesSummary aggregates the paid ledger for the admin dashboard.
type SalesSummary struct {
	TotalSales int64
	TotalCents int64
	ByMethod   []MethodTotal
	TopGifts   []GiftTotal
}

type MethodTotal struct {
	PaymentMethod string
	Count         int64
	AmountCents   int64
}

type GiftTotal struct {
	GiftID      int64
	Name        string
	Description string
	Count       int64
	AmountCents int64
}
