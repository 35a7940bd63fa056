package domain

import "time"

// Gift is a registry item guests can purchase. Price is stored in cents.
type Gift struct {
	ID          int64
	Name        string
	Description string
	PriceCents  int64
	Image       string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriceUnits returns the price in decimal currency units for gateway payloads.
func (g Gift) PriceUnits() float64 {
	return float64(g.PriceCents) / 100
}
