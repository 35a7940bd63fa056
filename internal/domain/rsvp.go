package domain

import "time"

// RSVP is a guest attendance confirmation. Country is a best-effort ISO code
// resolved from the client IP at creation time and may be empty.
type RSVP struct {
	ID         int64
	Name       string
	Companions int
	Email      string
	Phone      string
	Message    string
	Confirmed  bool
	Country    string
	CreatedAt  time.Time
}
