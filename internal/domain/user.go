package domain

import "time"

// User is an admin account. PasswordHash is a bcrypt digest.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
