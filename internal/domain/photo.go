package domain

import "time"

// Photo is one album entry. Photos are grouped by gallery and ordered by
// SortOrder within it.
type Photo struct {
	ID        int64
	Gallery   string
	Image     string
	Title     string
	SortOrder int
	Active    bool
	CreatedAt time.Time
}

// PhotoOrder carries a single reorder instruction.
type PhotoOrder struct {
	ID        int64
	SortOrder int
}
