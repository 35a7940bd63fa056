package domain

import "time"

// BackgroundImage is a slideshow image for the landing page.
type BackgroundImage struct {
	ID        int64
	Image     string
	Title     string
	SortOrder int
	Active    bool
	CreatedAt time.Time
}
