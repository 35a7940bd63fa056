package domain

import "time"

// StoryEvent is one entry on the couple's timeline. EventDate is free text as
// displayed on the site ("19 de setembro de 2015").
type StoryEvent struct {
	ID        int64
	EventDate string
	Title     string
	Body      string
	Image     string
	SortOrder int
	CreatedAt time.Time
}
