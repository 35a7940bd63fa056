package domain

import "context"

// GiftRepository defines persistence for registry gifts.
type GiftRepository interface {
	List(ctx context.Context) ([]Gift, error)
	GetByID(ctx context.Context, id int64) (*Gift, error)
	Create(ctx context.Context, gift *Gift) error
	Update(ctx context.Context, gift *Gift) error
	Delete(ctx context.Context, id int64) error
	// DecrementStock lowers the stock by one, floored at zero.
	DecrementStock(ctx context.Context, id int64) error
}

// OrderRepository defines persistence for purchase intents.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id int64) (*OrderWithGift, error)
	SetPaymentRef(ctx context.Context, id int64, ref string) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	// MarkPaid sets the status to paid only if it is not already paid and
	// reports whether this call performed the transition. It is the single
	// admission gate for settlement side effects.
	MarkPaid(ctx context.Context, id int64) (bool, error)
}

// SaleRepository defines persistence for the settlement ledger.
type SaleRepository interface {
	Create(ctx context.Context, sale *Sale) error
	List(ctx context.Context) ([]SaleWithGift, error)
	GetByID(ctx context.Context, id int64) (*SaleWithGift, error)
	UpdateStatus(ctx context.Context, id int64, status, notes string) error
	Summary(ctx context.Context) (*SalesSummary, error)
}

// RSVPRepository defines persistence for guest confirmations.
type RSVPRepository interface {
	List(ctx context.Context) ([]RSVP, error)
	Create(ctx context.Context, rsvp *RSVP) error
	Delete(ctx context.Context, id int64) error
}

// PhotoRepository defines persistence for album photos.
type PhotoRepository interface {
	List(ctx context.Context, active *bool) ([]Photo, error)
	ListByGallery(ctx context.Context, gallery string, active *bool) ([]Photo, error)
	GetByID(ctx context.Context, id int64) (*Photo, error)
	MaxSortOrder(ctx context.Context, gallery string) (int, error)
	Create(ctx context.Context, photo *Photo) error
	Update(ctx context.Context, photo *Photo) error
	SetActive(ctx context.Context, id int64, active bool) error
	Reorder(ctx context.Context, orders []PhotoOrder) error
	Delete(ctx context.Context, id int64) error
}

// StoryRepository defines persistence for timeline events.
type StoryRepository interface {
	List(ctx context.Context) ([]StoryEvent, error)
	GetByID(ctx context.Context, id int64) (*StoryEvent, error)
	Create(ctx context.Context, event *StoryEvent) error
	Update(ctx context.Context, event *StoryEvent) error
	Delete(ctx context.Context, id int64) error
}

// ContentRepository defines persistence for editable text sections.
type ContentRepository interface {
	GetBySection(ctx context.Context, section string) (*Content, error)
	Upsert(ctx context.Context, section, body string) (*Content, error)
}

// BackgroundRepository defines persistence for slideshow images.
type BackgroundRepository interface {
	List(ctx context.Context, activeOnly bool) ([]BackgroundImage, error)
	GetByID(ctx context.Context, id int64) (*BackgroundImage, error)
	Create(ctx context.Context, image *BackgroundImage) error
	Update(ctx context.Context, image *BackgroundImage) error
	Delete(ctx context.Context, id int64) error
}

// SiteConfigRepository enforces the single-row configuration invariant:
// Get creates the row when absent and collapses duplicates to the earliest id.
type SiteConfigRepository interface {
	Get(ctx context.Context) (*SiteConfig, error)
	Update(ctx context.Context, cfg *SiteConfig) error
}

// UserRepository defines lookup for admin accounts.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}
