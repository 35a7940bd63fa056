package handlers

import (
	"context"
	"sync"
	"time"

	"weddingapi/internal/domain"
	"weddingapi/internal/payments/mercadopago"
)

type fakeGifts struct {
	mu    sync.Mutex
	gifts map[int64]*domain.Gift
	next  int64
}

func newFakeGifts() *fakeGifts {
	return &fakeGifts{gifts: map[int64]*domain.Gift{}, next: 1}
}

func (f *fakeGifts) List(ctx context.Context) ([]domain.Gift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Gift, 0, len(f.gifts))
	for _, g := range f.gifts {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGifts) GetByID(ctx context.Context, id int64) (*domain.Gift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.gifts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := *g
	return &copy, nil
}

func (f *fakeGifts) Create(ctx context.Context, gift *domain.Gift) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	gift.ID = f.next
	gift.CreatedAt = time.Now()
	f.next++
	stored := *gift
	f.gifts[gift.ID] = &stored
	return nil
}

func (f *fakeGifts) Update(ctx context.Context, gift *domain.Gift) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.gifts[gift.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *gift
	f.gifts[gift.ID] = &stored
	return nil
}

func (f *fakeGifts) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.gifts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.gifts, id)
	return nil
}

func (f *fakeGifts) DecrementStock(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.gifts[id]
	if !ok {
		return domain.ErrNotFound
	}
	if g.Stock > 0 {
		g.Stock--
	}
	return nil
}

type fakeOrders struct {
	mu     sync.Mutex
	orders map[int64]*domain.Order
	gifts  *fakeGifts
	next   int64
}

func newFakeOrders(gifts *fakeGifts) *fakeOrders {
	return &fakeOrders{orders: map[int64]*domain.Order{}, gifts: gifts, next: 1}
}

func (f *fakeOrders) Create(ctx context.Context, order *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = f.next
	order.Status = domain.OrderStatusPending
	order.CreatedAt = time.Now()
	f.next++
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrders) GetByID(ctx context.Context, id int64) (*domain.OrderWithGift, error) {
	f.mu.Lock()
	o, ok := f.orders[id]
	f.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	gift, err := f.gifts.GetByID(ctx, o.GiftID)
	if err != nil {
		return nil, err
	}
	return &domain.OrderWithGift{Order: *o, Gift: *gift}, nil
}

func (f *fakeOrders) SetPaymentRef(ctx context.Context, id int64, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.PaymentRef = &ref
	return nil
}

func (f *fakeOrders) UpdateStatus(ctx context.Context, id int64, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrders) MarkPaid(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	if o.Status == domain.OrderStatusPaid {
		return false, nil
	}
	o.Status = domain.OrderStatusPaid
	return true, nil
}

type fakeSales struct {
	mu    sync.Mutex
	sales []domain.Sale
	gifts *fakeGifts
}

func (f *fakeSales) Create(ctx context.Context, sale *domain.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sale.ID = int64(len(f.sales) + 1)
	sale.CreatedAt = time.Now()
	f.sales = append(f.sales, *sale)
	return nil
}

func (f *fakeSales) List(ctx context.Context) ([]domain.SaleWithGift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.SaleWithGift, 0, len(f.sales))
	for _, s := range f.sales {
		entry := domain.SaleWithGift{Sale: s}
		if f.gifts != nil {
			if g, err := f.gifts.GetByID(ctx, s.GiftID); err == nil {
				entry.Gift = *g
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeSales) GetByID(ctx context.Context, id int64) (*domain.SaleWithGift, error) {
	all, _ := f.List(ctx)
	for _, s := range all {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSales) UpdateStatus(ctx context.Context, id int64, status, notes string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.sales {
		if f.sales[i].ID == id {
			f.sales[i].Status = status
			f.sales[i].Notes = notes
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeSales) Summary(ctx context.Context) (*domain.SalesSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sum := &domain.SalesSummary{TotalSales: int64(len(f.sales))}
	for _, s := range f.sales {
		sum.TotalCents += s.AmountCents
	}
	return sum, nil
}

type fakeConfig struct {
	mu  sync.Mutex
	cfg domain.SiteConfig
}

func (f *fakeConfig) Get(ctx context.Context) (*domain.SiteConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy := f.cfg
	return &copy, nil
}

func (f *fakeConfig) Update(ctx context.Context, cfg *domain.SiteConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg = *cfg
	return nil
}

type fakeUsers struct {
	users map[string]*domain.User
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := *u
	return &copy, nil
}

func (f *fakeUsers) Create(ctx context.Context, user *domain.User) error {
	f.users[user.Email] = user
	return nil
}

type fakeContents struct {
	mu     sync.Mutex
	bodies map[string]string
}

func (f *fakeContents) GetBySection(ctx context.Context, section string) (*domain.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, ok := f.bodies[section]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Content{Section: section, Body: body, UpdatedAt: time.Now()}, nil
}

func (f *fakeContents) Upsert(ctx context.Context, section, body string) (*domain.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bodies == nil {
		f.bodies = map[string]string{}
	}
	f.bodies[section] = body
	return &domain.Content{Section: section, Body: body, UpdatedAt: time.Now()}, nil
}

type fakeGateway struct {
	payments   map[string]*mercadopago.Payment
	preference *mercadopago.Preference
	lastReq    mercadopago.PreferenceRequest
}

func (f *fakeGateway) CreatePreference(ctx context.Context, req mercadopago.PreferenceRequest) (*mercadopago.Preference, error) {
	f.lastReq = req
	if f.preference == nil {
		return &mercadopago.Preference{ID: "pref-1", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"}, nil
	}
	return f.preference, nil
}

func (f *fakeGateway) GetPayment(ctx context.Context, paymentID string) (*mercadopago.Payment, error) {
	p, ok := f.payments[paymentID]
	if !ok {
		return nil, domain.ErrGatewayFailure
	}
	return p, nil
}
