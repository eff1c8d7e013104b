package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

type OrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{orders: map[uuid.UUID]*domain.Order{}}
}

func cloneOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Items = append([]domain.OrderItem(nil), o.Items...)
	cp.PaymentProofs = append([]string(nil), o.PaymentProofs...)
	if o.PaymentTerms != nil {
		t := *o.PaymentTerms
		cp.PaymentTerms = &t
	}
	if o.PaymentDate != nil {
		d := *o.PaymentDate
		cp.PaymentDate = &d
	}
	return &cp
}

func (r *OrderRepo) Save(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *OrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneOrder(o), nil
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *OrderRepo) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Order{}
	for _, o := range r.orders {
		if o.CustomerEmail == email {
			out = append(out, *cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type CustomOrderRepo struct {
	mu   sync.RWMutex
	reqs map[uuid.UUID]*domain.CustomOrderRequest
}

func NewCustomOrderRepo() *CustomOrderRepo {
	return &CustomOrderRepo{reqs: map[uuid.UUID]*domain.CustomOrderRequest{}}
}

func (r *CustomOrderRepo) Save(ctx context.Context, req *domain.CustomOrderRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	cp.Sizes = append([]domain.SizeQuantity(nil), req.Sizes...)
	r.reqs[req.ID] = &cp
	return nil
}

func (r *CustomOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomOrderRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.reqs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *req
	cp.Sizes = append([]domain.SizeQuantity(nil), req.Sizes...)
	return &cp, nil
}

func (r *CustomOrderRepo) List(ctx context.Context) ([]domain.CustomOrderRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.CustomOrderRequest, 0, len(r.reqs))
	for _, req := range r.reqs {
		cp := *req
		cp.Sizes = append([]domain.SizeQuantity(nil), req.Sizes...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
