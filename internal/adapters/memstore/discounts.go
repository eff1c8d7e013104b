package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

type DiscountRepo struct {
	mu     sync.RWMutex
	rules  map[int]*domain.DiscountRule
	order  []int
	nextID int
}

func NewDiscountRepo() *DiscountRepo {
	return &DiscountRepo{rules: map[int]*domain.DiscountRule{}, nextID: 1}
}

func (r *DiscountRepo) Save(ctx context.Context, d *domain.DiscountRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == 0 {
		d.ID = r.nextID
	}
	if d.ID >= r.nextID {
		r.nextID = d.ID + 1
	}
	if _, exists := r.rules[d.ID]; !exists {
		r.order = append(r.order, d.ID)
	}
	cp := *d
	r.rules[d.ID] = &cp
	return nil
}

// List preserves insertion order: discount evaluation order matters for
// price ties, the first matching rule wins.
func (r *DiscountRepo) List(ctx context.Context) ([]domain.DiscountRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.DiscountRule, 0, len(r.order))
	for _, id := range r.order {
		if d, ok := r.rules[id]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *DiscountRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rules, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type PromoRepo struct {
	mu     sync.RWMutex
	promos map[int]*domain.PromoCode
	nextID int
}

func NewPromoRepo() *PromoRepo {
	return &PromoRepo{promos: map[int]*domain.PromoCode{}, nextID: 1}
}

func (r *PromoRepo) Save(ctx context.Context, p *domain.PromoCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	cp := *p
	r.promos[p.ID] = &cp
	return nil
}

func (r *PromoRepo) List(ctx context.Context) ([]domain.PromoCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PromoCode, 0, len(r.promos))
	for _, p := range r.promos {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PromoRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.promos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.promos, id)
	return nil
}
