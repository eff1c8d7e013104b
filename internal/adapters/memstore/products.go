package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

// ProductRepo keeps the catalog in memory for the process lifetime. A
// RWMutex guards the map because the HTTP adapter serves concurrently;
// the business rules themselves stay single-writer.
type ProductRepo struct {
	mu     sync.RWMutex
	items  map[int]*domain.Product
	nextID int
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{items: map[int]*domain.Product{}, nextID: 1}
}

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int, error) {
	r.mu.RLock()
	list := make([]domain.Product, 0, len(r.items))
	for _, p := range r.items {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Query != "" {
			q := strings.ToLower(strings.TrimSpace(f.Query))
			if !strings.Contains(strings.ToLower(p.Name), q) &&
				!strings.Contains(strings.ToLower(string(p.Category)), q) &&
				!strings.Contains(strings.ToLower(p.Style), q) {
				continue
			}
		}
		list = append(list, *p)
	}
	r.mu.RUnlock()

	switch f.Sort {
	case "price_desc":
		sort.Slice(list, func(i, j int) bool { return list[i].BasePrice > list[j].BasePrice })
	case "price_asc":
		sort.Slice(list, func(i, j int) bool { return list[i].BasePrice < list[j].BasePrice })
	case "newest":
		sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	default:
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
	total := len(list)
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	start := (f.Page - 1) * f.PageSize
	if start >= total {
		return []domain.Product{}, total, nil
	}
	end := start + f.PageSize
	if end > total {
		end = total
	}
	return list[start:end], total, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *ProductRepo) AdjustStock(ctx context.Context, id int, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	next := p.Stock + delta
	if next < 0 {
		return domain.ErrInsufficientStock
	}
	p.Stock = next
	return nil
}
