package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

// UserRepo keys users by lowercased email; login matching is
// case-insensitive by the data model.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: map[string]*domain.User{}}
}

func cloneUser(u *domain.User) *domain.User {
	cp := *u
	cp.Notifications = append([]domain.Notification(nil), u.Notifications...)
	cp.Purchases = append([]domain.PurchaseRecord(nil), u.Purchases...)
	return &cp
}

func (r *UserRepo) Save(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	r.users[u.Email] = cloneUser(u)
	return nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type WarrantyRepo struct {
	mu     sync.RWMutex
	claims map[uuid.UUID]*domain.WarrantyClaim
}

func NewWarrantyRepo() *WarrantyRepo {
	return &WarrantyRepo{claims: map[uuid.UUID]*domain.WarrantyClaim{}}
}

func (r *WarrantyRepo) Save(ctx context.Context, c *domain.WarrantyClaim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	cp.EvidenceRefs = append([]string(nil), c.EvidenceRefs...)
	r.claims[c.ID] = &cp
	return nil
}

func (r *WarrantyRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.WarrantyClaim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.claims[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	cp.EvidenceRefs = append([]string(nil), c.EvidenceRefs...)
	return &cp, nil
}

func (r *WarrantyRepo) List(ctx context.Context) ([]domain.WarrantyClaim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.WarrantyClaim, 0, len(r.claims))
	for _, c := range r.claims {
		cp := *c
		cp.EvidenceRefs = append([]string(nil), c.EvidenceRefs...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClaimDate.After(out[j].ClaimDate) })
	return out, nil
}
