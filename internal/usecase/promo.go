package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

// CartLine is one aggregated cart entry. Bundle pseudo-lines carry a
// negative ProductID and are skipped by promo scope checks.
type CartLine struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unit_price"`
}

func (l CartLine) IsBundle() bool { return l.ProductID < 0 }

// ValidatePromo runs the ordered failure checks for a promo code against
// the cart. Each step is a distinct failure mode; success returns the
// promo and a confirmation message embedding the code.
func ValidatePromo(code string, promos []domain.PromoCode, cart []CartLine, lookup func(id int) (*domain.Product, error), today string) (*domain.PromoCode, string, error) {
	var promo *domain.PromoCode
	for i := range promos {
		if strings.EqualFold(promos[i].Code, strings.TrimSpace(code)) {
			promo = &promos[i]
			break
		}
	}
	if promo == nil {
		return nil, "", domain.ErrPromoNotFound
	}
	if !promo.Active {
		return nil, "", domain.ErrPromoInactive
	}
	if promo.ExpiryDate < today {
		return nil, "", domain.ErrPromoExpired
	}
	if promo.Scope == domain.ScopeProduct || promo.Scope == domain.ScopeCategory {
		matched := false
		checked := 0
		for _, line := range cart {
			if line.IsBundle() {
				continue
			}
			checked++
			p, err := lookup(line.ProductID)
			if err != nil || p == nil {
				continue
			}
			if promo.Scope == domain.ScopeProduct && promo.Target == strconv.Itoa(p.ID) {
				matched = true
				break
			}
			if promo.Scope == domain.ScopeCategory && promo.Target == string(p.Category) {
				matched = true
				break
			}
		}
		if checked > 0 && !matched {
			return nil, "", domain.ErrPromoNotApplicable
		}
	}
	msg := fmt.Sprintf("Kode promo %s berhasil dipakai", strings.ToUpper(promo.Code))
	return promo, msg, nil
}

// PromoAdjustment computes the cart-level discount amount the applied
// promo takes off the given subtotal.
func PromoAdjustment(promo *domain.PromoCode, subtotal int64) int64 {
	if promo == nil {
		return 0
	}
	switch promo.Kind {
	case domain.DiscountPercentage:
		return int64(float64(subtotal) * promo.Value / 100)
	case domain.DiscountFixed:
		if int64(promo.Value) > subtotal {
			return subtotal
		}
		return int64(promo.Value)
	}
	return 0
}

// PromoUC validates promo codes against the stored set. The applied-promo
// slot itself lives with the cart; removal is an unconditional reset there.
type PromoUC struct {
	Promos   domain.PromoRepo
	Products domain.ProductRepo
}

func (uc *PromoUC) Apply(ctx context.Context, code string, cart []CartLine, today string) (*domain.PromoCode, string, error) {
	promos, err := uc.Promos.List(ctx)
	if err != nil {
		return nil, "", err
	}
	lookup := func(id int) (*domain.Product, error) { return uc.Products.FindByID(ctx, id) }
	return ValidatePromo(code, promos, cart, lookup, today)
}

// FindByCode re-resolves a stored promo code, e.g. at checkout time.
func (uc *PromoUC) FindByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	promos, err := uc.Promos.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range promos {
		if strings.EqualFold(promos[i].Code, strings.TrimSpace(code)) {
			return &promos[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
