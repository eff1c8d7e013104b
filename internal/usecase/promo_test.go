package usecase

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

var promoFixtures = []domain.PromoCode{
	{ID: 1, Code: "KZUMI10", Scope: domain.ScopeAll, Kind: domain.DiscountPercentage, Value: 10, ExpiryDate: "2026-12-31", Active: true},
	{ID: 2, Code: "HEMATKAOS", Scope: domain.ScopeCategory, Target: "kaos", Kind: domain.DiscountFixed, Value: 20000, ExpiryDate: "2026-12-31", Active: true},
	{ID: 3, Code: "MATI", Scope: domain.ScopeAll, Kind: domain.DiscountPercentage, Value: 5, ExpiryDate: "2026-12-31", Active: false},
	{ID: 4, Code: "LAMA", Scope: domain.ScopeAll, Kind: domain.DiscountPercentage, Value: 5, ExpiryDate: "2026-01-01", Active: true},
}

func promoLookup(id int) (*domain.Product, error) {
	products := map[int]*domain.Product{
		1: {ID: 1, Category: domain.CategoryKemeja},
		2: {ID: 2, Category: domain.CategoryKaos},
	}
	if p, ok := products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func TestValidatePromoUnknownCode(t *testing.T) {
	_, _, err := ValidatePromo("TIDAKADA", promoFixtures, nil, promoLookup, "2026-06-01")
	assert.ErrorIs(t, err, domain.ErrPromoNotFound)
}

func TestValidatePromoInactive(t *testing.T) {
	_, _, err := ValidatePromo("MATI", promoFixtures, nil, promoLookup, "2026-06-01")
	assert.ErrorIs(t, err, domain.ErrPromoInactive)
}

func TestValidatePromoExpired(t *testing.T) {
	_, _, err := ValidatePromo("LAMA", promoFixtures, nil, promoLookup, "2026-06-01")
	assert.ErrorIs(t, err, domain.ErrPromoExpired)
}

func TestValidatePromoExpiryDayStillValid(t *testing.T) {
	_, _, err := ValidatePromo("LAMA", promoFixtures, nil, promoLookup, "2026-01-01")
	assert.NoError(t, err)
}

func TestValidatePromoScopeMismatch(t *testing.T) {
	cart := []CartLine{{ProductID: 1, Qty: 1, UnitPrice: 385000}}
	_, _, err := ValidatePromo("HEMATKAOS", promoFixtures, cart, promoLookup, "2026-06-01")
	assert.ErrorIs(t, err, domain.ErrPromoNotApplicable)
}

func TestValidatePromoScopeMatch(t *testing.T) {
	cart := []CartLine{
		{ProductID: 1, Qty: 1, UnitPrice: 385000},
		{ProductID: 2, Qty: 2, UnitPrice: 145000},
	}
	promo, msg, err := ValidatePromo("hematkaos", promoFixtures, cart, promoLookup, "2026-06-01")
	require.NoError(t, err)
	assert.Equal(t, "HEMATKAOS", promo.Code)
	assert.Contains(t, msg, "HEMATKAOS")
}

func TestValidatePromoEmptyCartSkipsScopeCheck(t *testing.T) {
	_, _, err := ValidatePromo("HEMATKAOS", promoFixtures, nil, promoLookup, "2026-06-01")
	assert.NoError(t, err)
}

func TestValidatePromoBundleLinesExcluded(t *testing.T) {
	// A cart of only bundle pseudo-lines has nothing to scope-check.
	cart := []CartLine{{ProductID: -6, Qty: 1, UnitPrice: 650000}}
	_, _, err := ValidatePromo("HEMATKAOS", promoFixtures, cart, promoLookup, "2026-06-01")
	assert.NoError(t, err)
}

func TestValidatePromoCaseInsensitive(t *testing.T) {
	promo, _, err := ValidatePromo("  kzumi10 ", promoFixtures, nil, promoLookup, "2026-06-01")
	require.NoError(t, err)
	assert.Equal(t, 1, promo.ID)
}

func TestValidatePromoReapplySameResult(t *testing.T) {
	cart := []CartLine{{ProductID: 2, Qty: 1, UnitPrice: 145000}}
	first, _, err := ValidatePromo("KZUMI10", promoFixtures, cart, promoLookup, "2026-06-01")
	require.NoError(t, err)
	second, _, err := ValidatePromo("KZUMI10", promoFixtures, cart, promoLookup, "2026-06-01")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, PromoAdjustment(first, 145000), PromoAdjustment(second, 145000))
}

func TestPromoAdjustmentPercentage(t *testing.T) {
	promo := &domain.PromoCode{Kind: domain.DiscountPercentage, Value: 10}
	assert.Equal(t, int64(14500), PromoAdjustment(promo, 145000))
}

func TestPromoAdjustmentFixedCapsAtSubtotal(t *testing.T) {
	promo := &domain.PromoCode{Kind: domain.DiscountFixed, Value: 20000}
	assert.Equal(t, int64(20000), PromoAdjustment(promo, 145000))
	assert.Equal(t, int64(15000), PromoAdjustment(promo, 15000))
}

func TestPromoAdjustmentNil(t *testing.T) {
	assert.Equal(t, int64(0), PromoAdjustment(nil, 145000))
}

func TestValidatePromoProductScope(t *testing.T) {
	promos := []domain.PromoCode{
		{ID: 9, Code: "SATU", Scope: domain.ScopeProduct, Target: strconv.Itoa(1), Kind: domain.DiscountPercentage, Value: 5, ExpiryDate: "2026-12-31", Active: true},
	}
	cart := []CartLine{{ProductID: 2, Qty: 1, UnitPrice: 145000}}
	_, _, err := ValidatePromo("SATU", promos, cart, promoLookup, "2026-06-01")
	assert.ErrorIs(t, err, domain.ErrPromoNotApplicable)

	cart = append(cart, CartLine{ProductID: 1, Qty: 1, UnitPrice: 385000})
	_, _, err = ValidatePromo("SATU", promos, cart, promoLookup, "2026-06-01")
	assert.NoError(t, err)
}
