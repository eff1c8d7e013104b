package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

func kaos(id int, base int64) *domain.Product {
	return &domain.Product{ID: id, Name: "Kaos", Category: domain.CategoryKaos, BasePrice: base, Active: true}
}

func TestResolvePriceNoRules(t *testing.T) {
	q := ResolvePrice(kaos(1, 145000), nil, "2026-03-01")
	assert.False(t, q.DiscountApplied)
	assert.Equal(t, int64(145000), q.FinalPrice)
	assert.Equal(t, int64(145000), q.OriginalPrice)
}

func TestResolvePricePercentageRounds(t *testing.T) {
	rules := []domain.DiscountRule{
		{ID: 1, Scope: domain.ScopeAll, Kind: domain.DiscountPercentage, Value: 15, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
	}
	q := ResolvePrice(kaos(1, 99999), rules, "2026-03-01")
	assert.True(t, q.DiscountApplied)
	// 99999 * 0.85 = 84999.15, rounds to 84999
	assert.Equal(t, int64(84999), q.FinalPrice)
}

func TestResolvePriceFixedFloorsAtZero(t *testing.T) {
	rules := []domain.DiscountRule{
		{ID: 1, Scope: domain.ScopeAll, Kind: domain.DiscountFixed, Value: 200000, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
	}
	q := ResolvePrice(kaos(1, 145000), rules, "2026-03-01")
	assert.True(t, q.DiscountApplied)
	assert.Equal(t, int64(0), q.FinalPrice)
}

func TestResolvePriceWindowIsInclusive(t *testing.T) {
	rules := []domain.DiscountRule{
		{ID: 1, Scope: domain.ScopeAll, Kind: domain.DiscountPercentage, Value: 10, StartDate: "2026-03-01", EndDate: "2026-03-31", Active: true},
	}
	assert.True(t, ResolvePrice(kaos(1, 100000), rules, "2026-03-01").DiscountApplied)
	assert.True(t, ResolvePrice(kaos(1, 100000), rules, "2026-03-31").DiscountApplied)
	assert.False(t, ResolvePrice(kaos(1, 100000), rules, "2026-02-28").DiscountApplied)
	assert.False(t, ResolvePrice(kaos(1, 100000), rules, "2026-04-01").DiscountApplied)
}

func TestResolvePriceScopeFiltering(t *testing.T) {
	rules := []domain.DiscountRule{
		{ID: 1, Scope: domain.ScopeCategory, Target: "celana", Kind: domain.DiscountPercentage, Value: 50, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
		{ID: 2, Scope: domain.ScopeProduct, Target: "99", Kind: domain.DiscountPercentage, Value: 50, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
	}
	q := ResolvePrice(kaos(1, 100000), rules, "2026-03-01")
	assert.False(t, q.DiscountApplied)
}

func TestResolvePriceInactiveSkipped(t *testing.T) {
	rules := []domain.DiscountRule{
		{ID: 1, Scope: domain.ScopeAll, Kind: domain.DiscountPercentage, Value: 50, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: false},
	}
	q := ResolvePrice(kaos(1, 100000), rules, "2026-03-01")
	assert.False(t, q.DiscountApplied)
}

func TestResolvePriceLowestWins(t *testing.T) {
	rules := []domain.DiscountRule{
		{ID: 1, Scope: domain.ScopeAll, Kind: domain.DiscountPercentage, Value: 10, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
		{ID: 2, Scope: domain.ScopeCategory, Target: "kaos", Kind: domain.DiscountFixed, Value: 40000, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
	}
	q := ResolvePrice(kaos(1, 100000), rules, "2026-03-01")
	assert.Equal(t, int64(60000), q.FinalPrice)
	assert.Equal(t, domain.DiscountFixed, q.DiscountKind)
}

func TestResolvePriceFirstRuleKeepsTies(t *testing.T) {
	// Both rules produce 90000; the rule listed first must win.
	rules := []domain.DiscountRule{
		{ID: 1, Scope: domain.ScopeAll, Kind: domain.DiscountPercentage, Value: 10, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
		{ID: 2, Scope: domain.ScopeAll, Kind: domain.DiscountFixed, Value: 10000, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
	}
	q := ResolvePrice(kaos(1, 100000), rules, "2026-03-01")
	assert.Equal(t, int64(90000), q.FinalPrice)
	assert.Equal(t, domain.DiscountPercentage, q.DiscountKind)
	assert.Equal(t, float64(10), q.DiscountValue)
}

func TestResolvePriceNeverExceedsBase(t *testing.T) {
	rules := []domain.DiscountRule{
		{ID: 1, Scope: domain.ScopeAll, Kind: domain.DiscountPercentage, Value: 5, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
		{ID: 2, Scope: domain.ScopeAll, Kind: domain.DiscountFixed, Value: 1000, StartDate: "2026-01-01", EndDate: "2026-12-31", Active: true},
	}
	for _, base := range []int64{0, 1, 999, 145000, 1450000} {
		q := ResolvePrice(kaos(1, base), rules, "2026-03-01")
		assert.LessOrEqual(t, q.FinalPrice, base)
		assert.GreaterOrEqual(t, q.FinalPrice, int64(0))
	}
}
