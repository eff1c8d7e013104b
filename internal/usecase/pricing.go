package usecase

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

// ISODate formats t as the YYYY-MM-DD string the discount windows are
// compared against. Lexicographic comparison is safe for ISO dates.
func ISODate(t time.Time) string { return t.Format("2006-01-02") }

func ruleMatches(item *domain.Product, d *domain.DiscountRule, today string) bool {
	if !d.Active {
		return false
	}
	if today < d.StartDate || today > d.EndDate {
		return false
	}
	switch d.Scope {
	case domain.ScopeAll:
		return true
	case domain.ScopeCategory:
		return d.Target == string(item.Category)
	case domain.ScopeProduct:
		return d.Target == strconv.Itoa(item.ID)
	}
	return false
}

func candidatePrice(base int64, d *domain.DiscountRule) int64 {
	switch d.Kind {
	case domain.DiscountPercentage:
		return int64(math.Round(float64(base) * (1 - d.Value/100)))
	case domain.DiscountFixed:
		p := base - int64(d.Value)
		if p < 0 {
			return 0
		}
		return p
	}
	return base
}

// ResolvePrice computes the best applicable price for an item against the
// active discount set. When several rules match, the lowest candidate
// wins; a later rule replaces the best only on strict improvement, so the
// first matching rule keeps ties.
func ResolvePrice(item *domain.Product, rules []domain.DiscountRule, today string) domain.PriceQuote {
	quote := domain.PriceQuote{
		FinalPrice:    item.BasePrice,
		OriginalPrice: item.BasePrice,
	}
	for i := range rules {
		d := &rules[i]
		if !ruleMatches(item, d, today) {
			continue
		}
		p := candidatePrice(item.BasePrice, d)
		if !quote.DiscountApplied || p < quote.FinalPrice {
			quote.FinalPrice = p
			quote.DiscountApplied = true
			quote.DiscountKind = d.Kind
			quote.DiscountValue = d.Value
		}
	}
	return quote
}

// PricingUC resolves display prices for catalog reads.
type PricingUC struct {
	Products  domain.ProductRepo
	Discounts domain.DiscountRepo
}

func (uc *PricingUC) QuoteFor(ctx context.Context, productID int, today string) (*domain.Product, domain.PriceQuote, error) {
	p, err := uc.Products.FindByID(ctx, productID)
	if err != nil {
		return nil, domain.PriceQuote{}, err
	}
	rules, err := uc.Discounts.List(ctx)
	if err != nil {
		return nil, domain.PriceQuote{}, err
	}
	return p, ResolvePrice(p, rules, today), nil
}

// QuoteAll resolves prices for a product page listing in one pass.
func (uc *PricingUC) QuoteAll(ctx context.Context, items []domain.Product, today string) ([]domain.PriceQuote, error) {
	rules, err := uc.Discounts.List(ctx)
	if err != nil {
		return nil, err
	}
	quotes := make([]domain.PriceQuote, len(items))
	for i := range items {
		quotes[i] = ResolvePrice(&items[i], rules, today)
	}
	return quotes, nil
}
