package domain

// DiscountScope is the breadth of catalog items a rule or promo applies to.
type DiscountScope string

const (
	ScopeAll      DiscountScope = "all"
	ScopeCategory DiscountScope = "category"
	ScopeProduct  DiscountScope = "product"
)

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// DiscountRule is a time-bounded catalog discount. Validity dates are ISO
// YYYY-MM-DD strings compared lexicographically, both bounds inclusive.
type DiscountRule struct {
	ID        int           `json:"id"`
	Scope     DiscountScope `json:"scope"`
	Target    string        `json:"target"`
	Kind      DiscountKind  `json:"kind"`
	Value     float64       `json:"value"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Active    bool          `json:"active"`
}

// PromoCode is a cart-level adjustment keyed by a case-insensitive code.
// It has a single expiry bound and no start bound.
type PromoCode struct {
	ID         int           `json:"id"`
	Code       string        `json:"code"`
	Scope      DiscountScope `json:"scope"`
	Target     string        `json:"target"`
	Kind       DiscountKind  `json:"kind"`
	Value      float64       `json:"value"`
	ExpiryDate string        `json:"expiry_date"`
	Active     bool          `json:"active"`
	Note       string        `json:"note,omitempty"`
}

// PriceQuote is the result of resolving an item's price against the active
// discount rules. Discounts are computed on read and never persisted onto
// the product.
type PriceQuote struct {
	FinalPrice      int64        `json:"final_price"`
	OriginalPrice   int64        `json:"original_price"`
	DiscountApplied bool         `json:"discount_applied"`
	DiscountKind    DiscountKind `json:"discount_kind,omitempty"`
	DiscountValue   float64      `json:"discount_value,omitempty"`
}
