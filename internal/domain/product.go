package domain

import "time"

type Category string

const (
	CategoryKemeja   Category = "kemeja"
	CategoryKaos     Category = "kaos"
	CategoryCelana   Category = "celana"
	CategoryJaket    Category = "jaket"
	CategoryJas      Category = "jas"
	CategoryAksesori Category = "aksesori"
)

type ColorOption struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Bundle groups several real products under one fixed price. Bundle lines
// are identified in the cart by a negative product id.
type Bundle struct {
	ItemIDs []int `json:"item_ids"`
	Price   int64 `json:"price"`
}

type Product struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Category   Category      `json:"category"`
	Style      string        `json:"style"`
	BasePrice  int64         `json:"base_price"`
	Stock      int           `json:"stock"`
	WeightGr   int           `json:"weight_gr"`
	Sizes      []string      `json:"sizes"`
	Colors     []ColorOption `json:"colors"`
	Bundle     *Bundle       `json:"bundle,omitempty"`
	Collection string        `json:"collection,omitempty"`
	ShortDesc  string        `json:"short_desc"`
	Material   string        `json:"material,omitempty"`
	CareNotes  string        `json:"care_notes,omitempty"`
	ImageURL   string        `json:"image_url,omitempty"`
	Active     bool          `json:"active"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// IsBundle reports whether the product is a synthetic bundle line.
func (p *Product) IsBundle() bool { return p.Bundle != nil }

type ProductFilter struct {
	Category Category
	Query    string
	Sort     string
	Page     int
	PageSize int
}
