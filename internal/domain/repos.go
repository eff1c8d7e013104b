package domain

import (
	"context"

	"github.com/google/uuid"
)

type ProductRepo interface {
	Save(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context, f ProductFilter) ([]Product, int, error)
	Delete(ctx context.Context, id int) error
	AdjustStock(ctx context.Context, id int, delta int) error
}

type DiscountRepo interface {
	Save(ctx context.Context, d *DiscountRule) error
	List(ctx context.Context) ([]DiscountRule, error)
	Delete(ctx context.Context, id int) error
}

type PromoRepo interface {
	Save(ctx context.Context, p *PromoCode) error
	List(ctx context.Context) ([]PromoCode, error)
	Delete(ctx context.Context, id int) error
}

type SizeChartRepo interface {
	Save(ctx context.Context, c *SizeChart) error
	List(ctx context.Context) ([]SizeChart, error)
	Delete(ctx context.Context, id string) error
}

type OrderRepo interface {
	Save(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByEmail(ctx context.Context, email string) ([]Order, error)
}

type CustomOrderRepo interface {
	Save(ctx context.Context, r *CustomOrderRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*CustomOrderRequest, error)
	List(ctx context.Context) ([]CustomOrderRequest, error)
}

type UserRepo interface {
	Save(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
}

type WarrantyRepo interface {
	Save(ctx context.Context, c *WarrantyClaim) error
	FindByID(ctx context.Context, id uuid.UUID) (*WarrantyClaim, error)
	List(ctx context.Context) ([]WarrantyClaim, error)
}

// Notifier is the side channel every state machine notifies customers
// through. Enqueued notifications are never retracted.
type Notifier interface {
	Notify(ctx context.Context, email, message string) error
}

// TailoringCatalog serves the bespoke wizard's reference data.
type TailoringCatalog interface {
	Products(ctx context.Context) ([]TailoringProduct, error)
	Fabrics(ctx context.Context) ([]Fabric, error)
	Presets(ctx context.Context) ([]StandardSizePreset, error)
}
