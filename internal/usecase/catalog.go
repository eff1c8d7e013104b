package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

// CatalogUC covers admin product CRUD and storefront listing.
type CatalogUC struct {
	Products domain.ProductRepo
}

func (uc *CatalogUC) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int, error) {
	if f.PageSize == 0 {
		f.PageSize = 20
	}
	return uc.Products.List(ctx, f)
}

func (uc *CatalogUC) Get(ctx context.Context, id int) (*domain.Product, error) {
	if id == 0 {
		return nil, errors.New("product id kosong")
	}
	return uc.Products.FindByID(ctx, id)
}

func (uc *CatalogUC) Save(ctx context.Context, p *domain.Product) error {
	if p == nil {
		return errors.New("product nil")
	}
	if p.Name == "" {
		return errors.New("nama produk kosong")
	}
	if p.BasePrice < 0 {
		return errors.New("harga tidak valid")
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = time.Now()
	return uc.Products.Save(ctx, p)
}

func (uc *CatalogUC) Delete(ctx context.Context, id int) error {
	if id == 0 {
		return errors.New("product id kosong")
	}
	return uc.Products.Delete(ctx, id)
}

func (uc *CatalogUC) Categories(ctx context.Context) []domain.Category {
	return []domain.Category{
		domain.CategoryKemeja,
		domain.CategoryKaos,
		domain.CategoryCelana,
		domain.CategoryJaket,
		domain.CategoryJas,
		domain.CategoryAksesori,
	}
}
