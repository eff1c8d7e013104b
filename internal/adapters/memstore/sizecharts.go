package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

type SizeChartRepo struct {
	mu     sync.RWMutex
	charts map[string]*domain.SizeChart
}

func NewSizeChartRepo() *SizeChartRepo {
	return &SizeChartRepo{charts: map[string]*domain.SizeChart{}}
}

func cloneChart(c *domain.SizeChart) *domain.SizeChart {
	cp := *c
	cp.Details = make([]domain.SizeDetail, len(c.Details))
	for i, d := range c.Details {
		cp.Details[i] = domain.SizeDetail{
			Size:   d.Size,
			Ranges: append([]domain.DimensionRange(nil), d.Ranges...),
		}
	}
	return &cp
}

func (r *SizeChartRepo) Save(ctx context.Context, c *domain.SizeChart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.charts[c.ID] = cloneChart(c)
	return nil
}

func (r *SizeChartRepo) List(ctx context.Context) ([]domain.SizeChart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SizeChart, 0, len(r.charts))
	for _, c := range r.charts {
		out = append(out, *cloneChart(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SizeChartRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.charts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.charts, id)
	return nil
}

// TailoringCatalog serves the fixed bespoke reference data. It is
// read-only after seeding, so no locking is needed.
type TailoringCatalog struct {
	products []domain.TailoringProduct
	fabrics  []domain.Fabric
	presets  []domain.StandardSizePreset
}

func NewTailoringCatalog(products []domain.TailoringProduct, fabrics []domain.Fabric, presets []domain.StandardSizePreset) *TailoringCatalog {
	return &TailoringCatalog{products: products, fabrics: fabrics, presets: presets}
}

func (c *TailoringCatalog) Products(ctx context.Context) ([]domain.TailoringProduct, error) {
	return append([]domain.TailoringProduct(nil), c.products...), nil
}

func (c *TailoringCatalog) Fabrics(ctx context.Context) ([]domain.Fabric, error) {
	return append([]domain.Fabric(nil), c.fabrics...), nil
}

func (c *TailoringCatalog) Presets(ctx context.Context) ([]domain.StandardSizePreset, error) {
	return append([]domain.StandardSizePreset(nil), c.presets...), nil
}
