package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

func TestDiscountListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewDiscountRepo()
	for _, id := range []int{7, 3, 5} {
		require.NoError(t, repo.Save(ctx, &domain.DiscountRule{ID: id, Scope: domain.ScopeAll, Active: true}))
	}
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 7, list[0].ID)
	assert.Equal(t, 3, list[1].ID)
	assert.Equal(t, 5, list[2].ID)
}

func TestDiscountDeleteRemovesFromOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewDiscountRepo()
	require.NoError(t, repo.Save(ctx, &domain.DiscountRule{ID: 1, Scope: domain.ScopeAll}))
	require.NoError(t, repo.Save(ctx, &domain.DiscountRule{ID: 2, Scope: domain.ScopeAll}))
	require.NoError(t, repo.Delete(ctx, 1))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ID)
	assert.ErrorIs(t, repo.Delete(ctx, 1), domain.ErrNotFound)
}

func TestOrderRepoReturnsDeepCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepo()
	o := &domain.Order{
		ID:            uuid.New(),
		Status:        domain.StatusPendingPayment,
		CustomerEmail: "budi@example.com",
		Items:         []domain.OrderItem{{ProductID: 1, Qty: 1, UnitPrice: 385000}},
		PaymentTerms:  &domain.PaymentTerms{Type: "50/50", DownPaymentStatus: domain.PaymentUnpaid},
		CreatedAt:     time.Now(),
	}
	require.NoError(t, repo.Save(ctx, o))

	got, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	got.Items[0].Qty = 99
	got.PaymentTerms.DownPaymentStatus = domain.PaymentVerified
	got.Status = domain.StatusCanceled

	fresh, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Items[0].Qty)
	assert.Equal(t, domain.PaymentUnpaid, fresh.PaymentTerms.DownPaymentStatus)
	assert.Equal(t, domain.StatusPendingPayment, fresh.Status)
}

func TestProductStockFloor(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo()
	require.NoError(t, repo.Save(ctx, &domain.Product{ID: 1, Name: "Kaos", Stock: 2}))
	require.NoError(t, repo.AdjustStock(ctx, 1, -2))
	assert.ErrorIs(t, repo.AdjustStock(ctx, 1, -1), domain.ErrInsufficientStock)
	p, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
}

func TestSeedSatisfiesWizardAndCharts(t *testing.T) {
	ctx := context.Background()
	products := NewProductRepo()
	discounts := NewDiscountRepo()
	promos := NewPromoRepo()
	charts := NewSizeChartRepo()
	users := NewUserRepo()
	require.NoError(t, Seed(ctx, products, discounts, promos, charts, users))

	list, total, err := products.List(ctx, domain.ProductFilter{Page: 1, PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	var bundle *domain.Product
	for i := range list {
		if list[i].IsBundle() {
			bundle = &list[i]
		}
	}
	require.NotNil(t, bundle)
	assert.ElementsMatch(t, []int{1, 3}, bundle.Bundle.ItemIDs)

	cs, err := charts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cs, 3)

	admin, err := users.FindByEmail(ctx, "admin@kzumi.id")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperadmin, admin.Role)

	tp, fabrics, presets := TailoringSeed()
	assert.Len(t, tp, 3)
	assert.Len(t, fabrics, 4)
	assert.Len(t, presets, 4)
}
