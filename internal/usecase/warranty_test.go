package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/memstore"
	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

func newWarrantyFixture(t *testing.T) (*WarrantyUC, *memstore.UserRepo, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	users := memstore.NewUserRepo()
	require.NoError(t, users.Save(ctx, &domain.User{Email: "budi@example.com", Name: "Budi"}))
	orders := memstore.NewOrderRepo()
	order := &domain.Order{
		ID:            uuid.New(),
		Type:          domain.OrderTypeRegular,
		Status:        domain.StatusDelivered,
		CustomerEmail: "budi@example.com",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, orders.Save(ctx, order))
	uc := &WarrantyUC{
		Claims: memstore.NewWarrantyRepo(),
		Orders: orders,
		Notify: &InboxNotifier{Users: users},
	}
	return uc, users, order.ID
}

func submitClaim(t *testing.T, uc *WarrantyUC, orderID uuid.UUID) *domain.WarrantyClaim {
	t.Helper()
	claim, err := uc.Submit(context.Background(), WarrantyInput{
		OrderID:      orderID,
		ProductName:  "Kemeja Oxford Slim",
		Name:         "Budi",
		Email:        "Budi@Example.com",
		Description:  "Jahitan lengan lepas setelah dua minggu",
		EvidenceRefs: []string{"foto-1.jpg"},
	})
	require.NoError(t, err)
	return claim
}

func TestWarrantySubmit(t *testing.T) {
	uc, _, orderID := newWarrantyFixture(t)
	claim := submitClaim(t, uc, orderID)
	assert.Equal(t, domain.WarrantyDitinjau, claim.Status)
	assert.Equal(t, "budi@example.com", claim.CustomerEmail)
	assert.NotZero(t, claim.ClaimDate)
}

func TestWarrantySubmitUnknownOrder(t *testing.T) {
	uc, _, _ := newWarrantyFixture(t)
	_, err := uc.Submit(context.Background(), WarrantyInput{
		OrderID:     uuid.New(),
		ProductName: "Kemeja",
		Email:       "budi@example.com",
		Description: "rusak",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarrantyApprovePath(t *testing.T) {
	uc, users, orderID := newWarrantyFixture(t)
	ctx := context.Background()
	claim := submitClaim(t, uc, orderID)

	out, err := uc.Review(ctx, claim.ID, domain.WarrantyDisetujui, "ganti unit baru")
	require.NoError(t, err)
	assert.Equal(t, domain.WarrantyDisetujui, out.Status)
	assert.Equal(t, "ganti unit baru", out.AdminNotes)

	out, err = uc.Review(ctx, claim.ID, domain.WarrantySelesai, "")
	require.NoError(t, err)
	assert.Equal(t, domain.WarrantySelesai, out.Status)
	// Notes survive a later transition that carries none.
	assert.Equal(t, "ganti unit baru", out.AdminNotes)

	u, err := users.FindByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.Len(t, u.Notifications, 2)
}

func TestWarrantyRejectPath(t *testing.T) {
	uc, _, orderID := newWarrantyFixture(t)
	claim := submitClaim(t, uc, orderID)
	out, err := uc.Review(context.Background(), claim.ID, domain.WarrantyDitolak, "kerusakan akibat pemakaian")
	require.NoError(t, err)
	assert.Equal(t, domain.WarrantyDitolak, out.Status)
}

func TestWarrantyInvalidTransitions(t *testing.T) {
	uc, _, orderID := newWarrantyFixture(t)
	ctx := context.Background()
	claim := submitClaim(t, uc, orderID)

	// Ditinjau may not jump straight to Selesai.
	_, err := uc.Review(ctx, claim.ID, domain.WarrantySelesai, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.Review(ctx, claim.ID, domain.WarrantyDisetujui, "")
	require.NoError(t, err)
	// An approved claim may not be flipped to rejected.
	_, err = uc.Review(ctx, claim.ID, domain.WarrantyDitolak, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.Review(ctx, claim.ID, domain.WarrantySelesai, "")
	require.NoError(t, err)
	// Selesai is terminal.
	_, err = uc.Review(ctx, claim.ID, domain.WarrantyDisetujui, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
