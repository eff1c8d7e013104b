package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizqydermawanai-png/kzumi-store/internal/adapters/memstore"
	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

func TestInboxNotifierAppends(t *testing.T) {
	ctx := context.Background()
	users := memstore.NewUserRepo()
	require.NoError(t, users.Save(ctx, &domain.User{Email: "budi@example.com"}))
	n := &InboxNotifier{Users: users}

	require.NoError(t, n.Notify(ctx, "budi@example.com", "pesan pertama"))
	require.NoError(t, n.Notify(ctx, "BUDI@example.com", "pesan kedua"))

	u, err := users.FindByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	require.Len(t, u.Notifications, 2)
	assert.Equal(t, "pesan pertama", u.Notifications[0].Message)
	assert.False(t, u.Notifications[0].Read)
}

func TestInboxNotifierDropsUnknownRecipient(t *testing.T) {
	n := &InboxNotifier{Users: memstore.NewUserRepo()}
	assert.NoError(t, n.Notify(context.Background(), "tidakada@example.com", "halo"))
}

func TestEnsureUserIdempotent(t *testing.T) {
	ctx := context.Background()
	uc := &UserUC{Users: memstore.NewUserRepo()}
	first, err := uc.EnsureUser(ctx, "Budi@Example.com", "Budi")
	require.NoError(t, err)
	second, err := uc.EnsureUser(ctx, "budi@example.com", "Budi S.")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.RoleCustomer, first.Role)
}

func TestMarkNotificationRead(t *testing.T) {
	ctx := context.Background()
	users := memstore.NewUserRepo()
	require.NoError(t, users.Save(ctx, &domain.User{Email: "budi@example.com"}))
	n := &InboxNotifier{Users: users}
	require.NoError(t, n.Notify(ctx, "budi@example.com", "halo"))

	u, err := users.FindByEmail(ctx, "budi@example.com")
	require.NoError(t, err)

	uc := &UserUC{Users: users}
	require.NoError(t, uc.MarkNotificationRead(ctx, "budi@example.com", u.Notifications[0].ID))

	u, err = users.FindByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.True(t, u.Notifications[0].Read)

	assert.ErrorIs(t, uc.MarkNotificationRead(ctx, "budi@example.com", uuid.New()), domain.ErrNotFound)
}
