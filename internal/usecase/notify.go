package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

// InboxNotifier delivers customer notifications by appending to the
// user's in-app inbox. Unknown recipients are dropped, not errors: the
// side channel is best effort and never blocks a state transition.
type InboxNotifier struct {
	Users domain.UserRepo
}

func (n *InboxNotifier) Notify(ctx context.Context, email, message string) error {
	u, err := n.Users.FindByEmail(ctx, email)
	if err != nil || u == nil {
		log.Debug().Str("email", email).Msg("notification dropped, unknown recipient")
		return nil
	}
	u.Notifications = append(u.Notifications, domain.Notification{
		ID:        uuid.New(),
		Message:   message,
		CreatedAt: time.Now(),
	})
	return n.Users.Save(ctx, u)
}

type UserUC struct {
	Users domain.UserRepo
}

// EnsureUser finds or creates a customer record for the given identity.
// Email matching is case-insensitive, UserRepo normalizes on save.
func (uc *UserUC) EnsureUser(ctx context.Context, email, name string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if u, err := uc.Users.FindByEmail(ctx, email); err == nil && u != nil {
		return u, nil
	}
	u := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now(),
	}
	if err := uc.Users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *UserUC) MarkNotificationRead(ctx context.Context, email string, notifID uuid.UUID) error {
	u, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	for i := range u.Notifications {
		if u.Notifications[i].ID == notifID {
			u.Notifications[i].Read = true
			return uc.Users.Save(ctx, u)
		}
	}
	return domain.ErrNotFound
}
