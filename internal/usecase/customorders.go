package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

// customTransitions is the bespoke-request state machine. It is kept
// separate from the retail order table on purpose; the two lifecycles
// only share the customer notification channel.
var customTransitions = map[domain.CustomOrderStatus][]domain.CustomOrderStatus{
	domain.CustomStatusBaru:      {domain.CustomStatusDihubungi, domain.CustomStatusDibatalkan},
	domain.CustomStatusDihubungi: {domain.CustomStatusDiproses, domain.CustomStatusDibatalkan},
	domain.CustomStatusDiproses:  {domain.CustomStatusSelesai, domain.CustomStatusDibatalkan},
}

type CustomOrderUC struct {
	Requests domain.CustomOrderRepo
	Notify   domain.Notifier
}

func (uc *CustomOrderUC) Advance(ctx context.Context, id uuid.UUID, to domain.CustomOrderStatus) (*domain.CustomOrderRequest, error) {
	req, err := uc.Requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, domain.ErrOrderTerminal
	}
	allowed := false
	for _, next := range customTransitions[req.Status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.ErrInvalidTransition
	}
	req.Status = to
	req.UpdatedAt = time.Now()
	if err := uc.Requests.Save(ctx, req); err != nil {
		return nil, err
	}
	switch to {
	case domain.CustomStatusDihubungi:
		uc.notify(ctx, req, "Tim kami akan segera menghubungi kamu untuk membahas detail pesanan custom.")
	case domain.CustomStatusSelesai:
		uc.notify(ctx, req, "Pesanan custom kamu sudah selesai dikerjakan. Terima kasih!")
	case domain.CustomStatusDibatalkan:
		uc.notify(ctx, req, "Permintaan custom kamu dibatalkan. Hubungi customer service untuk informasi lebih lanjut.")
	}
	return req, nil
}

// Finalize stores the staff-entered final price, moves the request into
// production with payment pending, and notifies the amount due.
func (uc *CustomOrderUC) Finalize(ctx context.Context, id uuid.UUID, finalPrice int64) (*domain.CustomOrderRequest, error) {
	if finalPrice <= 0 {
		return nil, domain.ErrInvalidFinalPrice
	}
	req, err := uc.Requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, domain.ErrOrderTerminal
	}
	req.FinalPrice = finalPrice
	req.PaymentStatus = domain.PaymentUnpaid
	if req.Status == domain.CustomStatusBaru {
		req.Status = domain.CustomStatusDihubungi
	}
	req.UpdatedAt = time.Now()
	if err := uc.Requests.Save(ctx, req); err != nil {
		return nil, err
	}
	uc.notify(ctx, req, "Harga final pesanan custom kamu: "+domain.FormatIDR(finalPrice)+". Silakan lakukan pembayaran.")
	return req, nil
}

// RecordPayment marks the bespoke payment stage after proof review.
func (uc *CustomOrderUC) RecordPayment(ctx context.Context, id uuid.UUID, stage domain.PaymentStage) (*domain.CustomOrderRequest, error) {
	req, err := uc.Requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.PaymentStatus = stage
	req.UpdatedAt = time.Now()
	if err := uc.Requests.Save(ctx, req); err != nil {
		return nil, err
	}
	if stage == domain.PaymentVerified {
		uc.notify(ctx, req, "Pembayaran pesanan custom kamu sudah diverifikasi. Pengerjaan dimulai.")
	}
	return req, nil
}

func (uc *CustomOrderUC) notify(ctx context.Context, req *domain.CustomOrderRequest, msg string) {
	if uc.Notify == nil {
		return
	}
	if err := uc.Notify.Notify(ctx, req.ContactEmail, msg); err != nil {
		log.Warn().Err(err).Str("request_id", req.ID.String()).Msg("custom order notify")
	}
}
