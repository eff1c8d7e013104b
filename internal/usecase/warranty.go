package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

var warrantyTransitions = map[domain.WarrantyStatus][]domain.WarrantyStatus{
	domain.WarrantyDitinjau:  {domain.WarrantyDisetujui, domain.WarrantyDitolak},
	domain.WarrantyDisetujui: {domain.WarrantySelesai},
	domain.WarrantyDitolak:   {domain.WarrantySelesai},
}

type WarrantyUC struct {
	Claims domain.WarrantyRepo
	Orders domain.OrderRepo
	Notify domain.Notifier
}

type WarrantyInput struct {
	OrderID      uuid.UUID
	ProductName  string
	Name         string
	Email        string
	Description  string
	EvidenceRefs []string
}

func (uc *WarrantyUC) Submit(ctx context.Context, in WarrantyInput) (*domain.WarrantyClaim, error) {
	if _, err := uc.Orders.FindByID(ctx, in.OrderID); err != nil {
		return nil, err
	}
	claim := &domain.WarrantyClaim{
		ID:            uuid.New(),
		OrderID:       in.OrderID,
		ProductName:   in.ProductName,
		CustomerName:  strings.TrimSpace(in.Name),
		CustomerEmail: strings.ToLower(strings.TrimSpace(in.Email)),
		ClaimDate:     time.Now(),
		Description:   in.Description,
		EvidenceRefs:  in.EvidenceRefs,
		Status:        domain.WarrantyDitinjau,
		UpdatedAt:     time.Now(),
	}
	if err := uc.Claims.Save(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// Review applies an admin decision. Admin notes may only change together
// with a status change.
func (uc *WarrantyUC) Review(ctx context.Context, id uuid.UUID, to domain.WarrantyStatus, notes string) (*domain.WarrantyClaim, error) {
	claim, err := uc.Claims.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range warrantyTransitions[claim.Status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.ErrInvalidTransition
	}
	claim.Status = to
	if notes != "" {
		claim.AdminNotes = notes
	}
	claim.UpdatedAt = time.Now()
	if err := uc.Claims.Save(ctx, claim); err != nil {
		return nil, err
	}
	switch to {
	case domain.WarrantyDisetujui:
		uc.notify(ctx, claim, "Klaim garansi kamu disetujui. Kami akan menghubungimu untuk proses selanjutnya.")
	case domain.WarrantyDitolak:
		uc.notify(ctx, claim, "Klaim garansi kamu ditolak. "+notes)
	case domain.WarrantySelesai:
		uc.notify(ctx, claim, "Klaim garansi kamu sudah selesai diproses.")
	}
	return claim, nil
}

func (uc *WarrantyUC) notify(ctx context.Context, c *domain.WarrantyClaim, msg string) {
	if uc.Notify == nil {
		return
	}
	if err := uc.Notify.Notify(ctx, c.CustomerEmail, strings.TrimSpace(msg)); err != nil {
		log.Warn().Err(err).Str("claim_id", c.ID.String()).Msg("warranty notify")
	}
}
