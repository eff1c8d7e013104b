package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

// OrderUC owns the retail order lifecycle: creation at checkout and the
// admin-driven status transitions with their notification side effects.
type OrderUC struct {
	Orders   domain.OrderRepo
	Products domain.ProductRepo
	Users    domain.UserRepo
	Notify   domain.Notifier
}

// courierCosts is the flat shipping table per supported courier.
var courierCosts = map[string]int64{
	"JNE":       18000,
	"TIKI":      20000,
	"SiCepat":   15000,
	"AnterAja":  14000,
	"GoSend":    25000,
	"GrabSpeed": 27000,
}

func ShippingCostFor(courier string) int64 {
	if v, ok := courierCosts[courier]; ok {
		return v
	}
	if courier == "" {
		return 0
	}
	return 20000
}

func Couriers() []string {
	return []string{"JNE", "TIKI", "SiCepat", "AnterAja", "GoSend", "GrabSpeed"}
}

type CheckoutInput struct {
	Type      domain.OrderType
	Name      string
	Email     string
	Lines     []CartLine
	PromoCode string
	Courier   string
	Address   domain.ShippingAddress
	Today     string
}

// Checkout turns the cart into an order. Line prices are resolved against
// the active discounts at this moment; the promo adjustment applies on
// top at cart level. Split-payment orders open on the down-payment track
// with a 50/50 split.
func (uc *OrderUC) Checkout(ctx context.Context, in CheckoutInput, discounts []domain.DiscountRule, promo *domain.PromoCode) (*domain.Order, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("keranjang kosong")
	}
	items := make([]domain.OrderItem, 0, len(in.Lines))
	var subtotal int64
	for _, line := range in.Lines {
		unit := line.UnitPrice
		name := line.Name
		if !line.IsBundle() {
			p, err := uc.Products.FindByID(ctx, line.ProductID)
			if err != nil {
				return nil, err
			}
			if p.Stock < line.Qty {
				return nil, domain.ErrInsufficientStock
			}
			quote := ResolvePrice(p, discounts, in.Today)
			unit = quote.FinalPrice
			name = p.Name
		}
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Name:      name,
			Size:      line.Size,
			Color:     line.Color,
			Qty:       line.Qty,
			UnitPrice: unit,
		})
		subtotal += unit * int64(line.Qty)
	}
	discountAmount := PromoAdjustment(promo, subtotal)
	shipping := ShippingCostFor(in.Courier)
	total := subtotal - discountAmount + shipping

	o := &domain.Order{
		ID:             uuid.New(),
		Type:           in.Type,
		Status:         domain.StatusPendingPayment,
		CustomerName:   strings.TrimSpace(in.Name),
		CustomerEmail:  strings.ToLower(strings.TrimSpace(in.Email)),
		Items:          items,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		ShippingCost:   shipping,
		Total:          total,
		Courier:        in.Courier,
		Address:        in.Address,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if promo != nil {
		o.PromoCode = strings.ToUpper(promo.Code)
	}
	if in.Type.SplitPayment() {
		half := total / 2
		o.Status = domain.StatusAwaitingDownPayment
		o.PaymentTerms = &domain.PaymentTerms{
			Type:               "50/50",
			DownPayment:        half,
			FinalPayment:       total - half,
			DownPaymentStatus:  domain.PaymentUnpaid,
			FinalPaymentStatus: domain.PaymentUnpaid,
		}
	}
	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	for _, line := range in.Lines {
		if line.IsBundle() {
			continue
		}
		if err := uc.Products.AdjustStock(ctx, line.ProductID, -line.Qty); err != nil {
			log.Warn().Err(err).Int("product_id", line.ProductID).Msg("stock adjust after checkout")
		}
	}
	return o, nil
}

// canTransition is the order state machine's transition table.
func canTransition(o *domain.Order, to domain.OrderStatus) error {
	from := o.Status
	if from.Terminal() {
		return domain.ErrOrderTerminal
	}
	if to == domain.StatusCanceled {
		return nil
	}
	switch to {
	case domain.StatusAwaitingVerification:
		if from == domain.StatusPendingPayment || from == domain.StatusAwaitingDownPayment || from == domain.StatusAwaitingFinalPayment {
			return nil
		}
	case domain.StatusProcessing:
		if from == domain.StatusAwaitingVerification {
			return nil
		}
	case domain.StatusAwaitingFinalPayment:
		if from == domain.StatusProcessing && o.PaymentTerms != nil && o.PaymentTerms.FinalPaymentStatus != domain.PaymentVerified {
			return nil
		}
	case domain.StatusShipped:
		if from == domain.StatusProcessing {
			return nil
		}
	case domain.StatusDelivered:
		if from == domain.StatusShipped {
			return nil
		}
	}
	return domain.ErrInvalidTransition
}

type TransitionInput struct {
	TrackingNumber string
}

// Transition applies one admin-initiated status change. Side effects fire
// through the Notifier and are never retracted; payment-stage promotion
// and the paymentDate stamp are guarded so repeating a transition never
// duplicates them.
func (uc *OrderUC) Transition(ctx context.Context, orderID uuid.UUID, to domain.OrderStatus, in TransitionInput) (*domain.Order, error) {
	o, err := uc.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := canTransition(o, to); err != nil {
		return nil, err
	}
	if to == domain.StatusShipped && strings.TrimSpace(in.TrackingNumber) == "" && o.TrackingNumber == "" {
		return nil, domain.ErrTrackingRequired
	}

	o.Status = to
	o.UpdatedAt = time.Now()

	switch to {
	case domain.StatusProcessing:
		if o.PaymentDate == nil {
			now := time.Now()
			o.PaymentDate = &now
		}
		if t := o.PaymentTerms; t != nil {
			if t.DownPaymentStatus == domain.PaymentPaid {
				t.DownPaymentStatus = domain.PaymentVerified
			} else if t.FinalPaymentStatus == domain.PaymentPaid {
				t.FinalPaymentStatus = domain.PaymentVerified
			}
		}
		uc.notifyCustomer(ctx, o, "Pembayaran kamu sudah diverifikasi. Pesanan sedang diproses.")
	case domain.StatusAwaitingFinalPayment:
		amount := o.Total
		if o.PaymentTerms != nil {
			amount = o.PaymentTerms.FinalPayment
		}
		uc.notifyCustomer(ctx, o, "Pesanan kamu siap untuk pelunasan. Sisa pembayaran: "+domain.FormatIDR(amount))
	case domain.StatusShipped:
		if strings.TrimSpace(in.TrackingNumber) != "" {
			o.TrackingNumber = strings.TrimSpace(in.TrackingNumber)
		}
		uc.notifyCustomer(ctx, o, "Pesanan kamu sudah dikirim via "+o.Courier+". Nomor resi: "+o.TrackingNumber)
	case domain.StatusDelivered:
		uc.notifyCustomer(ctx, o, "Pesanan kamu sudah sampai. Terima kasih sudah berbelanja di KZumi!")
		uc.recordPurchase(ctx, o)
	case domain.StatusCanceled:
		uc.notifyCustomer(ctx, o, "Pesanan kamu dibatalkan. Hubungi customer service kami untuk informasi lebih lanjut.")
	}

	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// SubmitPaymentProof records an uploaded proof reference and moves the
// order into verification. The installment awaiting payment is marked
// paid; promotion to verified happens when an admin moves the order to
// Processing.
func (uc *OrderUC) SubmitPaymentProof(ctx context.Context, orderID uuid.UUID, proofRef string) (*domain.Order, error) {
	o, err := uc.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	switch o.Status {
	case domain.StatusPendingPayment:
	case domain.StatusAwaitingDownPayment:
		if o.PaymentTerms != nil {
			o.PaymentTerms.DownPaymentStatus = domain.PaymentPaid
		}
	case domain.StatusAwaitingFinalPayment:
		if o.PaymentTerms != nil {
			o.PaymentTerms.FinalPaymentStatus = domain.PaymentPaid
		}
	default:
		return nil, domain.ErrInvalidTransition
	}
	if proofRef != "" {
		o.PaymentProofs = append(o.PaymentProofs, proofRef)
	}
	o.Status = domain.StatusAwaitingVerification
	o.UpdatedAt = time.Now()
	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *OrderUC) notifyCustomer(ctx context.Context, o *domain.Order, msg string) {
	if uc.Notify == nil {
		return
	}
	if err := uc.Notify.Notify(ctx, o.CustomerEmail, msg); err != nil {
		log.Warn().Err(err).Str("order_id", o.ID.String()).Msg("customer notify")
	}
}

func (uc *OrderUC) recordPurchase(ctx context.Context, o *domain.Order) {
	if uc.Users == nil {
		return
	}
	u, err := uc.Users.FindByEmail(ctx, o.CustomerEmail)
	if err != nil || u == nil {
		return
	}
	u.Purchases = append(u.Purchases, domain.PurchaseRecord{OrderID: o.ID, Date: time.Now(), Total: o.Total})
	if err := uc.Users.Save(ctx, u); err != nil {
		log.Warn().Err(err).Str("email", o.CustomerEmail).Msg("purchase history append")
	}
}
