package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusPendingPayment       OrderStatus = "Pending Payment"
	StatusAwaitingDownPayment  OrderStatus = "Awaiting Down Payment"
	StatusAwaitingVerification OrderStatus = "Awaiting Verification"
	StatusProcessing           OrderStatus = "Processing"
	StatusAwaitingFinalPayment OrderStatus = "Awaiting Final Payment"
	StatusShipped              OrderStatus = "Shipped"
	StatusDelivered            OrderStatus = "Delivered"
	StatusCanceled             OrderStatus = "Canceled"
)

// Terminal reports whether no further transition may leave the status.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}

type OrderType string

const (
	OrderTypeRegular    OrderType = "regular"
	OrderTypePreOrder   OrderType = "preorder"
	OrderTypeBulkCustom OrderType = "bulk_custom"
	OrderTypeCustom     OrderType = "custom"
)

// SplitPayment reports whether the order runs the down-payment /
// final-payment sub-track.
func (t OrderType) SplitPayment() bool {
	return t == OrderTypeBulkCustom || t == OrderTypeCustom
}

type PaymentStage string

const (
	PaymentUnpaid   PaymentStage = "unpaid"
	PaymentPaid     PaymentStage = "paid"
	PaymentVerified PaymentStage = "verified"
)

// PaymentTerms is the split-payment sub-record for bulk/custom orders.
type PaymentTerms struct {
	Type               string       `json:"type"`
	DownPayment        int64        `json:"down_payment"`
	FinalPayment       int64        `json:"final_payment"`
	DownPaymentStatus  PaymentStage `json:"down_payment_status"`
	FinalPaymentStatus PaymentStage `json:"final_payment_status"`
}

type OrderItem struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unit_price"`
}

type ShippingAddress struct {
	Street     string `json:"street"`
	Village    string `json:"village"`
	District   string `json:"district"`
	Regency    string `json:"regency"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

type Order struct {
	ID             uuid.UUID       `json:"id"`
	Type           OrderType       `json:"type"`
	Status         OrderStatus     `json:"status"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	Items          []OrderItem     `json:"items"`
	Subtotal       int64           `json:"subtotal"`
	DiscountAmount int64           `json:"discount_amount"`
	ShippingCost   int64           `json:"shipping_cost"`
	Total          int64           `json:"total"`
	PromoCode      string          `json:"promo_code,omitempty"`
	Courier        string          `json:"courier"`
	TrackingNumber string          `json:"tracking_number,omitempty"`
	Address        ShippingAddress `json:"address"`
	PaymentTerms   *PaymentTerms   `json:"payment_terms,omitempty"`
	PaymentProofs  []string        `json:"payment_proofs,omitempty"`
	PaymentDate    *time.Time      `json:"payment_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
