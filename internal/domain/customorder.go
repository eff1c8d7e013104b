package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomOrderStatus is the bespoke-request lifecycle. It is a distinct
// state machine from OrderStatus and never shares its transition table.
type CustomOrderStatus string

const (
	CustomStatusBaru      CustomOrderStatus = "Baru"
	CustomStatusDihubungi CustomOrderStatus = "Dihubungi"
	CustomStatusDiproses  CustomOrderStatus = "Diproses"
	CustomStatusSelesai   CustomOrderStatus = "Selesai"
	CustomStatusDibatalkan CustomOrderStatus = "Dibatalkan"
)

func (s CustomOrderStatus) Terminal() bool {
	return s == CustomStatusSelesai || s == CustomStatusDibatalkan
}

// SizeQuantity is one row of the per-size quantity breakdown.
type SizeQuantity struct {
	Size string `json:"size"`
	Qty  int    `json:"qty"`
}

type CustomOrderRequest struct {
	ID            uuid.UUID         `json:"id"`
	ContactName   string            `json:"contact_name"`
	ContactEmail  string            `json:"contact_email"`
	ContactPhone  string            `json:"contact_phone"`
	Product       string            `json:"product"`
	Material      string            `json:"material"`
	Color         string            `json:"color"`
	Sizes         []SizeQuantity    `json:"sizes"`
	DesignNotes   string            `json:"design_notes,omitempty"`
	Status        CustomOrderStatus `json:"status"`
	EstimatePrice int64             `json:"estimate_price,omitempty"`
	FinalPrice    int64             `json:"final_price,omitempty"`
	PaymentStatus PaymentStage      `json:"payment_status,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// TotalQuantity derives the request's total from its per-size breakdown.
func (c *CustomOrderRequest) TotalQuantity() int {
	total := 0
	for _, sq := range c.Sizes {
		total += sq.Qty
	}
	return total
}
