package domain

import (
	"time"

	"github.com/google/uuid"
)

type WarrantyStatus string

const (
	WarrantyDitinjau  WarrantyStatus = "Ditinjau"
	WarrantyDisetujui WarrantyStatus = "Disetujui"
	WarrantyDitolak   WarrantyStatus = "Ditolak"
	WarrantySelesai   WarrantyStatus = "Selesai"
)

type WarrantyClaim struct {
	ID            uuid.UUID      `json:"id"`
	OrderID       uuid.UUID      `json:"order_id"`
	ProductName   string         `json:"product_name"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	ClaimDate     time.Time      `json:"claim_date"`
	Description   string         `json:"description"`
	EvidenceRefs  []string       `json:"evidence_refs,omitempty"`
	Status        WarrantyStatus `json:"status"`
	AdminNotes    string         `json:"admin_notes,omitempty"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
