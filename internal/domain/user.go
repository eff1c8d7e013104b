package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleSuperadmin Role = "superadmin"
)

type Notification struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// PurchaseRecord is one append-only purchase history entry.
type PurchaseRecord struct {
	OrderID uuid.UUID `json:"order_id"`
	Date    time.Time `json:"date"`
	Total   int64     `json:"total"`
}

type User struct {
	ID            uuid.UUID        `json:"id"`
	Email         string           `json:"email"`
	Name          string           `json:"name"`
	Phone         string           `json:"phone,omitempty"`
	Role          Role             `json:"role"`
	Address       ShippingAddress  `json:"address"`
	Notifications []Notification   `json:"notifications"`
	Purchases     []PurchaseRecord `json:"purchases"`
	CreatedAt     time.Time        `json:"created_at"`
}
