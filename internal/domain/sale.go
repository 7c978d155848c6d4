package domain

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCredit   PaymentMethod = "CREDIT"
)

type SaleStatus string

const (
	SaleCompleted SaleStatus = "COMPLETED"
	SalePending   SaleStatus = "PENDING"
	SaleCancelled SaleStatus = "CANCELLED"
)

// Sale references exactly one Customer and one Product. The store enforces
// both foreign keys; deleting a referenced row is restricted, not cascaded.
type Sale struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount        float64       `gorm:"type:decimal(12,2)" json:"amount"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);index" json:"paymentMethod"`
	Status        SaleStatus    `gorm:"type:varchar(20);index" json:"status"`
	Notes         string        `gorm:"type:text" json:"notes"`
	CustomerID    int64         `gorm:"not null;index" json:"customerId"`
	ProductID     int64         `gorm:"not null;index" json:"productId"`
	Customer      *Customer     `gorm:"constraint:OnDelete:RESTRICT" json:"customer,omitempty"`
	Product       *Product      `gorm:"constraint:OnDelete:RESTRICT" json:"product,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
