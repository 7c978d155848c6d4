package domain

import "time"

// Product is one row of the price list. UnitPrice is always positive once it
// passes the input schema; BulkPrice is nil when no bulk rate was quoted.
type Product struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Category       string    `gorm:"size:100;index" json:"category"`
	Service        string    `gorm:"size:180" json:"service"`
	Size           string    `gorm:"size:60" json:"size"`
	UnitPrice      float64   `gorm:"type:decimal(12,2)" json:"unitPrice"`
	BulkPrice      *float64  `gorm:"type:decimal(12,2)" json:"bulkPrice"`
	TurnaroundTime string    `gorm:"size:100" json:"turnaroundTime"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
