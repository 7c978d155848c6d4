package domain

import "time"

type CustomerCategory string

const (
	CustomerRegular    CustomerCategory = "REGULAR"
	CustomerPremium    CustomerCategory = "PREMIUM"
	CustomerSubscriber CustomerCategory = "SUBSCRIBER"
	CustomerWholesale  CustomerCategory = "WHOLESALE"
)

type Customer struct {
	ID        int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string           `gorm:"size:140;not null" json:"name"`
	Email     string           `gorm:"size:140;uniqueIndex" json:"email"`
	Phone     string           `gorm:"size:60" json:"phone"`
	Company   string           `gorm:"size:140" json:"company"`
	Address   string           `gorm:"size:255" json:"address"`
	Category  CustomerCategory `gorm:"type:varchar(20);index" json:"category"`
	Sales     []Sale           `json:"sales"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
