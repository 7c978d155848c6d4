package domain

import "time"

type ExpenseCategory string

const (
	ExpenseOperational ExpenseCategory = "OPERATIONAL"
	ExpenseInventory   ExpenseCategory = "INVENTORY"
	ExpenseUtilities   ExpenseCategory = "UTILITIES"
	ExpenseMarketing   ExpenseCategory = "MARKETING"
	ExpenseSalary      ExpenseCategory = "SALARY"
	ExpenseRent        ExpenseCategory = "RENT"
	ExpenseOther       ExpenseCategory = "OTHER"
)

type ExpenseType string

const (
	ExpenseRecurring ExpenseType = "RECURRING"
	ExpenseOneTime   ExpenseType = "ONE_TIME"
)

type RecurringPeriod string

const (
	PeriodDaily     RecurringPeriod = "DAILY"
	PeriodWeekly    RecurringPeriod = "WEEKLY"
	PeriodMonthly   RecurringPeriod = "MONTHLY"
	PeriodQuarterly RecurringPeriod = "QUARTERLY"
	PeriodAnnually  RecurringPeriod = "ANNUALLY"
)

// Expense tracks money going out. RecurringPeriod is set only when
// IsRecurring is true; the input schema enforces that pairing.
type Expense struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount          float64         `gorm:"type:decimal(12,2)" json:"amount"`
	Category        ExpenseCategory `gorm:"type:varchar(20);index" json:"category"`
	Type            ExpenseType     `gorm:"type:varchar(20)" json:"type"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	IsRecurring     bool            `json:"isRecurring"`
	RecurringPeriod RecurringPeriod `gorm:"type:varchar(20)" json:"recurringPeriod"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
