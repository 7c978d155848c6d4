package schema

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/avelar/printdesk/internal/domain"
)

type ExpenseInput struct {
	Amount          any    `json:"amount"`
	Category        string `json:"category" validate:"required,oneof=OPERATIONAL INVENTORY UTILITIES MARKETING SALARY RENT OTHER"`
	Type            string `json:"type" validate:"required,oneof=RECURRING ONE_TIME"`
	Description     string `json:"description" validate:"required"`
	IsRecurring     any    `json:"isRecurring"`
	RecurringPeriod string `json:"recurringPeriod" validate:"omitempty,oneof=DAILY WEEKLY MONTHLY QUARTERLY ANNUALLY"`
}

func (in ExpenseInput) Validate() (*domain.Expense, FieldErrors) {
	fe := FieldErrors{}
	in.Category = strings.TrimSpace(in.Category)
	in.Type = strings.TrimSpace(in.Type)
	in.Description = strings.TrimSpace(in.Description)
	in.RecurringPeriod = strings.TrimSpace(in.RecurringPeriod)
	if err := validate.Struct(in); err != nil {
		collect(fe, err)
	}
	e := &domain.Expense{
		Category:    domain.ExpenseCategory(in.Category),
		Type:        domain.ExpenseType(in.Type),
		Description: in.Description,
	}
	if v, ok := positiveAmount(fe, "amount", in.Amount, true); ok {
		e.Amount = v
	}
	if !empty(in.IsRecurring) {
		recurring, err := cast.ToBoolE(in.IsRecurring)
		if err != nil {
			fe["isRecurring"] = "must be a boolean"
		} else {
			e.IsRecurring = recurring
		}
	}
	// recurringPeriod only makes sense on a recurring expense
	if e.IsRecurring && in.RecurringPeriod == "" {
		fe["recurringPeriod"] = "is required when isRecurring is true"
	}
	if e.IsRecurring {
		e.RecurringPeriod = domain.RecurringPeriod(in.RecurringPeriod)
	}
	if len(fe) > 0 {
		return nil, fe
	}
	return e, nil
}
