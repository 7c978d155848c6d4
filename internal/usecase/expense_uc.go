package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/avelar/printdesk/internal/domain"
	"github.com/avelar/printdesk/internal/schema"
)

type ExpenseUC struct {
	Expenses domain.ExpenseRepo
}

func (uc *ExpenseUC) List(ctx context.Context) ([]domain.Expense, *Error) {
	list, err := uc.Expenses.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return list, nil
}

func (uc *ExpenseUC) Create(ctx context.Context, in schema.ExpenseInput) (*domain.Expense, *Error) {
	e, ferrs := in.Validate()
	if ferrs != nil {
		log.Warn().Str("entity", "expense").Str("fields", ferrs.Error()).Msg("validation failed")
		return nil, validationErr()
	}
	if err := uc.Expenses.Create(ctx, e); err != nil {
		log.Error().Err(err).Msg("create expense")
		return nil, storeErr(err)
	}
	return e, nil
}
