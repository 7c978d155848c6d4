package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/avelar/printdesk/internal/domain"
	"github.com/avelar/printdesk/internal/schema"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

// List returns every customer with their sales attached. Sales is always a
// slice, never null, so the JSON stays uniform for table rendering.
func (uc *CustomerUC) List(ctx context.Context) ([]domain.Customer, *Error) {
	list, err := uc.Customers.ListWithSales(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	for i := range list {
		if list[i].Sales == nil {
			list[i].Sales = []domain.Sale{}
		}
	}
	return list, nil
}

func (uc *CustomerUC) Create(ctx context.Context, in schema.CustomerInput) (*domain.Customer, *Error) {
	c, ferrs := in.Validate()
	if ferrs != nil {
		log.Warn().Str("entity", "customer").Str("fields", ferrs.Error()).Msg("validation failed")
		return nil, validationErr()
	}
	if err := uc.Customers.Create(ctx, c); err != nil {
		log.Error().Err(err).Msg("create customer")
		return nil, storeErr(err)
	}
	c.Sales = []domain.Sale{}
	return c, nil
}
