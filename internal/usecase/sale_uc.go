package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/avelar/printdesk/internal/domain"
	"github.com/avelar/printdesk/internal/schema"
)

// SaleNotifier is an optional side channel pinged after a sale is recorded.
// Delivery failures are the notifier's problem, never the request's.
type SaleNotifier interface {
	SaleCreated(s *domain.Sale)
}

type SaleUC struct {
	Sales    domain.SaleRepo
	Notifier SaleNotifier
}

func (uc *SaleUC) List(ctx context.Context) ([]domain.Sale, *Error) {
	list, err := uc.Sales.ListWithRelations(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return list, nil
}

func (uc *SaleUC) Create(ctx context.Context, in schema.SaleInput) (*domain.Sale, *Error) {
	s, ferrs := in.Validate()
	if ferrs != nil {
		log.Warn().Str("entity", "sale").Str("fields", ferrs.Error()).Msg("validation failed")
		return nil, validationErr()
	}
	if err := uc.Sales.Create(ctx, s); err != nil {
		log.Error().Err(err).Msg("create sale")
		return nil, storeErr(err)
	}
	created, err := uc.Sales.FindByID(ctx, s.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	if uc.Notifier != nil {
		go uc.Notifier.SaleCreated(created)
	}
	return created, nil
}
