package usecase

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/avelar/printdesk/internal/domain"
	"github.com/avelar/printdesk/internal/schema"
)

type ProductUC struct {
	Products domain.ProductRepo

	// version increments on every successful mutation; the pages layer uses
	// it to invalidate its cached price-list snapshot.
	version atomic.Int64
}

func (uc *ProductUC) List(ctx context.Context) ([]domain.Product, *Error) {
	list, err := uc.Products.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return list, nil
}

func (uc *ProductUC) Get(ctx context.Context, id int64) (*domain.Product, *Error) {
	p, err := uc.Products.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

func (uc *ProductUC) Create(ctx context.Context, in schema.ProductInput) (*domain.Product, *Error) {
	p, ferrs := in.Validate()
	if ferrs != nil {
		log.Warn().Str("entity", "product").Str("fields", ferrs.Error()).Msg("validation failed")
		return nil, validationErr()
	}
	if err := uc.Products.Create(ctx, p); err != nil {
		log.Error().Err(err).Msg("create product")
		return nil, storeErr(err)
	}
	uc.version.Add(1)
	return p, nil
}

// Update replaces the listed fields wholesale; the path id wins over any id
// carried in the body.
func (uc *ProductUC) Update(ctx context.Context, id int64, in schema.ProductRecord) (*domain.Product, *Error) {
	p, ferrs := in.Validate()
	if ferrs != nil {
		log.Warn().Str("entity", "product").Int64("id", id).Str("fields", ferrs.Error()).Msg("validation failed")
		return nil, validationErr()
	}
	p.ID = id
	if err := uc.Products.Update(ctx, p); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("update product")
		return nil, storeErr(err)
	}
	updated, err := uc.Products.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	uc.version.Add(1)
	return updated, nil
}

func (uc *ProductUC) Delete(ctx context.Context, id int64) *Error {
	if id <= 0 {
		return &Error{Kind: KindValidation, Message: "invalid or missing id"}
	}
	if err := uc.Products.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("delete product")
		return storeErr(err)
	}
	uc.version.Add(1)
	return nil
}

// Version reports the current price-list snapshot version.
func (uc *ProductUC) Version() int64 { return uc.version.Load() }
