package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/avelar/printdesk/internal/domain"
)

type SaleRepo struct{ db *gorm.DB }

func NewSaleRepo(db *gorm.DB) *SaleRepo { return &SaleRepo{db: db} }

func (r *SaleRepo) Create(ctx context.Context, s *domain.Sale) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *SaleRepo) FindByID(ctx context.Context, id int64) (*domain.Sale, error) {
	var s domain.Sale
	if err := r.db.WithContext(ctx).Preload("Customer").Preload("Product").
		First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepo) List(ctx context.Context) ([]domain.Sale, error) {
	var list []domain.Sale
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListWithRelations attaches the referenced customer and product per sale.
func (r *SaleRepo) ListWithRelations(ctx context.Context) ([]domain.Sale, error) {
	var list []domain.Sale
	if err := r.db.WithContext(ctx).Preload("Customer").Preload("Product").
		Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
