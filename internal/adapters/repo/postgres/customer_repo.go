package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/avelar/printdesk/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *CustomerRepo) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	var list []domain.Customer
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListWithSales eagerly attaches each customer's sales in one logical call so
// the read view never does a round trip per row.
func (r *CustomerRepo) ListWithSales(ctx context.Context) ([]domain.Customer, error) {
	var list []domain.Customer
	if err := r.db.WithContext(ctx).
		Preload("Sales", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
