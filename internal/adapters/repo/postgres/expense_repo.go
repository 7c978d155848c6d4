package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/avelar/printdesk/internal/domain"
)

type ExpenseRepo struct{ db *gorm.DB }

func NewExpenseRepo(db *gorm.DB) *ExpenseRepo { return &ExpenseRepo{db: db} }

func (r *ExpenseRepo) Create(ctx context.Context, e *domain.Expense) error {
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *ExpenseRepo) List(ctx context.Context) ([]domain.Expense, error) {
	var list []domain.Expense
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
