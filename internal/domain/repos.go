package domain

import "context"

// Repos take already-validated values and return persisted rows with
// server-assigned IDs and timestamps. List order is creation time descending
// so pages stay stable across re-fetches.

type ProductRepo interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
}

type CustomerRepo interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id int64) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	ListWithSales(ctx context.Context) ([]Customer, error)
}

type SaleRepo interface {
	Create(ctx context.Context, s *Sale) error
	FindByID(ctx context.Context, id int64) (*Sale, error)
	List(ctx context.Context) ([]Sale, error)
	ListWithRelations(ctx context.Context) ([]Sale, error)
}

type ExpenseRepo interface {
	Create(ctx context.Context, e *Expense) error
	List(ctx context.Context) ([]Expense, error)
}
