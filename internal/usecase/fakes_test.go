package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/avelar/printdesk/internal/domain"
)

// In-memory fakes over the repo interfaces. Lists come back newest first to
// match the postgres adapters.

type fakeProductRepo struct {
	mu     sync.Mutex
	items  []domain.Product
	nextID int64
	err    error
}

func (f *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p.ID = f.nextID
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	f.items = append(f.items, *p)
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id {
			p := it
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Product, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, it := range f.items {
		if it.ID == p.ID {
			p.CreatedAt = it.CreatedAt
			p.UpdatedAt = time.Now()
			f.items[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCustomerRepo struct {
	mu     sync.Mutex
	items  []domain.Customer
	nextID int64
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c.ID = f.nextID
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id int64) (*domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id {
			c := it
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Customer, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out, nil
}

func (f *fakeCustomerRepo) ListWithSales(ctx context.Context) ([]domain.Customer, error) {
	return f.List(ctx)
}

type fakeSaleRepo struct {
	mu        sync.Mutex
	items     []domain.Sale
	nextID    int64
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	err       error
}

func (f *fakeSaleRepo) Create(ctx context.Context, s *domain.Sale) error {
	if f.err != nil {
		return f.err
	}
	// mimic the store's referential integrity check
	if f.customers != nil {
		if _, err := f.customers.FindByID(ctx, s.CustomerID); err != nil {
			return domain.ErrConflict
		}
	}
	if f.products != nil {
		if _, err := f.products.FindByID(ctx, s.ProductID); err != nil {
			return domain.ErrConflict
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s.ID = f.nextID
	now := time.Now()
	s.CreatedAt, s.UpdatedAt = now, now
	f.items = append(f.items, *s)
	return nil
}

func (f *fakeSaleRepo) FindByID(ctx context.Context, id int64) (*domain.Sale, error) {
	f.mu.Lock()
	var found *domain.Sale
	for _, it := range f.items {
		if it.ID == id {
			s := it
			found = &s
			break
		}
	}
	f.mu.Unlock()
	if found == nil {
		return nil, domain.ErrNotFound
	}
	if f.customers != nil {
		if c, err := f.customers.FindByID(ctx, found.CustomerID); err == nil {
			found.Customer = c
		}
	}
	if f.products != nil {
		if p, err := f.products.FindByID(ctx, found.ProductID); err == nil {
			found.Product = p
		}
	}
	return found, nil
}

func (f *fakeSaleRepo) List(_ context.Context) ([]domain.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Sale, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out, nil
}

func (f *fakeSaleRepo) ListWithRelations(ctx context.Context) ([]domain.Sale, error) {
	list, _ := f.List(ctx)
	for i := range list {
		if f.customers != nil {
			if c, err := f.customers.FindByID(ctx, list[i].CustomerID); err == nil {
				list[i].Customer = c
			}
		}
		if f.products != nil {
			if p, err := f.products.FindByID(ctx, list[i].ProductID); err == nil {
				list[i].Product = p
			}
		}
	}
	return list, nil
}

type fakeExpenseRepo struct {
	mu     sync.Mutex
	items  []domain.Expense
	nextID int64
}

func (f *fakeExpenseRepo) Create(_ context.Context, e *domain.Expense) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e.ID = f.nextID
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	f.items = append(f.items, *e)
	return nil
}

func (f *fakeExpenseRepo) List(_ context.Context) ([]domain.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Expense, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out, nil
}
