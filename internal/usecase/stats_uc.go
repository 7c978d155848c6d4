package usecase

import "context"

// Read-view aggregates. These fold over the full fetched lists rather than
// pushing aggregation into SQL; the data volumes here are a local price list
// and a small customer base.

type DashboardStats struct {
	TotalSales     float64 `json:"totalSales"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalExpenses  float64 `json:"totalExpenses"`
	NetProfit      float64 `json:"netProfit"`
}

type PriceListStats struct {
	ProductCount     int     `json:"productCount"`
	CategoryCount    int     `json:"categoryCount"`
	AverageUnitPrice float64 `json:"averageUnitPrice"`
}

type StatsUC struct {
	Products  *ProductUC
	Customers *CustomerUC
	Sales     *SaleUC
	Expenses  *ExpenseUC
}

func (uc *StatsUC) Dashboard(ctx context.Context) (DashboardStats, *Error) {
	var out DashboardStats
	sales, err := uc.Sales.Sales.List(ctx)
	if err != nil {
		return out, storeErr(err)
	}
	customers, err := uc.Customers.Customers.List(ctx)
	if err != nil {
		return out, storeErr(err)
	}
	expenses, err := uc.Expenses.Expenses.List(ctx)
	if err != nil {
		return out, storeErr(err)
	}
	for _, s := range sales {
		out.TotalSales += s.Amount
	}
	for _, e := range expenses {
		out.TotalExpenses += e.Amount
	}
	out.TotalCustomers = len(customers)
	out.NetProfit = out.TotalSales - out.TotalExpenses
	return out, nil
}

func (uc *StatsUC) PriceList(ctx context.Context) (PriceListStats, *Error) {
	var out PriceListStats
	products, err := uc.Products.Products.List(ctx)
	if err != nil {
		return out, storeErr(err)
	}
	categories := map[string]struct{}{}
	var sum float64
	for _, p := range products {
		categories[p.Category] = struct{}{}
		sum += p.UnitPrice
	}
	out.ProductCount = len(products)
	out.CategoryCount = len(categories)
	if len(products) > 0 {
		out.AverageUnitPrice = sum / float64(len(products))
	}
	return out, nil
}
