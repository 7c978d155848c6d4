package app

import (
	"html/template"
	"net/http"

	"gorm.io/gorm"

	"github.com/avelar/printdesk/internal/adapters/httpserver"
	"github.com/avelar/printdesk/internal/adapters/notify"
	"github.com/avelar/printdesk/internal/adapters/repo/postgres"
	"github.com/avelar/printdesk/internal/domain"
	"github.com/avelar/printdesk/internal/usecase"
	"github.com/avelar/printdesk/internal/views"
)

type App struct {
	DB         *gorm.DB
	Tmpl       *template.Template
	ProductUC  *usecase.ProductUC
	CustomerUC *usecase.CustomerUC
	SaleUC     *usecase.SaleUC
	ExpenseUC  *usecase.ExpenseUC
	StatsUC    *usecase.StatsUC
}

func NewApp(db *gorm.DB) (*App, error) {
	productRepo := postgres.NewProductRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	saleRepo := postgres.NewSaleRepo(db)
	expenseRepo := postgres.NewExpenseRepo(db)

	app := &App{DB: db}
	app.ProductUC = &usecase.ProductUC{Products: productRepo}
	app.CustomerUC = &usecase.CustomerUC{Customers: customerRepo}
	app.SaleUC = &usecase.SaleUC{Sales: saleRepo}
	app.ExpenseUC = &usecase.ExpenseUC{Expenses: expenseRepo}
	app.StatsUC = &usecase.StatsUC{
		Products:  app.ProductUC,
		Customers: app.CustomerUC,
		Sales:     app.SaleUC,
		Expenses:  app.ExpenseUC,
	}

	if tg := notify.NewTelegramFromEnv(); tg != nil {
		app.SaleUC.Notifier = tg
	}

	funcMap := template.FuncMap{
		"deref": func(f *float64) float64 {
			if f == nil {
				return 0
			}
			return *f
		},
	}
	tmpl, err := template.New("layout").Funcs(funcMap).ParseFS(views.FS, "*.html")
	if err != nil {
		return nil, err
	}
	app.Tmpl = tmpl

	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Tmpl, a.ProductUC, a.CustomerUC, a.SaleUC, a.ExpenseUC, a.StatsUC)
}

func (a *App) Migrate() error {
	return a.DB.AutoMigrate(
		&domain.Product{}, &domain.Customer{}, &domain.Sale{}, &domain.Expense{},
	)
}
