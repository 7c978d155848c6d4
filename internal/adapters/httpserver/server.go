package httpserver

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/avelar/printdesk/internal/domain"
	"github.com/avelar/printdesk/internal/usecase"
	"github.com/avelar/printdesk/internal/view"
)

type Server struct {
	mux       *http.ServeMux
	tmpl      *template.Template
	products  *usecase.ProductUC
	customers *usecase.CustomerUC
	sales     *usecase.SaleUC
	expenses  *usecase.ExpenseUC
	stats     *usecase.StatsUC

	// cached price-list snapshot for the pages, invalidated whenever a
	// product mutation bumps the use-case version.
	mu           sync.Mutex
	priceList    []domain.Product
	priceListVer int64
	priceListSet bool
}

func New(t *template.Template, p *usecase.ProductUC, c *usecase.CustomerUC, s *usecase.SaleUC, e *usecase.ExpenseUC, st *usecase.StatsUC) http.Handler {
	srv := &Server{
		mux:       http.NewServeMux(),
		tmpl:      t,
		products:  p,
		customers: c,
		sales:     s,
		expenses:  e,
		stats:     st,
	}
	srv.routes()
	return Chain(srv.mux,
		Gzip,
		Recovery,
		Logging,
		RequestID,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/prices", s.handlePrices)
	s.mux.HandleFunc("/customers", s.handleCustomers)
	s.mux.HandleFunc("/sales", s.handleSales)
	s.mux.HandleFunc("/expenses", s.handleExpenses)

	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/products/", s.apiProductByID)
	s.mux.HandleFunc("/api/product", s.apiProductLegacy)
	s.mux.HandleFunc("/api/customers", s.apiCustomers)
	s.mux.HandleFunc("/api/sales", s.apiSales)
	s.mux.HandleFunc("/api/expenses", s.apiExpenses)
	s.mux.HandleFunc("/api/stats", s.apiStats)
	s.mux.HandleFunc("/api/export/prices.xlsx", s.apiExportPrices)
}

// priceListSnapshot serves the cached product listing until a mutation
// invalidates it.
func (s *Server) priceListSnapshot(ctx context.Context) ([]domain.Product, *usecase.Error) {
	ver := s.products.Version()
	s.mu.Lock()
	if s.priceListSet && s.priceListVer == ver {
		cached := s.priceList
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	list, uerr := s.products.List(ctx)
	if uerr != nil {
		return nil, uerr
	}
	s.mu.Lock()
	s.priceList = list
	s.priceListVer = ver
	s.priceListSet = true
	s.mu.Unlock()
	return list, nil
}

func tableState(r *http.Request) view.State {
	q := r.URL.Query()
	st := view.State{
		Query:    q.Get("q"),
		Page:     1,
		PageSize: view.DefaultPageSize,
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		st.Page = v
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil && v > 0 {
		st.PageSize = v
	}
	return st
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	stats, uerr := s.stats.Dashboard(r.Context())
	data := map[string]any{"Title": "Dashboard", "Stats": stats}
	if uerr != nil {
		data["Error"] = "failed to load statistics"
	}
	s.render(w, "home.html", data)
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Price List"}
	list, uerr := s.priceListSnapshot(r.Context())
	if uerr != nil {
		data["Error"] = "failed to load products"
		s.render(w, "prices.html", data)
		return
	}
	if stats, serr := s.stats.PriceList(r.Context()); serr == nil {
		data["Stats"] = stats
	}
	if cat := r.URL.Query().Get("category"); cat != "" {
		filtered := make([]domain.Product, 0, len(list))
		for _, p := range list {
			if strings.EqualFold(p.Category, cat) {
				filtered = append(filtered, p)
			}
		}
		list = filtered
	}
	data["Table"] = view.NewTable(list, tableState(r), view.ProductFields)
	s.render(w, "prices.html", data)
}

func (s *Server) handleCustomers(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Customers"}
	list, uerr := s.customers.List(r.Context())
	if uerr != nil {
		data["Error"] = "failed to load customers"
		s.render(w, "customers.html", data)
		return
	}
	data["Table"] = view.NewTable(list, tableState(r), view.CustomerFields)
	s.render(w, "customers.html", data)
}

func (s *Server) handleSales(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Sales"}
	list, uerr := s.sales.List(r.Context())
	if uerr != nil {
		data["Error"] = "failed to load sales"
		s.render(w, "sales.html", data)
		return
	}
	data["Table"] = view.NewTable(list, tableState(r), view.SaleFields)
	s.render(w, "sales.html", data)
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Title": "Expenses"}
	list, uerr := s.expenses.List(r.Context())
	if uerr != nil {
		data["Error"] = "failed to load expenses"
		s.render(w, "expenses.html", data)
		return
	}
	data["Table"] = view.NewTable(list, tableState(r), view.ExpenseFields)
	s.render(w, "expenses.html", data)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, code int, message, details string) {
	writeJSON(w, code, jsonError{Error: message, Details: details})
}

func writeUCError(w http.ResponseWriter, uerr *usecase.Error) {
	switch uerr.Kind {
	case usecase.KindValidation:
		writeError(w, http.StatusBadRequest, uerr.Message, "")
	case usecase.KindNotFound:
		writeError(w, http.StatusNotFound, uerr.Message, "")
	case usecase.KindConflict:
		writeError(w, http.StatusConflict, uerr.Message, "")
	default:
		writeError(w, http.StatusInternalServerError, uerr.Message, "")
	}
}
