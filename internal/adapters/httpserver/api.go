package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/avelar/printdesk/internal/schema"
)

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, uerr := s.products.List(r.Context())
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var in schema.ProductInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
			return
		}
		p, uerr := s.products.Create(r.Context(), in)
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	}
}

func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/products/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid or missing id", "")
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, uerr := s.products.Get(r.Context(), id)
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodPut:
		var in schema.ProductRecord
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
			return
		}
		p, uerr := s.products.Update(r.Context(), id, in)
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		if uerr := s.products.Delete(r.Context(), id); uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted successfully"})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	}
}

// apiProductLegacy keeps the original flat routes: POST /api/product and
// DELETE /api/product?id=<id>.
func (s *Server) apiProductLegacy(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var in schema.ProductInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
			return
		}
		p, uerr := s.products.Create(r.Context(), in)
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	case http.MethodDelete:
		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, "invalid or missing id", "")
			return
		}
		if uerr := s.products.Delete(r.Context(), id); uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted successfully"})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	}
}

func (s *Server) apiCustomers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, uerr := s.customers.List(r.Context())
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var in schema.CustomerInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
			return
		}
		c, uerr := s.customers.Create(r.Context(), in)
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	}
}

func (s *Server) apiSales(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, uerr := s.sales.List(r.Context())
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var in schema.SaleInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
			return
		}
		sale, uerr := s.sales.Create(r.Context(), in)
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusCreated, sale)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	}
}

func (s *Server) apiExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, uerr := s.expenses.List(r.Context())
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var in schema.ExpenseInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body", err.Error())
			return
		}
		e, uerr := s.expenses.Create(r.Context(), in)
		if uerr != nil {
			writeUCError(w, uerr)
			return
		}
		writeJSON(w, http.StatusCreated, e)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	}
}

func (s *Server) apiStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	stats, uerr := s.stats.Dashboard(r.Context())
	if uerr != nil {
		writeUCError(w, uerr)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
