package httpserver

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// apiExportPrices streams the current price list as an XLSX workbook.
func (s *Server) apiExportPrices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	list, uerr := s.products.List(r.Context())
	if uerr != nil {
		writeUCError(w, uerr)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Prices"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build workbook", "")
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Category", "Service", "Size", "Unit Price", "Bulk Price", "Turnaround Time", "Notes", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, p := range list {
		values := []any{p.ID, p.Category, p.Service, p.Size, p.UnitPrice, nil, p.TurnaroundTime, p.Notes, p.CreatedAt.Format("2006-01-02")}
		if p.BulkPrice != nil {
			values[5] = *p.BulkPrice
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="prices.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("write xlsx")
	}
}
