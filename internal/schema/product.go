package schema

import (
	"strings"

	"github.com/avelar/printdesk/internal/domain"
)

// ProductInput is the create shape: no identity field.
type ProductInput struct {
	Category       string `json:"category" validate:"required"`
	Service        string `json:"service" validate:"required"`
	Size           string `json:"size" validate:"required"`
	UnitPrice      any    `json:"unitPrice"`
	BulkPrice      any    `json:"bulkPrice"`
	TurnaroundTime string `json:"turnaroundTime" validate:"required"`
	Notes          string `json:"notes" validate:"required"`
}

// ProductRecord is the full shape: same field rules plus an optional ID,
// used on update paths. It must never loosen the create constraints.
type ProductRecord struct {
	ProductInput
	ID any `json:"id"`
}

func (in ProductInput) Validate() (*domain.Product, FieldErrors) {
	fe := FieldErrors{}
	in.trim()
	if err := validate.Struct(in); err != nil {
		collect(fe, err)
	}
	p := &domain.Product{
		Category:       in.Category,
		Service:        in.Service,
		Size:           in.Size,
		TurnaroundTime: in.TurnaroundTime,
		Notes:          in.Notes,
	}
	if v, ok := positiveAmount(fe, "unitPrice", in.UnitPrice, true); ok {
		p.UnitPrice = v
	}
	if !empty(in.BulkPrice) {
		if v, ok := positiveAmount(fe, "bulkPrice", in.BulkPrice, false); ok {
			p.BulkPrice = &v
		}
	}
	if len(fe) > 0 {
		return nil, fe
	}
	return p, nil
}

func (in ProductRecord) Validate() (*domain.Product, FieldErrors) {
	p, fe := in.ProductInput.Validate()
	if fe == nil {
		fe = FieldErrors{}
	}
	if !empty(in.ID) {
		if id, ok := recordID(fe, "id", in.ID, false); ok && p != nil {
			p.ID = id
		}
	}
	if len(fe) > 0 {
		return nil, fe
	}
	return p, nil
}

func (in *ProductInput) trim() {
	in.Category = strings.TrimSpace(in.Category)
	in.Service = strings.TrimSpace(in.Service)
	in.Size = strings.TrimSpace(in.Size)
	in.TurnaroundTime = strings.TrimSpace(in.TurnaroundTime)
	in.Notes = strings.TrimSpace(in.Notes)
}
