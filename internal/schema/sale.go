package schema

import (
	"strings"

	"github.com/avelar/printdesk/internal/domain"
)

type SaleInput struct {
	CustomerID    any    `json:"customerId"`
	ProductID     any    `json:"productId"`
	Amount        any    `json:"amount"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=CASH CARD TRANSFER CREDIT"`
	Status        string `json:"status" validate:"required,oneof=COMPLETED PENDING CANCELLED"`
	Notes         string `json:"notes"`
}

func (in SaleInput) Validate() (*domain.Sale, FieldErrors) {
	fe := FieldErrors{}
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	in.Status = strings.TrimSpace(in.Status)
	if err := validate.Struct(in); err != nil {
		collect(fe, err)
	}
	s := &domain.Sale{
		PaymentMethod: domain.PaymentMethod(in.PaymentMethod),
		Status:        domain.SaleStatus(in.Status),
		Notes:         strings.TrimSpace(in.Notes),
	}
	if v, ok := positiveAmount(fe, "amount", in.Amount, true); ok {
		s.Amount = v
	}
	if id, ok := recordID(fe, "customerId", in.CustomerID, true); ok {
		s.CustomerID = id
	}
	if id, ok := recordID(fe, "productId", in.ProductID, true); ok {
		s.ProductID = id
	}
	if len(fe) > 0 {
		return nil, fe
	}
	return s, nil
}
