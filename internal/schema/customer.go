package schema

import (
	"strings"

	"github.com/avelar/printdesk/internal/domain"
)

type CustomerInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Address  string `json:"address"`
	Category string `json:"category" validate:"omitempty,oneof=REGULAR PREMIUM SUBSCRIBER WHOLESALE"`
}

func (in CustomerInput) Validate() (*domain.Customer, FieldErrors) {
	fe := FieldErrors{}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Category = strings.TrimSpace(in.Category)
	if err := validate.Struct(in); err != nil {
		collect(fe, err)
	}
	if len(fe) > 0 {
		return nil, fe
	}
	category := domain.CustomerCategory(in.Category)
	if category == "" {
		category = domain.CustomerRegular
	}
	return &domain.Customer{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    strings.TrimSpace(in.Phone),
		Company:  strings.TrimSpace(in.Company),
		Address:  strings.TrimSpace(in.Address),
		Category: category,
	}, nil
}
