package view

import "github.com/avelar/printdesk/internal/domain"

// Fixed searchable field sets per entity, mirroring what each table shows.

func ProductFields(p domain.Product) []string {
	return []string{p.Category, p.Service, p.Size, p.TurnaroundTime, p.Notes}
}

func CustomerFields(c domain.Customer) []string {
	return []string{c.Name, c.Email, c.Company, string(c.Category)}
}

func SaleFields(s domain.Sale) []string {
	fields := []string{string(s.PaymentMethod), string(s.Status), s.Notes}
	if s.Customer != nil {
		fields = append(fields, s.Customer.Name)
	}
	if s.Product != nil {
		fields = append(fields, s.Product.Service)
	}
	return fields
}

func ExpenseFields(e domain.Expense) []string {
	return []string{string(e.Category), string(e.Type), e.Description, string(e.RecurringPeriod)}
}
