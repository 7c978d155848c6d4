package schema

import (
	"testing"
)

func TestProductInputValid(t *testing.T) {
	in := ProductInput{
		Category:       "Apparel",
		Service:        "T-Shirt",
		Size:           "L",
		UnitPrice:      19.99,
		BulkPrice:      "15.99",
		TurnaroundTime: "3 days",
		Notes:          "n/a",
	}
	p, fe := in.Validate()
	if fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if p.UnitPrice != 19.99 {
		t.Fatalf("unitPrice = %v", p.UnitPrice)
	}
	if p.BulkPrice == nil || *p.BulkPrice != 15.99 {
		t.Fatalf("bulkPrice not coerced from string: %v", p.BulkPrice)
	}
	if p.Category != "Apparel" || p.Service != "T-Shirt" {
		t.Fatalf("unexpected normalized product: %+v", p)
	}
}

func TestProductInputStringCoercion(t *testing.T) {
	in := ProductInput{
		Category: "Apparel", Service: "Hoodie", Size: "M",
		UnitPrice: "42.50", TurnaroundTime: "5 days", Notes: "none",
	}
	p, fe := in.Validate()
	if fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if p.UnitPrice != 42.50 {
		t.Fatalf("unitPrice = %v", p.UnitPrice)
	}
	if p.BulkPrice != nil {
		t.Fatalf("empty bulkPrice should normalize to nil")
	}
}

func TestProductInputRejectsBadPrices(t *testing.T) {
	cases := []struct {
		name string
		raw  any
	}{
		{"zero", 0},
		{"negative", -5},
		{"non-numeric", "abc"},
		{"missing", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := ProductInput{
				Category: "c", Service: "s", Size: "L",
				UnitPrice: tc.raw, TurnaroundTime: "1 day", Notes: "n",
			}
			if _, fe := in.Validate(); fe == nil {
				t.Fatalf("expected field error for unitPrice=%v", tc.raw)
			} else if _, ok := fe["unitPrice"]; !ok {
				t.Fatalf("expected unitPrice in errors, got %v", fe)
			}
		})
	}
}

func TestProductInputEnumeratesEveryBadField(t *testing.T) {
	in := ProductInput{UnitPrice: "oops"}
	_, fe := in.Validate()
	if fe == nil {
		t.Fatal("expected field errors")
	}
	for _, field := range []string{"category", "service", "size", "unitPrice", "turnaroundTime", "notes"} {
		if _, ok := fe[field]; !ok {
			t.Fatalf("expected %s in errors, got %v", field, fe)
		}
	}
}

func TestProductRecordID(t *testing.T) {
	base := ProductInput{
		Category: "c", Service: "s", Size: "L",
		UnitPrice: 10, TurnaroundTime: "1 day", Notes: "n",
	}
	p, fe := ProductRecord{ProductInput: base, ID: "12"}.Validate()
	if fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if p.ID != 12 {
		t.Fatalf("id = %d", p.ID)
	}
	if _, fe := (ProductRecord{ProductInput: base, ID: "twelve"}).Validate(); fe == nil {
		t.Fatal("expected field error for bad id")
	}
	// no id is fine on the full shape
	if _, fe := (ProductRecord{ProductInput: base}).Validate(); fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
}

func TestCustomerInput(t *testing.T) {
	c, fe := CustomerInput{Name: "Ada", Email: "ADA@Example.com", Category: "PREMIUM"}.Validate()
	if fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if c.Email != "ada@example.com" {
		t.Fatalf("email not lowercased: %q", c.Email)
	}
	if string(c.Category) != "PREMIUM" {
		t.Fatalf("category = %s", c.Category)
	}

	// empty category defaults to REGULAR
	c, fe = CustomerInput{Name: "Bo", Email: "bo@example.com"}.Validate()
	if fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if string(c.Category) != "REGULAR" {
		t.Fatalf("category = %s", c.Category)
	}

	bad := []CustomerInput{
		{Name: "x", Email: "not-an-email"},
		{Name: "x", Email: "missing-domain@"},
		{Name: "", Email: "a@b.co"},
		{Name: "x", Email: "a@b.co", Category: "VIP"},
	}
	for _, in := range bad {
		if _, fe := in.Validate(); fe == nil {
			t.Fatalf("expected field errors for %+v", in)
		}
	}
}

func TestSaleInput(t *testing.T) {
	s, fe := SaleInput{
		CustomerID: "3", ProductID: 7, Amount: "150",
		PaymentMethod: "CASH", Status: "COMPLETED",
	}.Validate()
	if fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if s.CustomerID != 3 || s.ProductID != 7 || s.Amount != 150 {
		t.Fatalf("unexpected sale: %+v", s)
	}

	_, fe = SaleInput{PaymentMethod: "BARTER", Status: "DONE"}.Validate()
	if fe == nil {
		t.Fatal("expected field errors")
	}
	for _, field := range []string{"customerId", "productId", "amount", "paymentMethod", "status"} {
		if _, ok := fe[field]; !ok {
			t.Fatalf("expected %s in errors, got %v", field, fe)
		}
	}
}

func TestExpenseInputRecurringPairing(t *testing.T) {
	base := ExpenseInput{
		Amount: 99.5, Category: "RENT", Type: "RECURRING", Description: "office rent",
	}

	in := base
	in.IsRecurring = true
	if _, fe := in.Validate(); fe == nil {
		t.Fatal("recurring expense without a period must fail")
	}

	in.RecurringPeriod = "MONTHLY"
	e, fe := in.Validate()
	if fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if string(e.RecurringPeriod) != "MONTHLY" || !e.IsRecurring {
		t.Fatalf("unexpected expense: %+v", e)
	}

	// a period on a one-time expense is dropped, not an error
	oneTime := base
	oneTime.Type = "ONE_TIME"
	oneTime.RecurringPeriod = "WEEKLY"
	e, fe = oneTime.Validate()
	if fe != nil {
		t.Fatalf("unexpected field errors: %v", fe)
	}
	if e.IsRecurring || e.RecurringPeriod != "" {
		t.Fatalf("period should be cleared on non-recurring: %+v", e)
	}

	if _, fe := (ExpenseInput{Amount: 10, Category: "FUN", Type: "SOMETIMES"}).Validate(); fe == nil {
		t.Fatal("expected field errors for bad enums")
	}
}
