package domain

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSummarize_SeedAggregates(t *testing.T) {
	s := Seed().Summarize()

	if !near(s.Revenue, 129.10) {
		t.Errorf("Revenue = %v, want 129.10", s.Revenue)
	}
	if !near(s.Expenses, 970.40) {
		t.Errorf("Expenses = %v, want 970.40", s.Expenses)
	}
	if !near(s.Refunds, 9.90) {
		t.Errorf("Refunds = %v, want 9.90", s.Refunds)
	}
	if !near(s.Profit, s.Revenue-s.Expenses-s.Refunds) {
		t.Errorf("Profit = %v, want revenue-expenses-refunds", s.Profit)
	}
	if s.SaleCount != 4 || s.ProductCount != 5 {
		t.Errorf("counts = %d sales / %d products, want 4 / 5", s.SaleCount, s.ProductCount)
	}
	if s.LowStock != 1 {
		t.Errorf("LowStock = %d, want 1 (only the press is under 5)", s.LowStock)
	}
}

func TestSummarize_TopProductsOrder(t *testing.T) {
	s := Seed().Summarize()
	if len(s.TopProducts) != 3 {
		t.Fatalf("TopProducts len = %d, want 3", len(s.TopProducts))
	}
	want := []string{"Espresso Beans 1kg", "Ceramic Mug", "French Press"}
	for i, name := range want {
		if s.TopProducts[i].Product != name {
			t.Errorf("TopProducts[%d] = %q, want %q", i, s.TopProducts[i].Product, name)
		}
	}
	// Beans appear in two sales and aggregate into one entry.
	if s.TopProducts[0].Quantity != 3 || !near(s.TopProducts[0].Total, 55.50) {
		t.Errorf("beans aggregate = %+v, want qty 3 total 55.50", s.TopProducts[0])
	}
}

func TestSummarize_TopProductsCapAndTiebreak(t *testing.T) {
	d := &Dataset{}
	for _, name := range []string{"f", "b", "a", "d", "c", "e", "g"} {
		d.Sales = append(d.Sales, Sale{Product: name, Quantity: 1, Total: 10})
	}
	s := d.Summarize()
	if len(s.TopProducts) != 5 {
		t.Fatalf("TopProducts len = %d, want cap of 5", len(s.TopProducts))
	}
	want := []string{"a", "b", "c", "d", "e"}
	for i, name := range want {
		if s.TopProducts[i].Product != name {
			t.Errorf("TopProducts[%d] = %q, want %q (name tiebreak)", i, s.TopProducts[i].Product, name)
		}
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := (&Dataset{}).Summarize()
	if s.Revenue != 0 || s.Profit != 0 || s.SaleCount != 0 {
		t.Errorf("empty dataset produced non-zero summary: %+v", s)
	}
	if len(s.TopProducts) != 0 {
		t.Errorf("empty dataset produced top products: %v", s.TopProducts)
	}
}

func TestValidStatus(t *testing.T) {
	for _, ok := range []string{StatusPending, StatusPaid, StatusCancelled} {
		if !ValidStatus(ok) {
			t.Errorf("ValidStatus(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "void", "PAID"} {
		if ValidStatus(bad) {
			t.Errorf("ValidStatus(%q) = true", bad)
		}
	}
}
