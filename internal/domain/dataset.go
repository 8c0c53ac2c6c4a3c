package domain

import (
	"sort"
	"time"
)

// Dataset is the full in-memory state: every resource collection in one
// value. It is what the store serializes as a single blob and what the mock
// client serves from.
type Dataset struct {
	Products  []Product  `json:"products"`
	Sales     []Sale     `json:"sales"`
	Customers []Customer `json:"customers"`
	Suppliers []Supplier `json:"suppliers"`
	Invoices  []Invoice  `json:"invoices"`
	Expenses  []Expense  `json:"expenses"`
	Returns   []Return   `json:"returns"`
}

// Summarize computes the report aggregates over d.
func (d *Dataset) Summarize() Summary {
	s := Summary{
		SaleCount:    len(d.Sales),
		ProductCount: len(d.Products),
	}
	byProduct := make(map[string]*ProductSales)
	for _, sale := range d.Sales {
		s.Revenue += sale.Total
		ps, ok := byProduct[sale.Product]
		if !ok {
			ps = &ProductSales{Product: sale.Product}
			byProduct[sale.Product] = ps
		}
		ps.Quantity += sale.Quantity
		ps.Total += sale.Total
	}
	for _, e := range d.Expenses {
		s.Expenses += e.Amount
	}
	for _, r := range d.Returns {
		s.Refunds += r.Refund
	}
	for _, p := range d.Products {
		if p.Stock < 5 {
			s.LowStock++
		}
	}
	s.Profit = s.Revenue - s.Expenses - s.Refunds

	// Top products sorted by total, capped at five.
	for _, ps := range byProduct {
		s.TopProducts = append(s.TopProducts, *ps)
	}
	sortProductSales(s.TopProducts)
	if len(s.TopProducts) > 5 {
		s.TopProducts = s.TopProducts[:5]
	}
	return s
}

// sortProductSales orders by descending total, name as tiebreak so the
// result is deterministic.
func sortProductSales(ps []ProductSales) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Total != ps[j].Total {
			return ps[i].Total > ps[j].Total
		}
		return ps[i].Product < ps[j].Product
	})
}

// Seed returns the deterministic sample dataset used when no saved blob
// exists yet.
func Seed() *Dataset {
	day := func(n int) time.Time {
		return time.Date(2025, time.March, n, 0, 0, 0, 0, time.UTC)
	}
	return &Dataset{
		Products: []Product{
			{ID: "prod-001", Name: "Espresso Beans 1kg", SKU: "EB-1000", Category: "Coffee", Price: 18.50, Stock: 42, Supplier: "Highland Roasters"},
			{ID: "prod-002", Name: "Ceramic Mug", SKU: "CM-0210", Category: "Kitchen", Price: 9.90, Stock: 120, Supplier: "Stoneware Co"},
			{ID: "prod-003", Name: "French Press", SKU: "FP-0330", Category: "Kitchen", Price: 34.00, Stock: 3, Supplier: "Stoneware Co"},
			{ID: "prod-004", Name: "Filter Papers", SKU: "FL-0440", Category: "Coffee", Price: 4.25, Stock: 300, Supplier: "Highland Roasters"},
			{ID: "prod-005", Name: "Cold Brew Bottle", SKU: "CB-0550", Category: "Kitchen", Price: 22.75, Stock: 18, Supplier: "Glassline"},
		},
		Sales: []Sale{
			{ID: "sale-001", Product: "Espresso Beans 1kg", Customer: "Ana Torres", Quantity: 2, Total: 37.00, Date: day(1)},
			{ID: "sale-002", Product: "Ceramic Mug", Customer: "Ben Okafor", Quantity: 4, Total: 39.60, Date: day(2)},
			{ID: "sale-003", Product: "French Press", Customer: "Ana Torres", Quantity: 1, Total: 34.00, Date: day(3)},
			{ID: "sale-004", Product: "Espresso Beans 1kg", Customer: "Cleo Mendes", Quantity: 1, Total: 18.50, Date: day(5)},
		},
		Customers: []Customer{
			{ID: "cust-001", Name: "Ana Torres", Email: "ana@example.com", Phone: "555-0101", City: "Lisbon"},
			{ID: "cust-002", Name: "Ben Okafor", Email: "ben@example.com", Phone: "555-0102", City: "Lagos"},
			{ID: "cust-003", Name: "Cleo Mendes", Email: "cleo@example.com", Phone: "555-0103", City: "Porto"},
		},
		Suppliers: []Supplier{
			{ID: "supp-001", Name: "Highland Roasters", Contact: "Marta Silva", Phone: "555-0201", City: "Braga"},
			{ID: "supp-002", Name: "Stoneware Co", Contact: "Ivo Klein", Phone: "555-0202", City: "Hamburg"},
			{ID: "supp-003", Name: "Glassline", Contact: "Sara Haddad", Phone: "555-0203", City: "Tunis"},
		},
		Invoices: []Invoice{
			{ID: "inv-001", Customer: "Ana Torres", Amount: 71.00, Status: StatusPaid, Due: day(10)},
			{ID: "inv-002", Customer: "Ben Okafor", Amount: 39.60, Status: StatusPending, Due: day(20)},
		},
		Expenses: []Expense{
			{ID: "exp-001", Category: "Rent", Amount: 850.00, Note: "March rent", Date: day(1)},
			{ID: "exp-002", Category: "Utilities", Amount: 120.40, Note: "Electricity", Date: day(4)},
		},
		Returns: []Return{
			{ID: "ret-001", Sale: "sale-002", Reason: "Cracked mug", Refund: 9.90, Date: day(6)},
		},
	}
}
