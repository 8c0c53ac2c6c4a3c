// Package domain defines the retail record types shared by the store, the
// REST server, the API clients, and the UI feature modules.
package domain

import "time"

// Invoice statuses accepted by UpdateStatus.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// Product is one inventory item.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Supplier string  `json:"supplier"`
}

// Sale records one completed sale of a product.
type Sale struct {
	ID       string    `json:"id"`
	Product  string    `json:"product"`
	Customer string    `json:"customer"`
	Quantity int       `json:"quantity"`
	Total    float64   `json:"total"`
	Date     time.Time `json:"date"`
}

// Customer is one customer account.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// Supplier is one upstream vendor.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
}

// Invoice is a billing document with a status workflow
// (pending -> paid | cancelled).
type Invoice struct {
	ID       string    `json:"id"`
	Customer string    `json:"customer"`
	Amount   float64   `json:"amount"`
	Status   string    `json:"status"`
	Due      time.Time `json:"due"`
}

// Expense is one outgoing cost entry.
type Expense struct {
	ID       string    `json:"id"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Note     string    `json:"note"`
	Date     time.Time `json:"date"`
}

// Return records a returned sale item and its refund.
type Return struct {
	ID     string    `json:"id"`
	Sale   string    `json:"sale"`
	Reason string    `json:"reason"`
	Refund float64   `json:"refund"`
	Date   time.Time `json:"date"`
}

// Summary holds the report aggregates computed over the full dataset.
type Summary struct {
	Revenue      float64        `json:"revenue"`
	Expenses     float64        `json:"expenses"`
	Refunds      float64        `json:"refunds"`
	Profit       float64        `json:"profit"`
	SaleCount    int            `json:"saleCount"`
	ProductCount int            `json:"productCount"`
	LowStock     int            `json:"lowStock"`
	TopProducts  []ProductSales `json:"topProducts"`
}

// ProductSales pairs a product name with its sales volume for reports.
type ProductSales struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// ValidStatus reports whether s is an accepted invoice status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}
