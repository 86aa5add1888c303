package models

import (
	"time"
)

// Role - What a logged-in user is allowed to see and do
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// User - The person operating the till (password never lives here)
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Product - The Inventory
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"` // never negative, clamped on decrement
	Category    string    `json:"category"`
	Barcode     string    `json:"barcode,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Category - Product grouping. Deleting one leaves product references dangling
// on purpose; historical data keeps its denormalized names anyway.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CartItem - One line in the cart. Name and price are snapshots taken at
// add-to-cart time so later catalog edits do not rewrite an open sale.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// PaymentMethod enum - petty-cash is a separate bucket with cash-identical rules
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentCard      PaymentMethod = "card"
	PaymentMobile    PaymentMethod = "mobile"
	PaymentPettyCash PaymentMethod = "petty-cash"
)

// PaymentMethods lists the four buckets in report order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentMobile, PaymentPettyCash}

// Valid reports whether m is one of the four known methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile, PaymentPettyCash:
		return true
	}
	return false
}

// Transaction - The finalized sale. Never mutated after checkout; the line
// items are the cart's snapshot, ownership moves here.
type Transaction struct {
	ID             string        `json:"id"`
	Items          []CartItem    `json:"items"`
	Total          float64       `json:"total"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	Timestamp      time.Time     `json:"timestamp"`
	CashierID      string        `json:"cashierId"`
	CashierName    string        `json:"cashierName"`
	AmountReceived *float64      `json:"amountReceived,omitempty"` // cash only
	Change         *float64      `json:"change,omitempty"`         // cash only
}

// StoreSettings - Boutique contact details shown on receipts
type StoreSettings struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ReceiptSettings - How printed receipts are laid out
type ReceiptSettings struct {
	ShowLogo       bool   `json:"showLogo"`
	ShowTaxDetails bool   `json:"showTaxDetails"`
	FooterText     string `json:"footerText"`
}

// Settings - The full settings blob persisted under one key
type Settings struct {
	Store   StoreSettings   `json:"store"`
	Receipt ReceiptSettings `json:"receipt"`
}
