package domain

import "errors"

// Sentinel errors shared across services and handlers.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateName    = errors.New("product name already exists")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

type Product struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Price     int    `db:"price" json:"price"` // smallest currency unit
	BaseStock int    `db:"base_stock" json:"base_stock"`
	Active    bool   `db:"active" json:"is_active"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at,omitempty"`
}

type Order struct {
	ID        string `db:"id" json:"id"`
	Phone4    string `db:"phone4" json:"phone4"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// OrderItem captures unit price at order time; later catalog price
// changes never alter historical totals.
type OrderItem struct {
	OrderID   string `db:"order_id" json:"order_id"`
	ProductID string `db:"product_id" json:"product_id"`
	Quantity  int    `db:"quantity" json:"quantity"`
	UnitPrice int    `db:"unit_price" json:"unit_price"`
}

// OrderLine is one joined history row for a customer lookup.
type OrderLine struct {
	OrderID     string `db:"order_id" json:"order_id"`
	Phone4      string `db:"phone4" json:"phone4"`
	CreatedAt   string `db:"created_at" json:"created_at"`
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int    `db:"quantity" json:"quantity"`
	UnitPrice   int    `db:"unit_price" json:"unit_price"`
}

// StockSummary is derived on every read, never stored. Remaining may go
// negative; that surfaces as "sold out", it is not blocked.
type StockSummary struct {
	ProductID  string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Price      int    `db:"price" json:"price"`
	BaseStock  int    `db:"base_stock" json:"base_stock"`
	OrderedQty int    `db:"ordered_qty" json:"ordered_qty"`
	Remaining  int    `json:"remaining"`
	Status     string `json:"status"` // on sale | sold out
	Active     bool   `db:"active" json:"is_active"`
}

// ProductTotals aggregates lifetime order volume and revenue per product.
type ProductTotals struct {
	ProductID   string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	TotalQty    int    `db:"total_qty" json:"total_qty"`
	TotalAmount int    `db:"total_amount" json:"total_amount"`
}

// Admin API payloads.

type ProductCreate struct {
	Name      string `json:"name" validate:"required,max=80"`
	Price     int    `json:"price" validate:"gte=0"`
	BaseStock int    `json:"base_stock" validate:"gte=0"`
}

// ProductUpdate applies only the fields that are present.
type ProductUpdate struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=80"`
	Price     *int    `json:"price,omitempty" validate:"omitempty,gte=0"`
	BaseStock *int    `json:"base_stock,omitempty" validate:"omitempty,gte=0"`
	Active    *bool   `json:"is_active,omitempty"`
}
