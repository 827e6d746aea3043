package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a placed checkout. Total and item prices are taken from the client as submitted.
type Order struct {
	ID        int64
	UserID    int64
	Total     decimal.Decimal
	Shipping  string // JSON text
	Payment   string // JSON text
	Status    OrderStatus
	Timestamp time.Time

	// Customer is populated for staff views.
	Customer *User
	Items    []OrderItem
}

// OrderItem snapshots a product line at checkout time.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     decimal.Decimal

	// Product is populated on reads for display.
	Product *Product
}
