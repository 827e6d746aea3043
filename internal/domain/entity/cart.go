package entity

import "time"

// CartItem is one product line in a user's cart. (UserID, ProductID) is unique.
type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
	AddedAt   time.Time

	// Product is populated on reads for display.
	Product *Product
}
