package entity

import "github.com/shopspring/decimal"

// DefaultDescription is shown for products stored without a description.
const DefaultDescription = "No description available."

// Image references a product picture either by path/URL or by inline bytes.
// Blob takes precedence when both are set.
type Image struct {
	Path string
	Blob []byte
}

// Product is a catalog entry.
type Product struct {
	ID                 int64
	Title              string
	Price              decimal.Decimal
	CategoryID         *int64
	Image              Image
	Description        *string
	Rating             decimal.Decimal
	DiscountPercentage decimal.Decimal
	OriginalPrice      decimal.Decimal
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID *int64
}
