package model

import "github.com/shopspring/decimal"

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement"`
	Title              string          `gorm:"type:varchar(255);not null"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CategoryID         *int64
	Image              string          `gorm:"type:varchar(512);not null;default:''"`
	ImageBlob          []byte          `gorm:"type:bytea"`
	Description        *string         `gorm:"type:text"`
	Rating             decimal.Decimal `gorm:"type:numeric(3,2);not null;default:0"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	OriginalPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
