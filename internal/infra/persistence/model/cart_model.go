package model

import "time"

// CartItemModel mirrors the 'cart_items' table. (user_id, product_id) is unique.
type CartItemModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_cart_items_user_product"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int       `gorm:"not null;default:1"`
	AddedAt   time.Time `gorm:"autoCreateTime"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
