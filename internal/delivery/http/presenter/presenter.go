// Package presenter maps domain entities to the JSON records the API returns.
package presenter

import (
	"encoding/base64"
	"path"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Presenter holds the public asset base used to build image URLs.
type Presenter struct {
	assetBase    string
	defaultImage string
}

// New reads assets.baseURL and assets.defaultImage.
func New(cfg *config.Config) *Presenter {
	base, defaultImage := "/assets/images", "default.png"
	if cfg != nil && cfg.Assets != nil {
		if cfg.Assets.BaseURL != "" {
			base = cfg.Assets.BaseURL
		}
		if cfg.Assets.DefaultImage != "" {
			defaultImage = cfg.Assets.DefaultImage
		}
	}

	return NewWithBase(base, defaultImage)
}

// NewWithBase builds a presenter from explicit values.
func NewWithBase(assetBase, defaultImage string) *Presenter {
	return &Presenter{
		assetBase:    strings.TrimRight(assetBase, "/"),
		defaultImage: defaultImage,
	}
}

// ImageURL applies the image rules: inline bytes become base64, absolute http(s)
// URLs pass through, anything else is re-rooted under the asset base by basename.
func (p *Presenter) ImageURL(img entity.Image) string {
	if len(img.Blob) > 0 {
		return base64.StdEncoding.EncodeToString(img.Blob)
	}

	value := strings.TrimSpace(img.Path)
	if strings.HasPrefix(value, "http") {
		return value
	}

	name := path.Base(strings.ReplaceAll(value, `\`, "/"))
	if value == "" || name == "." || name == "/" {
		name = p.defaultImage
	}

	return p.assetBase + "/" + name
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func description(desc *string) string {
	if desc == nil {
		return entity.DefaultDescription
	}

	return *desc
}

// --- Users ---

// UserView is the public part of a user account.
type UserView struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func (p *Presenter) User(u *entity.User) UserView {
	return UserView{UserID: u.ID, Name: u.Name, Email: u.Email}
}

// --- Staff ---

// StaffView never carries the password hash.
type StaffView struct {
	StaffID   int64     `json:"staffId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Presenter) Staff(s *entity.Staff) StaffView {
	return StaffView{
		StaffID:   s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Role:      string(s.Role),
		CreatedAt: s.CreatedAt,
	}
}

func (p *Presenter) StaffList(list []*entity.Staff) []StaffView {
	views := make([]StaffView, 0, len(list))
	for _, s := range list {
		views = append(views, p.Staff(s))
	}

	return views
}

// StaffStatsView is the staff dashboard summary.
type StaffStatsView struct {
	TotalStaff  int64 `json:"total_staff"`
	AdminCount  int64 `json:"admin_count"`
	StaffCount  int64 `json:"staff_count"`
	RecentStaff int64 `json:"recent_staff"`
}

func (p *Presenter) StaffStats(stats *entity.StaffStats) StaffStatsView {
	return StaffStatsView{
		TotalStaff:  stats.Total,
		AdminCount:  stats.Admins,
		StaffCount:  stats.NonAdmin,
		RecentStaff: stats.Recent,
	}
}

// --- Products ---

// ProductView is a catalog entry as returned by listing, detail and search.
type ProductView struct {
	ProductID          int64   `json:"productId"`
	Title              string  `json:"title"`
	Price              float64 `json:"price"`
	CategoryID         *int64  `json:"categoryId"`
	Image              string  `json:"image"`
	Description        string  `json:"description"`
	Rating             float64 `json:"rating"`
	DiscountPercentage float64 `json:"discount_percentage"`
	OriginalPrice      float64 `json:"original_price"`
}

func (p *Presenter) Product(prod *entity.Product) ProductView {
	return ProductView{
		ProductID:          prod.ID,
		Title:              prod.Title,
		Price:              money(prod.Price),
		CategoryID:         prod.CategoryID,
		Image:              p.ImageURL(prod.Image),
		Description:        description(prod.Description),
		Rating:             money(prod.Rating),
		DiscountPercentage: money(prod.DiscountPercentage),
		OriginalPrice:      money(prod.OriginalPrice),
	}
}

// Products always returns a non-nil slice so empty results encode as [].
func (p *Presenter) Products(products []*entity.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, prod := range products {
		views = append(views, p.Product(prod))
	}

	return views
}

// --- Cart ---

// CartItemView joins a cart line with the product fields the cart page shows.
type CartItemView struct {
	CartItemID int64     `json:"cartItemId"`
	UserID     int64     `json:"userId"`
	ProductID  int64     `json:"productId"`
	Quantity   int       `json:"quantity"`
	AddedAt    time.Time `json:"addedAt"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	Image      string    `json:"image"`
}

func (p *Presenter) CartItem(item *entity.CartItem) CartItemView {
	view := CartItemView{
		CartItemID: item.ID,
		UserID:     item.UserID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		AddedAt:    item.AddedAt,
	}
	if item.Product != nil {
		view.Title = item.Product.Title
		view.Price = money(item.Product.Price)
		view.Image = p.ImageURL(item.Product.Image)
	} else {
		view.Image = p.ImageURL(entity.Image{})
	}

	return view
}

func (p *Presenter) Cart(items []*entity.CartItem) []CartItemView {
	views := make([]CartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, p.CartItem(item))
	}

	return views
}

// --- Orders ---

// OrderItemView is one order line with display fields of its product.
type OrderItemView struct {
	OrderItemID int64   `json:"orderItemId"`
	OrderID     int64   `json:"orderId"`
	ProductID   int64   `json:"productId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Title       string  `json:"title"`
	Image       string  `json:"image"`
}

// OrderView carries customer fields only for staff reads and items only when loaded.
type OrderView struct {
	OrderID       int64           `json:"orderId"`
	UserID        int64           `json:"userId"`
	Customer      string          `json:"customer,omitempty"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	Total         float64         `json:"total"`
	Shipping      string          `json:"shipping"`
	Payment       string          `json:"payment"`
	Status        string          `json:"status"`
	Timestamp     time.Time       `json:"timestamp"`
	Items         []OrderItemView `json:"items,omitempty"`
}

func (p *Presenter) OrderItem(item *entity.OrderItem) OrderItemView {
	view := OrderItemView{
		OrderItemID: item.ID,
		OrderID:     item.OrderID,
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
		Price:       money(item.Price),
	}
	if item.Product != nil {
		view.Title = item.Product.Title
		view.Image = p.ImageURL(item.Product.Image)
	} else {
		view.Image = p.ImageURL(entity.Image{})
	}

	return view
}

// Order maps an order. withEmail adds customerEmail, which only the staff detail view exposes.
func (p *Presenter) Order(order *entity.Order, withEmail bool) OrderView {
	view := OrderView{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     money(order.Total),
		Shipping:  order.Shipping,
		Payment:   order.Payment,
		Status:    string(order.Status),
		Timestamp: order.Timestamp,
	}
	if order.Customer != nil {
		view.Customer = order.Customer.Name
		if withEmail {
			view.CustomerEmail = order.Customer.Email
		}
	}
	if order.Items != nil {
		view.Items = make([]OrderItemView, 0, len(order.Items))
		for i := range order.Items {
			view.Items = append(view.Items, p.OrderItem(&order.Items[i]))
		}
	}

	return view
}

func (p *Presenter) Orders(orders []*entity.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, p.Order(order, false))
	}

	return views
}
