package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenter_ImageURL(t *testing.T) {
	p := NewWithBase("/assets/images/", "default.png")

	tests := []struct {
		name  string
		image entity.Image
		want  string
	}{
		{"blob becomes base64", entity.Image{Blob: []byte("abc"), Path: "ignored.png"}, "YWJj"},
		{"http url passes through", entity.Image{Path: "https://cdn.example.com/a.png"}, "https://cdn.example.com/a.png"},
		{"bare name is rooted", entity.Image{Path: "mug.png"}, "/assets/images/mug.png"},
		{"nested path keeps basename", entity.Image{Path: "static/images/mug.png"}, "/assets/images/mug.png"},
		{"windows path keeps basename", entity.Image{Path: `C:\images\mug.png`}, "/assets/images/mug.png"},
		{"empty uses default", entity.Image{}, "/assets/images/default.png"},
		{"whitespace uses default", entity.Image{Path: "  "}, "/assets/images/default.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ImageURL(tt.image))
		})
	}
}

func TestNew_UsesConfiguredBase(t *testing.T) {
	p := New(&config.Config{Assets: &config.AssetsConfig{BaseURL: "https://shop.example.com/img", DefaultImage: "none.jpg"}})
	assert.Equal(t, "https://shop.example.com/img/x.png", p.ImageURL(entity.Image{Path: "x.png"}))
	assert.Equal(t, "https://shop.example.com/img/none.jpg", p.ImageURL(entity.Image{}))

	p = New(&config.Config{})
	assert.Equal(t, "/assets/images/default.png", p.ImageURL(entity.Image{}))
}

func TestPresenter_Product(t *testing.T) {
	p := NewWithBase("/assets/images", "default.png")
	category := int64(4)

	view := p.Product(&entity.Product{
		ID:            9,
		Title:         "Mug",
		Price:         decimal.RequireFromString("12.50"),
		CategoryID:    &category,
		Image:         entity.Image{Path: "mug.png"},
		Rating:        decimal.RequireFromString("4.5"),
		OriginalPrice: decimal.RequireFromString("15"),
	})

	assert.Equal(t, 12.5, view.Price)
	assert.Equal(t, 4.5, view.Rating)
	assert.Equal(t, 15.0, view.OriginalPrice)
	assert.Equal(t, entity.DefaultDescription, view.Description)
	assert.Equal(t, "/assets/images/mug.png", view.Image)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"productId": 9,
		"title": "Mug",
		"price": 12.5,
		"categoryId": 4,
		"image": "/assets/images/mug.png",
		"description": "No description available.",
		"rating": 4.5,
		"discount_percentage": 0,
		"original_price": 15
	}`, string(data))
}

func TestPresenter_ProductsEmptyEncodesAsArray(t *testing.T) {
	data, err := json.Marshal(NewWithBase("/a", "d.png").Products(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestPresenter_Cart(t *testing.T) {
	p := NewWithBase("/assets/images", "default.png")
	added := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	views := p.Cart([]*entity.CartItem{{
		ID:        1,
		UserID:    2,
		ProductID: 3,
		Quantity:  5,
		AddedAt:   added,
		Product: &entity.Product{
			Title: "Mug",
			Price: decimal.RequireFromString("2.25"),
			Image: entity.Image{Blob: []byte{0x01, 0x02}},
		},
	}})

	require.Len(t, views, 1)
	assert.Equal(t, 5, views[0].Quantity)
	assert.Equal(t, 2.25, views[0].Price)
	assert.Equal(t, "AQI=", views[0].Image)
	assert.Equal(t, added, views[0].AddedAt)
}

func TestPresenter_Order(t *testing.T) {
	p := NewWithBase("/assets/images", "default.png")
	order := &entity.Order{
		ID:       7,
		UserID:   2,
		Total:    decimal.RequireFromString("99.99"),
		Shipping: `{"city":"Paris"}`,
		Payment:  `{"method":"card"}`,
		Status:   entity.OrderStatusShipped,
		Customer: &entity.User{Name: "Ada", Email: "ada@example.com"},
		Items: []entity.OrderItem{{
			ID:        11,
			OrderID:   7,
			ProductID: 3,
			Quantity:  1,
			Price:     decimal.RequireFromString("99.99"),
			Product:   &entity.Product{Title: "Lamp", Image: entity.Image{Path: "lamp.jpg"}},
		}},
	}

	staffView := p.Order(order, true)
	assert.Equal(t, "Ada", staffView.Customer)
	assert.Equal(t, "ada@example.com", staffView.CustomerEmail)
	assert.Equal(t, 99.99, staffView.Total)
	require.Len(t, staffView.Items, 1)
	assert.Equal(t, "Lamp", staffView.Items[0].Title)
	assert.Equal(t, "/assets/images/lamp.jpg", staffView.Items[0].Image)

	listView := p.Orders([]*entity.Order{order})[0]
	assert.Equal(t, "Ada", listView.Customer)
	assert.Empty(t, listView.CustomerEmail)

	data, err := json.Marshal(p.Order(&entity.Order{ID: 1, Status: entity.OrderStatusPending}, false))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "customer")
	assert.NotContains(t, string(data), "items")
}

func TestPresenter_StaffHidesPassword(t *testing.T) {
	p := NewWithBase("/a", "d.png")
	data, err := json.Marshal(p.Staff(&entity.Staff{ID: 1, Name: "Root", Email: "r@example.com", PasswordHash: "secret", Role: entity.RoleAdmin}))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), `"role":"admin"`)
}

func TestPresenter_StaffStats(t *testing.T) {
	view := NewWithBase("/a", "d.png").StaffStats(&entity.StaffStats{Total: 5, Admins: 2, NonAdmin: 3, Recent: 1})
	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_staff":5,"admin_count":2,"staff_count":3,"recent_staff":1}`, string(data))
}
