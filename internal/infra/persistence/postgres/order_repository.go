package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository returns an OrderRepository bound to db.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create writes the header first so item rows can reference the generated id.
// Callers wanting atomicity with other writes run it inside TransactionManager.Execute.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	items := orderM.Items
	orderM.Items = nil

	db := repo.db.WithContext(ctx)
	if err := db.Omit("User", "Items").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("order owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	if len(items) > 0 {
		for i := range items {
			items[i].OrderID = orderM.ID
		}
		if err := db.Omit("Product").Create(&items).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrProductNotFound.WrapMessage("order item references a missing product")
			}
			if isCheckConstraintViolation(err) {
				return domainerrors.ErrInvalidOrderItem.WrapMessage("order item rejected by storage")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
		}
	}

	order.ID = orderM.ID
	order.Status = entity.OrderStatus(orderM.Status)
	order.Timestamp = orderM.Timestamp
	for i := range items {
		order.Items[i].ID = items[i].ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var rows []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("orders.timestamp DESC").
		Order("orders.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return toOrdersDomain(rows), nil
}

func (repo *orderRepository) FindByIDForUser(ctx context.Context, orderID, userID int64) (*entity.Order, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("orders.id = ? AND orders.user_id = ?", orderID, userID))
}

func (repo *orderRepository) FindByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Joins("User").Where("orders.id = ?", orderID))
}

func (repo *orderRepository) findOne(_ context.Context, query *gorm.DB) (*entity.Order, error) {
	var orderM model.OrderModel
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("Items.Product").
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var rows []model.OrderModel
	err := repo.db.WithContext(ctx).
		Joins("User").
		Order("orders.timestamp DESC").
		Order("orders.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list all orders")
	}

	return toOrdersDomain(rows), nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", string(status))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewInvalidStatusError(entity.OrderStatusNames())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrdersDomain(rows []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, toOrderDomain(&rows[i]))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	var items []entity.OrderItem
	if data.Items != nil {
		items = make([]entity.OrderItem, 0, len(data.Items))
		for i := range data.Items {
			item := &data.Items[i]
			items = append(items, entity.OrderItem{
				ID:        item.ID,
				OrderID:   item.OrderID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Product:   toProductDomain(item.Product),
			})
		}
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		Total:     data.Total,
		Shipping:  data.Shipping,
		Payment:   data.Payment,
		Status:    entity.OrderStatus(data.Status),
		Timestamp: data.Timestamp,
		Customer:  toUserDomain(data.User),
		Items:     items,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	status := string(data.Status)
	if status == "" {
		status = string(entity.OrderStatusPending)
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &model.OrderModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Total:    data.Total,
		Shipping: data.Shipping,
		Payment:  data.Payment,
		Status:   status,
		Items:    items,
	}
}
