package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	guard     service.IdempotencyGuard
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Guard     service.IdempotencyGuard
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		guard:     params.Guard,
		qrCode:    params.QRCode,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout writes the order, its items and the cart clear in one transaction.
// Item prices and the total are stored as submitted.
func (srv *orderService) Checkout(ctx context.Context, input usecase.CheckoutInput) (int64, error) {
	order, err := buildOrder(input)
	if err != nil {
		return 0, err
	}

	claimKey, err := srv.claim(ctx, input)
	if err != nil {
		return 0, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := repoFactory.CartRepo().Clear(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to clear cart after checkout")
		}

		return nil
	})
	if err != nil {
		srv.release(ctx, claimKey)
		srv.log(ctx).Error("Checkout failed", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("orderID", order.ID),
		slog.Int64("userID", order.UserID),
		slog.Int("itemCount", len(order.Items)),
	)

	srv.publish(ctx, &service.OrderEvent{
		Type:      service.OrderEventPlaced,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    string(order.Status),
		Total:     order.Total.InexactFloat64(),
		ItemCount: len(order.Items),
	})

	return order.ID, nil
}

func buildOrder(input usecase.CheckoutInput) (*entity.Order, error) {
	if input.UserID <= 0 || len(input.Items) == 0 || input.Total.IsZero() ||
		strings.TrimSpace(input.Shipping) == "" || strings.TrimSpace(input.Payment) == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}
	if input.Total.IsNegative() {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput)
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.ProductID <= 0 || item.Quantity < 1 || item.Price.IsNegative() {
			return nil, errors.WithStack(domainerrors.ErrInvalidOrderItem)
		}

		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &entity.Order{
		UserID:   input.UserID,
		Total:    input.Total,
		Shipping: input.Shipping,
		Payment:  input.Payment,
		Status:   entity.OrderStatusPending,
		Items:    items,
	}, nil
}

// claim returns the reserved key, or "" when no key was supplied or the guard is unreachable.
func (srv *orderService) claim(ctx context.Context, input usecase.CheckoutInput) (string, error) {
	key := strings.TrimSpace(input.IdempotencyKey)
	if key == "" {
		return "", nil
	}
	key = fmt.Sprintf("%d:%s", input.UserID, key)

	claimed, err := srv.guard.Claim(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Idempotency guard unavailable, proceeding without it", slog.String("key", key), slog.Any("error", err))

		return "", nil
	}
	if !claimed {
		srv.log(ctx).Warn("Duplicate checkout rejected", slog.String("key", key))

		return "", errors.WithStack(domainerrors.ErrDuplicateCheckout)
	}

	return key, nil
}

func (srv *orderService) release(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := srv.guard.Release(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to release idempotency key", slog.String("key", key), slog.Any("error", err))
	}
}

// publish never fails the caller; the order is already committed.
func (srv *orderService) publish(ctx context.Context, event *service.OrderEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", event.Type),
			slog.Int64("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}

func (srv *orderService) ListForUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

func (srv *orderService) Get(ctx context.Context, principal entity.Principal, orderID int64) (*entity.Order, error) {
	var (
		order *entity.Order
		err   error
	)
	if principal.IsStaff() {
		order, err = srv.orderRepo.FindByID(ctx, orderID)
	} else {
		order, err = srv.orderRepo.FindByIDForUser(ctx, orderID, principal.ID)
	}

	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

func (srv *orderService) ListAll(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if strings.TrimSpace(status) == "" {
		return errors.WithStack(domainerrors.ErrStatusRequired)
	}

	parsed, ok := entity.ParseOrderStatus(status)
	if !ok {
		return errors.WithStack(domainerrors.NewInvalidStatusError(entity.OrderStatusNames()))
	}

	err := srv.orderRepo.UpdateStatus(ctx, orderID, parsed)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.Int64("orderID", orderID), slog.String("status", string(parsed)))

	srv.publish(ctx, &service.OrderEvent{
		Type:    service.OrderEventStatusChanged,
		OrderID: orderID,
		Status:  string(parsed),
	})

	return nil
}

func (srv *orderService) ReceiptQRCode(ctx context.Context, principal entity.Principal, orderID int64) ([]byte, error) {
	order, err := srv.Get(ctx, principal, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateOrderReceiptQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order receipt QR code")
	}

	return png, nil
}
