package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	deliverycontext "imprisio/internal/delivery/context"
	"imprisio/internal/domain/entity"
	domainerrors "imprisio/internal/domain/errors"
	"imprisio/internal/domain/repository"
	"imprisio/internal/domain/service"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo      repository.OrderRepository
	printerRepo    repository.PrinterRepository
	serviceRepo    repository.ServiceRepository
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	notifications  service.NotificationCenter
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	PrinterRepo    repository.PrinterRepository
	ServiceRepo    repository.ServiceRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Notifications  service.NotificationCenter
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:      params.OrderRepo,
		printerRepo:    params.PrinterRepo,
		serviceRepo:    params.ServiceRepo,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		notifications:  params.Notifications,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates a pending order for the client.
func (srv *orderService) PlaceOrder(ctx context.Context, user *entity.User, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input.PrinterID == uuid.Nil || input.ServiceID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "printerId and serviceId are required")
	}
	if input.TotalAmount <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "totalAmount must be positive")
	}

	shop, err := srv.printerRepo.FindPrinterByID(ctx, input.PrinterID)
	if err != nil {
		if errors.Is(err, repository.ErrPrinterNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPrinterNotFound, "unknown print shop")
		}

		return nil, errors.Wrap(err, "failed to load print shop")
	}

	ordered, err := srv.serviceRepo.FindServiceByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "unknown service")
		}

		return nil, errors.Wrap(err, "failed to load service")
	}
	if ordered.PrinterID != shop.ID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "service does not belong to this print shop")
	}

	order := &entity.Order{
		OrderNumber:         generateOrderNumber(time.Now()),
		UserID:              user.ID,
		PrinterID:           shop.ID,
		ServiceID:           ordered.ID,
		Status:              entity.OrderStatusPending,
		PaymentStatus:       entity.PaymentStatusUnpaid,
		TotalAmount:         input.TotalAmount,
		DeliveryAddress:     input.DeliveryAddress,
		SpecialInstructions: input.SpecialInstructions,
		PrinterName:         shop.BusinessName,
		ServiceName:         ordered.Name,
	}

	if err := srv.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderNumber", order.OrderNumber),
		slog.Any("printerID", shop.ID),
	)

	srv.publishOrderEvent(ctx, service.OrderEventCreated, order)
	srv.notifications.Add(shop.UserID, entity.NotificationTypeOrder,
		"Nouvelle commande",
		fmt.Sprintf("Commande %s reçue pour %s", order.OrderNumber, order.ServiceName),
		map[string]any{"orderId": order.ID.String()},
	)

	return order, nil
}

// ListOrders returns the caller's orders, newest first, role-scoped.
func (srv *orderService) ListOrders(ctx context.Context, user *entity.User) ([]*entity.Order, error) {
	if user.IsPrinter() {
		orders, err := srv.orderRepo.FindOrdersByPrinter(ctx, user.PrinterProfile.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list shop orders")
		}

		return orders, nil
	}

	orders, err := srv.orderRepo.FindOrdersByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order if the caller placed it or fulfils it.
// Outsiders get not-found, never forbidden: the order's existence is itself
// private.
func (srv *orderService) GetOrder(ctx context.Context, user *entity.User, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.UserID == user.ID {
		return order, nil
	}
	if user.IsPrinter() && order.PrinterID == user.PrinterProfile.ID {
		return order, nil
	}

	return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not visible to caller")
}

// UpdateStatus sets the fulfilment stage of an order owned by the caller's shop.
func (srv *orderService) UpdateStatus(ctx context.Context, user *entity.User, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown order status")
	}
	if !user.IsPrinter() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only print shops update order status")
	}

	if err := srv.orderRepo.UpdateStatusByPrinter(ctx, orderID, user.PrinterProfile.ID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found for this shop")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order after status update")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("status", status.String()),
	)

	srv.publishOrderEvent(ctx, service.OrderEventStatusChanged, order)
	srv.notifications.Add(order.UserID, entity.NotificationTypeOrder,
		"Commande mise à jour",
		fmt.Sprintf("Votre commande %s est maintenant « %s »", order.OrderNumber, status),
		map[string]any{"orderId": order.ID.String(), "status": status.String()},
	)

	return order, nil
}

// PickupQRCode renders the pickup code PNG for an order the caller may see.
func (srv *orderService) PickupQRCode(ctx context.Context, user *entity.User, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, user, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GeneratePickupQR(order.ID, order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pickup code")
	}

	return png, nil
}

// publishOrderEvent is best-effort: a broker outage must never fail the order.
func (srv *orderService) publishOrderEvent(ctx context.Context, eventName string, order *entity.Order) {
	event := &service.OrderEvent{
		Event:       eventName,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID.String(),
		PrinterID:   order.PrinterID.String(),
		Status:      order.Status.String(),
		OccurredAt:  time.Now(),
	}
	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("event", eventName),
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err),
		)
	}
}

// generateOrderNumber builds the human-readable reference: "ORD-" followed by
// the last six digits of the unix-milli clock and three random letters.
func generateOrderNumber(now time.Time) string {
	letters := make([]byte, 3)
	for i := range letters {
		letters[i] = 'A' + byte(rand.IntN(26))
	}

	return fmt.Sprintf("ORD-%06d%s", now.UnixMilli()%1_000_000, letters)
}
