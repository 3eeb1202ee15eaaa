package postgres

import (
	"context"
	"time"

	"imprisio/internal/domain/entity"
	domainerrors "imprisio/internal/domain/errors"
	"imprisio/internal/domain/repository"
	"imprisio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// orderRow carries an order joined with the display names of its printer and
// service. The names are resolved at read time so catalog renames show up.
type orderRow struct {
	model.OrderModel
	JoinedPrinterName string
	JoinedServiceName string
}

func (repo *orderRepository) joinedOrders(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("orders.*, printers.business_name AS joined_printer_name, services.name AS joined_service_name").
		Joins("LEFT JOIN printers ON printers.id = orders.printer_id").
		Joins("LEFT JOIN services ON services.id = orders.service_id")
}

// CreateOrder persists a new order.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if orderM.ID == uuid.Nil {
		orderM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid printer or service reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order with its printer and service names joined.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var row orderRow
	if err := repo.joinedOrders(ctx).
		Where("orders.id = ?", id).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&row), nil
}

// FindOrdersByUser retrieves a client's orders, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var rows []*orderRow
	if err := repo.joinedOrders(ctx).
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomains(rows), nil
}

// FindOrdersByPrinter retrieves a print shop's orders, newest first.
func (repo *orderRepository) FindOrdersByPrinter(ctx context.Context, printerID uuid.UUID) ([]*entity.Order, error) {
	var rows []*orderRow
	if err := repo.joinedOrders(ctx).
		Where("orders.printer_id = ?", printerID).
		Order("orders.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by printer")
	}

	return toOrderDomains(rows), nil
}

// UpdateStatusByPrinter sets the status of an order owned by the given print
// shop. Ownership lives in the WHERE clause: when the shop does not own the
// order the update matches zero rows and the caller sees not-found, exactly
// what the shop should learn about someone else's order.
func (repo *orderRepository) UpdateStatusByPrinter(ctx context.Context, orderID, printerID uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND printer_id = ?", orderID, printerID).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *orderRow) *entity.Order {
	if data == nil {
		return nil
	}

	// The stored snapshot names back the joined ones up when a shop or
	// service has been deleted since the order was placed.
	printerName := data.JoinedPrinterName
	if printerName == "" {
		printerName = data.PrinterName
	}
	serviceName := data.JoinedServiceName
	if serviceName == "" {
		serviceName = data.ServiceName
	}

	return &entity.Order{
		ID:                  data.ID,
		OrderNumber:         data.OrderNumber,
		UserID:              data.UserID,
		PrinterID:           data.PrinterID,
		ServiceID:           data.ServiceID,
		Status:              entity.OrderStatus(data.Status),
		PaymentStatus:       entity.PaymentStatus(data.PaymentStatus),
		TotalAmount:         data.TotalAmount,
		DeliveryAddress:     data.DeliveryAddress,
		SpecialInstructions: data.SpecialInstructions,
		PrinterName:         printerName,
		ServiceName:         serviceName,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func toOrderDomains(rows []*orderRow) []*entity.Order {
	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrderDomain(row))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                  data.ID,
		OrderNumber:         data.OrderNumber,
		UserID:              data.UserID,
		PrinterID:           data.PrinterID,
		ServiceID:           data.ServiceID,
		Status:              data.Status.String(),
		PaymentStatus:       string(data.PaymentStatus),
		TotalAmount:         data.TotalAmount,
		DeliveryAddress:     data.DeliveryAddress,
		SpecialInstructions: data.SpecialInstructions,
		PrinterName:         data.PrinterName,
		ServiceName:         data.ServiceName,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
