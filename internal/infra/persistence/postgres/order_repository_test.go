package postgres

import (
	"context"
	"testing"

	"imprisio/internal/domain/entity"
	"imprisio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderFixture struct {
	userID    uuid.UUID
	printerID uuid.UUID
	serviceID uuid.UUID
}

func seedOrderFixture(t *testing.T, db *gorm.DB) orderFixture {
	t.Helper()
	ctx := context.Background()

	owner := &entity.User{
		Email: "shop@example.com",
		Role:  entity.RoleClient,
		PrinterProfile: &entity.PrinterProfile{
			BusinessName: "Imprimerie du Centre",
		},
	}
	require.NoError(t, NewUserRepository(db).Create(ctx, owner))

	service := &entity.PrinterService{
		PrinterID: owner.PrinterProfile.ID,
		Name:      "Cartes de visite",
		PriceMin:  5000,
		PriceMax:  15000,
	}
	require.NoError(t, NewServiceRepository(db).CreateService(ctx, service))

	client := &entity.User{Email: "client@example.com", Role: entity.RoleClient}
	require.NoError(t, NewUserRepository(db).Create(ctx, client))

	return orderFixture{
		userID:    client.ID,
		printerID: owner.PrinterProfile.ID,
		serviceID: service.ID,
	}
}

func placeOrder(t *testing.T, db *gorm.DB, fx orderFixture, number string) *entity.Order {
	t.Helper()

	order := &entity.Order{
		OrderNumber:   number,
		UserID:        fx.userID,
		PrinterID:     fx.printerID,
		ServiceID:     fx.serviceID,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		TotalAmount:   12500,
		PrinterName:   "Imprimerie du Centre",
		ServiceName:   "Cartes de visite",
	}
	require.NoError(t, NewOrderRepository(db).CreateOrder(context.Background(), order))

	return order
}

func TestOrderRepository_FindOrderByID_JoinsNames(t *testing.T) {
	db := setupTestDB(t)
	fx := seedOrderFixture(t, db)
	order := placeOrder(t, db, fx, "ORD-123456ABC")

	found, err := NewOrderRepository(db).FindOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-123456ABC", found.OrderNumber)
	assert.Equal(t, "Imprimerie du Centre", found.PrinterName)
	assert.Equal(t, "Cartes de visite", found.ServiceName)
	assert.Equal(t, entity.OrderStatusPending, found.Status)
}

func TestOrderRepository_FindOrdersByUser(t *testing.T) {
	db := setupTestDB(t)
	fx := seedOrderFixture(t, db)
	placeOrder(t, db, fx, "ORD-000001AAA")
	placeOrder(t, db, fx, "ORD-000002BBB")

	orders, err := NewOrderRepository(db).FindOrdersByUser(context.Background(), fx.userID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	// Someone else's listing is empty, not an error.
	orders, err = NewOrderRepository(db).FindOrdersByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_UpdateStatusByPrinter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	fx := seedOrderFixture(t, db)
	order := placeOrder(t, db, fx, "ORD-777777XYZ")

	require.NoError(t, repo.UpdateStatusByPrinter(ctx, order.ID, fx.printerID, entity.OrderStatusProcessing))

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, found.Status)
}

func TestOrderRepository_UpdateStatusByPrinter_WrongOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	fx := seedOrderFixture(t, db)
	order := placeOrder(t, db, fx, "ORD-888888QQQ")

	err := repo.UpdateStatusByPrinter(ctx, order.ID, uuid.New(), entity.OrderStatusShipped)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	// Untouched.
	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, found.Status)
}
