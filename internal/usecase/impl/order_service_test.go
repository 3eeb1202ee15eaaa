package impl

import (
	"context"
	"regexp"
	"testing"

	"imprisio/internal/domain/entity"
	domainerrors "imprisio/internal/domain/errors"
	"imprisio/internal/domain/service"
	"imprisio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderFixture is a shop with one service and a client ready to order.
type orderFixture struct {
	client  *entity.User
	shop    *entity.User
	service *entity.PrinterService
}

func setupOrderFixture(t *testing.T, env *testEnv) *orderFixture {
	t.Helper()
	ctx := context.Background()

	shop := env.registerPrinter(t, "atelier@example.cg", "Atelier Congo Print").User
	client := env.registerClient(t, "amina@example.cg").User

	offering, err := env.catalog.AddService(ctx, shop, &usecase.ServiceInput{
		Name:     "Cartes de visite",
		PriceMin: 5000,
		PriceMax: 15000,
	})
	require.NoError(t, err)

	return &orderFixture{client: client, shop: shop, service: offering}
}

func placeOrder(t *testing.T, env *testEnv, fx *orderFixture) *entity.Order {
	t.Helper()

	order, err := env.orders.PlaceOrder(context.Background(), fx.client, &usecase.PlaceOrderInput{
		PrinterID:       fx.shop.PrinterProfile.ID,
		ServiceID:       fx.service.ID,
		TotalAmount:     10000,
		DeliveryAddress: "12 rue Mbochis, Brazzaville",
	})
	require.NoError(t, err)

	return order
}

func TestOrderService_PlaceOrder(t *testing.T) {
	env := setupEnv(t)
	fx := setupOrderFixture(t, env)

	order := placeOrder(t, env, fx)

	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{6}[A-Z]{3}$`), order.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, order.PaymentStatus)
	assert.Equal(t, "Atelier Congo Print", order.PrinterName)
	assert.Equal(t, "Cartes de visite", order.ServiceName)

	// The creation event went out and the shop owner got an in-app alert.
	events := env.publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, service.OrderEventCreated, events[0].Event)
	assert.Equal(t, order.ID.String(), events[0].OrderID)

	alerts := env.center.List(fx.shop.ID)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.NotificationTypeOrder, alerts[0].Type)
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	env := setupEnv(t)
	fx := setupOrderFixture(t, env)
	ctx := context.Background()

	_, err := env.orders.PlaceOrder(ctx, fx.client, &usecase.PlaceOrderInput{
		PrinterID:   fx.shop.PrinterProfile.ID,
		ServiceID:   fx.service.ID,
		TotalAmount: 0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = env.orders.PlaceOrder(ctx, fx.client, &usecase.PlaceOrderInput{
		PrinterID:   fx.shop.PrinterProfile.ID,
		ServiceID:   uuid.New(),
		TotalAmount: 10000,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}

func TestOrderService_PlaceOrder_ServiceFromAnotherShop(t *testing.T) {
	env := setupEnv(t)
	fx := setupOrderFixture(t, env)
	ctx := context.Background()

	other := env.registerPrinter(t, "autre@example.cg", "Imprimerie du Fleuve").User
	foreign, err := env.catalog.AddService(ctx, other, &usecase.ServiceInput{
		Name:     "Banderoles",
		PriceMin: 20000,
	})
	require.NoError(t, err)

	_, err = env.orders.PlaceOrder(ctx, fx.client, &usecase.PlaceOrderInput{
		PrinterID:   fx.shop.PrinterProfile.ID,
		ServiceID:   foreign.ID,
		TotalAmount: 10000,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_ListOrders_RoleScoped(t *testing.T) {
	env := setupEnv(t)
	fx := setupOrderFixture(t, env)
	ctx := context.Background()

	order := placeOrder(t, env, fx)

	clientOrders, err := env.orders.ListOrders(ctx, fx.client)
	require.NoError(t, err)
	require.Len(t, clientOrders, 1)
	assert.Equal(t, order.ID, clientOrders[0].ID)

	shopOrders, err := env.orders.ListOrders(ctx, fx.shop)
	require.NoError(t, err)
	require.Len(t, shopOrders, 1)

	// An unrelated client sees nothing.
	stranger := env.registerClient(t, "stranger@example.cg").User
	none, err := env.orders.ListOrders(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	env := setupEnv(t)
	fx := setupOrderFixture(t, env)
	ctx := context.Background()

	order := placeOrder(t, env, fx)

	_, err := env.orders.GetOrder(ctx, fx.client, order.ID)
	require.NoError(t, err)
	_, err = env.orders.GetOrder(ctx, fx.shop, order.ID)
	require.NoError(t, err)

	// A third party is told the order does not exist, not that it is private.
	stranger := env.registerClient(t, "stranger@example.cg").User
	_, err = env.orders.GetOrder(ctx, stranger, order.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_UpdateStatus(t *testing.T) {
	env := setupEnv(t)
	fx := setupOrderFixture(t, env)
	ctx := context.Background()

	order := placeOrder(t, env, fx)

	updated, err := env.orders.UpdateStatus(ctx, fx.shop, order.ID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)

	events := env.publisher.published()
	require.Len(t, events, 2)
	assert.Equal(t, service.OrderEventStatusChanged, events[1].Event)
	assert.Equal(t, entity.OrderStatusProcessing.String(), events[1].Status)

	// The client was alerted about the status change.
	alerts := env.center.List(fx.client.ID)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.NotificationTypeOrder, alerts[0].Type)
}

func TestOrderService_UpdateStatus_Guards(t *testing.T) {
	env := setupEnv(t)
	fx := setupOrderFixture(t, env)
	ctx := context.Background()

	order := placeOrder(t, env, fx)

	// Clients cannot drive fulfilment.
	_, err := env.orders.UpdateStatus(ctx, fx.client, order.ID, entity.OrderStatusShipped)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	// Unknown statuses are rejected before touching the database.
	_, err = env.orders.UpdateStatus(ctx, fx.shop, order.ID, entity.OrderStatus("teleported"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	// Another shop cannot move an order it does not fulfil.
	other := env.registerPrinter(t, "autre@example.cg", "Imprimerie du Fleuve").User
	_, err = env.orders.UpdateStatus(ctx, other, order.ID, entity.OrderStatusProcessing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))

	// Nothing moved.
	reloaded, err := env.orders.GetOrder(ctx, fx.client, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, reloaded.Status)
}

func TestOrderService_PickupQRCode(t *testing.T) {
	env := setupEnv(t)
	fx := setupOrderFixture(t, env)
	ctx := context.Background()

	order := placeOrder(t, env, fx)

	png, err := env.orders.PickupQRCode(ctx, fx.client, order.ID)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	stranger := env.registerClient(t, "stranger@example.cg").User
	_, err = env.orders.PickupQRCode(ctx, stranger, order.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
