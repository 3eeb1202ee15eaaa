package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"imprisio/config"
	"imprisio/internal/domain/service"
	"imprisio/internal/infra/auth"
	"imprisio/internal/infra/notification"
	"imprisio/internal/infra/persistence/model"
	"imprisio/internal/infra/persistence/postgres"
	"imprisio/internal/infra/qrcode"
	"imprisio/internal/infra/storage"
	"imprisio/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the usecases against an in-memory SQLite database and
// in-process fakes for the outward-facing services, so the business rules run
// against real SQL without any external infrastructure.
type testEnv struct {
	db            *gorm.DB
	accounts      usecase.AccountUsecase
	profiles      usecase.ProfileUsecase
	addresses     usecase.AddressUsecase
	orders        usecase.OrderUsecase
	catalog       usecase.CatalogUsecase
	promotions    usecase.PromotionUsecase
	notifications usecase.NotificationUsecase
	center        service.NotificationCenter
	publisher     *capturePublisher
}

// capturePublisher records published order events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []*service.OrderEvent
}

func (p *capturePublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) published() []*service.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.OrderEvent(nil), p.events...)
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.PrinterModel{},
		&model.CredentialModel{},
		&model.RefreshTokenModel{},
		&model.AddressModel{},
		&model.OrderModel{},
		&model.ServiceModel{},
		&model.CategoryModel{},
		&model.PromotionModel{},
	))

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := postgres.NewUserRepository(db)
	printerRepo := postgres.NewPrinterRepository(db)
	credentialRepo := postgres.NewCredentialRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	addressRepo := postgres.NewAddressRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	promotionRepo := postgres.NewPromotionRepository(db)
	txManager := postgres.NewTransactionManager(db)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	fileStorage := storage.NewWithBucket(bucket, "https://cdn.test", discard)

	center := notification.NewCenter(discard)
	publisher := &capturePublisher{}

	return &testEnv{
		db: db,
		accounts: NewAccountService(AccountServiceParams{
			TxManager:        txManager,
			UserRepo:         userRepo,
			CredentialRepo:   credentialRepo,
			RefreshTokenRepo: refreshTokenRepo,
			Hasher:           auth.NewBcryptHasherWithCost(bcrypt.MinCost),
			TokenService:     tokenService,
			Logger:           discard,
		}),
		profiles: NewProfileService(ProfileServiceParams{
			UserRepo:    userRepo,
			PrinterRepo: printerRepo,
			FileStorage: fileStorage,
			Logger:      discard,
		}),
		addresses: NewAddressService(AddressServiceParams{
			TxManager:   txManager,
			AddressRepo: addressRepo,
			Logger:      discard,
		}),
		orders: NewOrderService(OrderServiceParams{
			OrderRepo:      orderRepo,
			PrinterRepo:    printerRepo,
			ServiceRepo:    serviceRepo,
			QRCodeService:  qrcode.NewQRCodeService(256, "M"),
			EventPublisher: publisher,
			Notifications:  center,
			Logger:         discard,
		}),
		catalog: NewCatalogService(CatalogServiceParams{
			PrinterRepo: printerRepo,
			ServiceRepo: serviceRepo,
			FileStorage: fileStorage,
			Logger:      discard,
		}),
		promotions: NewPromotionService(PromotionServiceParams{
			PromotionRepo: promotionRepo,
			ServiceRepo:   serviceRepo,
			Logger:        discard,
		}),
		notifications: NewNotificationService(NotificationServiceParams{
			Center: center,
			Logger: discard,
		}),
		center:    center,
		publisher: publisher,
	}
}

// registerClient creates a client account and returns the live session.
func (env *testEnv) registerClient(t *testing.T, email string) *usecase.AuthOutput {
	t.Helper()

	out, err := env.accounts.RegisterClient(context.Background(), &usecase.RegisterClientInput{
		Email:     email,
		Password:  "secret-password",
		FirstName: "Amina",
		LastName:  "Moukala",
		Phone:     "+242061234567",
	})
	require.NoError(t, err)

	return out
}

// registerPrinter creates a print shop account and returns the live session.
func (env *testEnv) registerPrinter(t *testing.T, email, businessName string) *usecase.AuthOutput {
	t.Helper()

	out, err := env.accounts.RegisterPrinter(context.Background(), &usecase.RegisterPrinterInput{
		Email:           email,
		Password:        "secret-password",
		FirstName:       "Pascal",
		LastName:        "Ngoma",
		Phone:           "+242069876543",
		BusinessName:    businessName,
		BusinessAddress: "12 avenue de la Paix, Brazzaville",
	})
	require.NoError(t, err)

	return out
}
