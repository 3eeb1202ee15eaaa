package main

import (
	"context"
	"log/slog"
	"os"

	"imprisio/config"
	"imprisio/internal/delivery"
	"imprisio/internal/delivery/http"
	"imprisio/internal/delivery/http/middleware"
	"imprisio/internal/delivery/http/router/handler"
	"imprisio/internal/domain/service"
	"imprisio/internal/infra/auth"
	logs "imprisio/internal/infra/log"
	"imprisio/internal/infra/notification"
	"imprisio/internal/infra/persistence/postgres"
	"imprisio/internal/infra/pubsub"
	"imprisio/internal/infra/qrcode"
	"imprisio/internal/infra/storage"
	"imprisio/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCredentialRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewAddressRepository,
			postgres.NewPrinterRepository,
			postgres.NewServiceRepository,
			postgres.NewOrderRepository,
			postgres.NewPromotionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			storage.New,
			pubsub.NewEventPublisher,
			notification.NewCenter,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProfileService,
			impl.NewAddressService,
			impl.NewOrderService,
			impl.NewCatalogService,
			impl.NewPromotionService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewProfileHandler,
			handler.NewAddressHandler,
			handler.NewOrderHandler,
			handler.NewCatalogHandler,
			handler.NewPromotionHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
