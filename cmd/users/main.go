package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dostavka-go/user-service/internal/pkg/config"
	"github.com/dostavka-go/user-service/internal/pkg/database"
	"github.com/dostavka-go/user-service/internal/pkg/health"
	pkghttp "github.com/dostavka-go/user-service/internal/pkg/http"
	"github.com/dostavka-go/user-service/internal/pkg/jwt"
	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/middleware"
	"github.com/dostavka-go/user-service/internal/pkg/nsq"
	"github.com/dostavka-go/user-service/internal/pkg/server"
	"github.com/dostavka-go/user-service/internal/utils"
	"github.com/dostavka-go/user-service/services/users"
	"github.com/dostavka-go/user-service/services/users/gateway"
	"github.com/dostavka-go/user-service/services/users/handler"
	httphandler "github.com/dostavka-go/user-service/services/users/handler/http"
	"github.com/dostavka-go/user-service/services/users/repository"
	"github.com/dostavka-go/user-service/services/users/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	appLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	ctx := context.Background()

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		appLogger.Fatal("failed to connect to database", logger.ErrorField(err))
	}
	defer db.Close()

	redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Fatal("failed to connect to redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	var producer *nsq.Producer
	if cfg.NSQ.Enabled {
		producer, err = nsq.NewProducer(cfg.NSQ.Address)
		if err != nil {
			appLogger.Warn("nsq unavailable, events disabled", logger.ErrorField(err))
			producer = nil
		} else {
			defer producer.Stop()
		}
	}

	tokens := jwt.NewService(cfg.JWT)

	userRepo := repository.NewUserRepository(db, appLogger)
	locationCache := repository.NewLocationCacheRepository(redisClient, appLogger)

	geocodingGW := gateway.NewMapboxGateway(
		pkghttp.NewClientMs(cfg.Mapbox.ConnectTimeoutMs, cfg.Mapbox.ReadTimeoutMs),
		cfg.Mapbox, cfg.Location, appLogger)
	storeGW := gateway.NewStoreGateway(
		pkghttp.NewClientMs(cfg.Mapbox.ConnectTimeoutMs, cfg.Mapbox.ReadTimeoutMs),
		cfg.Services.StoreServiceURL)
	eventGW := gateway.NewEventGateway(producer, appLogger)

	var uc users.UserUC = usecase.NewUserUsecase(
		userRepo, locationCache, geocodingGW, storeGW, eventGW,
		tokens, cfg.Location, appLogger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogging(appLogger))

	authMiddleware := middleware.NewJWTMiddleware(tokens)

	userHandler := httphandler.NewUserHandler(uc, appLogger)
	handler.RegisterRoutes(e, userHandler, authMiddleware)

	healthHandler := health.NewHandler(cfg.App.Name, cfg.App.Version, db, redisClient)
	healthHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, cfg.Server, appLogger)
	if err := srv.Run(); err != nil {
		appLogger.Fatal("server exited with error", logger.ErrorField(err))
	}
}
