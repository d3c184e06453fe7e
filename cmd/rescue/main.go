package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/montirku/montirku/internal/pkg/config"
	"github.com/montirku/montirku/internal/pkg/database"
	"github.com/montirku/montirku/internal/pkg/health"
	"github.com/montirku/montirku/internal/pkg/logger"
	nsqpkg "github.com/montirku/montirku/internal/pkg/nsq"
	"github.com/montirku/montirku/internal/pkg/server"
	"github.com/montirku/montirku/services/rescue/gateway"
	rescueHandler "github.com/montirku/montirku/services/rescue/handler"
	rescueHTTP "github.com/montirku/montirku/services/rescue/handler/http"
	rescueRepo "github.com/montirku/montirku/services/rescue/repository"
	rescueUsecase "github.com/montirku/montirku/services/rescue/usecase"
	usersHandler "github.com/montirku/montirku/services/users/handler"
	usersHTTP "github.com/montirku/montirku/services/users/handler/http"
	usersRepo "github.com/montirku/montirku/services/users/repository"
	usersUsecase "github.com/montirku/montirku/services/users/usecase"
)

const appName = "rescue-service"

func main() {
	configs := config.InitConfig(os.Getenv("CONFIG_FILE"))

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Initialize repositories
	userRepo := usersRepo.NewUserRepository(configs, postgresClient.GetDB())
	requestRepo := rescueRepo.NewRequestRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	rescueGW := gateway.NewRescueGW(producer)

	// Initialize usecases
	userUC := usersUsecase.NewUserUC(userRepo, configs)
	rescueUC := rescueUsecase.NewRescueUC(configs, requestRepo, userRepo, rescueGW)

	// Handlers for HTTP
	authHandler := usersHTTP.NewAuthHandler(userUC)
	beaconHandler := usersHTTP.NewBeaconHandler(userUC)
	requestHandler := rescueHTTP.NewRequestHandler(rescueUC)
	mechanicHandler := rescueHTTP.NewMechanicHandler(rescueUC)

	usersH := usersHandler.NewHandler(authHandler, beaconHandler, configs)
	rescueH := rescueHandler.NewHandler(requestHandler, mechanicHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.Recover())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	usersH.RegisterRoutes(e)
	rescueH.RegisterRoutes(e)

	// Register cleanup for non-HTTP components
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
