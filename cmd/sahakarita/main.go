package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sahakarita/sahakarita/internal/pkg/config"
	"github.com/sahakarita/sahakarita/internal/pkg/database"
	"github.com/sahakarita/sahakarita/internal/pkg/health"
	"github.com/sahakarita/sahakarita/internal/pkg/logger"
	"github.com/sahakarita/sahakarita/internal/pkg/middleware"
	natspkg "github.com/sahakarita/sahakarita/internal/pkg/nats"
	nrpkg "github.com/sahakarita/sahakarita/internal/pkg/newrelic"
	"github.com/sahakarita/sahakarita/internal/pkg/server"
	wspkg "github.com/sahakarita/sahakarita/internal/pkg/websocket"

	chathandler "github.com/sahakarita/sahakarita/services/chat/handler"
	chatnats "github.com/sahakarita/sahakarita/services/chat/handler/nats"
	chatws "github.com/sahakarita/sahakarita/services/chat/handler/websocket"
	chatgw "github.com/sahakarita/sahakarita/services/chat/gateway/nats"
	chatrepo "github.com/sahakarita/sahakarita/services/chat/repository"
	chatuc "github.com/sahakarita/sahakarita/services/chat/usecase"
	groupshandler "github.com/sahakarita/sahakarita/services/groups/handler"
	groupshttp "github.com/sahakarita/sahakarita/services/groups/handler/http"
	groupsrepo "github.com/sahakarita/sahakarita/services/groups/repository"
	groupsuc "github.com/sahakarita/sahakarita/services/groups/usecase"
	ledgerhandler "github.com/sahakarita/sahakarita/services/ledger/handler"
	ledgerhttp "github.com/sahakarita/sahakarita/services/ledger/handler/http"
	ledgergw "github.com/sahakarita/sahakarita/services/ledger/gateway/nats"
	ledgerrepo "github.com/sahakarita/sahakarita/services/ledger/repository"
	ledgeruc "github.com/sahakarita/sahakarita/services/ledger/usecase"
	usershandler "github.com/sahakarita/sahakarita/services/users/handler"
	usershttp "github.com/sahakarita/sahakarita/services/users/handler/http"
	usersrepo "github.com/sahakarita/sahakarita/services/users/repository"
	usersuc "github.com/sahakarita/sahakarita/services/users/usecase"
	vendorshandler "github.com/sahakarita/sahakarita/services/vendors/handler"
	vendorshttp "github.com/sahakarita/sahakarita/services/vendors/handler/http"
	vendorsrepo "github.com/sahakarita/sahakarita/services/vendors/repository"
	vendorsuc "github.com/sahakarita/sahakarita/services/vendors/usecase"
)

const appName = "sahakarita"

func main() {
	configs := config.InitConfig("config/sahakarita.env")

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	db := postgresClient.GetDB()

	// Repositories
	userRepo := usersrepo.NewUserRepo(configs, db)
	vendorRepo := vendorsrepo.NewVendorRepo(configs, db)
	groupRepo := groupsrepo.NewGroupRepo(configs, db)
	transactionRepo := ledgerrepo.NewTransactionRepo(configs, db)
	messageRepo := chatrepo.NewMessageRepo(configs, db)
	presenceRepo := chatrepo.NewPresenceRepo(configs, redisClient)

	// Gateways
	transactionGW := ledgergw.NewTransactionGW(natsClient)
	chatGW := chatgw.NewChatGW(natsClient)

	// Usecases; the ledger and chat consume the groups usecase for
	// membership and wallet operations
	userUC := usersuc.NewUserUC(configs, userRepo)
	vendorUC := vendorsuc.NewVendorUC(configs, vendorRepo)
	groupUC := groupsuc.NewGroupUC(configs, groupRepo)
	transactionUC := ledgeruc.NewTransactionUC(configs, transactionRepo, groupUC, transactionGW)
	chatUC := chatuc.NewChatUC(configs, messageRepo, presenceRepo, groupUC, chatGW)

	// HTTP handlers
	userHandler := usershttp.NewUserHandler(userUC)
	vendorHandler := vendorshttp.NewVendorHandler(vendorUC)
	groupHandler := groupshttp.NewGroupHandler(groupUC)
	transactionHandler := ledgerhttp.NewTransactionHandler(transactionUC)

	// WebSocket chat
	wsManager := wspkg.NewManager()
	chatHandler := chatws.NewChatHandler(wsManager, chatUC, groupUC)

	// NATS push fan-out to connected websocket clients
	pushHandler := chatnats.NewPushHandler(natsClient, wsManager)
	if err := pushHandler.Start(); err != nil {
		zapLogger.Fatal("Failed to start NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger())
	e.Use(middleware.PanicRecovery())

	health.RegisterHealthEndpoints(e, appName)
	usershandler.RegisterPublicRoutes(e, userHandler)

	api := e.Group("", middleware.JWTAuth(configs))
	usershandler.RegisterRoutes(api, userHandler)
	vendorshandler.RegisterRoutes(api, vendorHandler)
	groupshandler.RegisterRoutes(api, groupHandler)
	ledgerhandler.RegisterRoutes(api, transactionHandler)
	chathandler.RegisterRoutes(api, chatHandler)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		pushHandler.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}
