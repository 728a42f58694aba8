package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chatapp "github.com/telco/backend/internal/application/chat"
	subscriberapp "github.com/telco/backend/internal/application/subscriber"
	"github.com/telco/backend/internal/infrastructure/config"
	"github.com/telco/backend/internal/infrastructure/logger"
	"github.com/telco/backend/internal/infrastructure/persistence"
	"github.com/telco/backend/internal/infrastructure/session"
	"github.com/telco/backend/internal/interfaces/http/handler"
	"github.com/telco/backend/internal/interfaces/http/middleware"
	"github.com/telco/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Telco Backoffice",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	simRepo := persistence.NewGormSimRepository(db.DB)
	assignmentRepo := persistence.NewGormAssignmentRepository(db.DB)

	// Application services
	customerService := subscriberapp.NewCustomerService(customerRepo, assignmentRepo)
	simService := subscriberapp.NewSimService(simRepo)

	// Conversation session store (redis with in-memory fallback)
	sessionStore, err := session.NewStoreFactory(cfg.Session, cfg.Redis,
		session.WithLogger(log)).CreateStore()
	if err != nil {
		log.Fatal("Failed to create session store", zap.Error(err))
	}
	defer func() {
		if closer, ok := sessionStore.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Error("Error closing session store", zap.Error(err))
			}
		}
	}()

	// Conversational assistant over the full customer directory
	directory := persistence.NewChatDirectory(db.DB)
	chatEngine := chatapp.NewEngine(directory, sessionStore, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORS())

	systemHandler := handler.NewSystemHandler(db)
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewChatHandler(chatEngine)).
		Register(handler.NewCustomerHandler(customerService)).
		Register(handler.NewSimHandler(simService)).
		Register(systemHandler).
		Setup()

	// Bare liveness endpoint for load balancers
	engine.GET("/healthz", systemHandler.Health)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
