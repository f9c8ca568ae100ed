package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shelterapi/internal/config"
	"shelterapi/internal/database"
	handlers "shelterapi/internal/http/handler"
	"shelterapi/internal/http/middleware"
	"shelterapi/internal/logger"
	"shelterapi/internal/otel"
	"shelterapi/internal/repository/mongodb"
	"shelterapi/internal/service"
	"shelterapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, zl)
	if err != nil {
		zl.Fatal("failed to initialize tracing", zap.Error(err))
	}

	client, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		zl.Fatal("failed to connect to record store", zap.Error(err), zap.String("host", cfg.Mongo.Host))
	}
	defer client.Disconnect(context.Background())

	zl.Info("connected to record store",
		zap.String("host", cfg.Mongo.Host),
		zap.String("database", cfg.Mongo.Name),
		zap.String("collection", cfg.Mongo.Collection),
	)

	// Exports are optional; without an endpoint the export route answers 501
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			zl.Fatal("failed to initialize export storage", zap.Error(err))
		}
	}

	repo := mongodb.NewAnimalMongo(database.Collection(client, cfg.Mongo), client, zl)
	svc := service.NewShelterService(repo, objStore, time.Duration(cfg.MinIO.URLExpirySec)*time.Second)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		zl.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(zl))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(app, svc)

	go func() {
		<-ctx.Done()
		zl.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zl.Error("error during shutdown", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	zl.Info("starting HTTP server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}

	tctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(tctx); err != nil {
		zl.Error("tracing shutdown failed", zap.Error(err))
	}
}
