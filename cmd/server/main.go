package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	redisAdapter "github.com/ceyhunemlak/listing-service/internal/adapter/cache/redis"
	"github.com/ceyhunemlak/listing-service/internal/adapter/httpapi"
	natsAdapter "github.com/ceyhunemlak/listing-service/internal/adapter/messaging/nats"
	mongoAdapter "github.com/ceyhunemlak/listing-service/internal/adapter/mongo"
	minioAdapter "github.com/ceyhunemlak/listing-service/internal/adapter/storage/minio"
	"github.com/ceyhunemlak/listing-service/internal/config"
	"github.com/ceyhunemlak/listing-service/internal/platform/logger"
	"github.com/ceyhunemlak/listing-service/internal/usecase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	configPath := "config.yaml"
	if cp := os.Getenv("CONFIG_PATH"); cp != "" {
		configPath = cp
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	mongoClient, err := mongoAdapter.NewMongoDBConnection(&cfg.Mongo)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			zapLogger.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	zapLogger.Info("Successfully connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	listingRepo := mongoAdapter.NewListingMongoRepository(mongoClient, cfg.Mongo.Database)
	detailRepo := mongoAdapter.NewDetailMongoRepository(mongoClient, cfg.Mongo.Database)
	photoRepo := mongoAdapter.NewPhotoMongoRepository(mongoClient, cfg.Mongo.Database)
	addressRepo := mongoAdapter.NewAddressMongoRepository(mongoClient, cfg.Mongo.Database)

	photoStorage, err := minioAdapter.NewPhotoStorage(&cfg.Minio, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize photo storage", zap.Error(err))
	}

	redisClient, err := redisAdapter.NewRedisClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	cacheRepo := redisAdapter.NewRedisCacheRepository(redisClient, zapLogger)

	publisher, err := natsAdapter.NewNATSPublisher(&cfg.NATS, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()

	listingUC := usecase.NewListingUsecase(listingRepo, detailRepo, photoRepo, addressRepo, photoStorage, cacheRepo, publisher, zapLogger)
	photoUC := usecase.NewPhotoUsecase(photoStorage, photoRepo, listingRepo, zapLogger)

	handler := httpapi.NewListingHandler(listingUC, photoUC, zapLogger)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("port", cfg.HTTP.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exited")
}
