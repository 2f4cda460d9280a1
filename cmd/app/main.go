package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	"ordering/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DBConnString()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.HistoryDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     configs.RedisAddr(),
		Password: configs.RedisPassword,
	})
	defer redisClient.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	defer func() {
		if closeErr := app.CloseNotifier(); closeErr != nil {
			logger.Warn("error closing broker connection", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	refreshWindow, err := time.ParseDuration(envOrDefault("CACHE_REFRESH_WINDOW", "15m"))
	if err != nil {
		log.Fatalf("Error parsing CACHE_REFRESH_WINDOW: %v", err)
	}

	return cmd.Config{
		ServiceName: envOrDefault("SERVICE_NAME", "ordering"),
		Version:     envOrDefault("SERVICE_VERSION", "dev"),
		Environment: envOrDefault("ENVIRONMENT", "development"),

		HTTPPort: envOrDefault("HTTP_PORT", "8080"),

		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOrDefault("DB_NAME", "ordering"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		RedisHost:     envOrDefault("REDIS_HOST", "localhost"),
		RedisPort:     envOrDefault("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		RabbitMQHost:     envOrDefault("RABBITMQ_HOST", "localhost"),
		RabbitMQPort:     envOrDefault("RABBITMQ_PORT", "5672"),
		RabbitMQUser:     envOrDefault("RABBITMQ_USER", "guest"),
		RabbitMQPassword: envOrDefault("RABBITMQ_PASSWORD", "guest"),
		QueueName:        envOrDefault("QUEUE_NAME", "order.notifications"),

		CacheRefreshSchedule: envOrDefault("CACHE_REFRESH_SCHEDULE", "*/5 * * * *"),
		CacheRefreshWindow:   refreshWindow,
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			logger.Info("http server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}
