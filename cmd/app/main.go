package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"orders/cmd"
	_ "orders/docs"
	ordershttp "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleOrderTTL = 24 * time.Hour

// @title Orders Service API
// @version 1.0
// @description Order lifecycle management service
// @BasePath /api/v1
func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var gormDB *gorm.DB
	if configs.Storage == cmd.StoragePostgres {
		gormDB = mustConnectToDB(configs)
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error creating composition root: %v", err)
	}
	defer root.Close()

	jobManager := root.CreateJobManager(staleOrderTTL(configs))
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		Storage:                goDotEnvVariable("STORAGE"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		StaleOrderTTL:          goDotEnvVariable("STALE_ORDER_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func staleOrderTTL(configs cmd.Config) time.Duration {
	if configs.StaleOrderTTL == "" {
		return defaultStaleOrderTTL
	}

	ttl, err := time.ParseDuration(configs.StaleOrderTTL)
	if err != nil {
		log.Fatalf("Invalid STALE_ORDER_TTL %q: %v", configs.StaleOrderTTL, err)
	}
	return ttl
}

func mustConnectToDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := ordershttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateAddLineItemCommandHandler(),
		root.CreateRemoveLineItemCommandHandler(),
		root.CreateConfirmOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateShipOrderCommandHandler(),
		root.CreateGetOrderQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
