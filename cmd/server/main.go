package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/pcshop/storefront/docs"
	"github.com/pcshop/storefront/internal/cart"
	carthttp "github.com/pcshop/storefront/internal/cart/delivery/http"
	cartrepo "github.com/pcshop/storefront/internal/cart/repository"
	"github.com/pcshop/storefront/internal/catalog"
	cataloghttp "github.com/pcshop/storefront/internal/catalog/delivery/http"
	catalogrepo "github.com/pcshop/storefront/internal/catalog/repository"
	marketinghttp "github.com/pcshop/storefront/internal/marketing/delivery/http"
	marketingrepo "github.com/pcshop/storefront/internal/marketing/repository"
	"github.com/pcshop/storefront/internal/order"
	orderhttp "github.com/pcshop/storefront/internal/order/delivery/http"
	orderrepo "github.com/pcshop/storefront/internal/order/repository"
	"github.com/pcshop/storefront/internal/review"
	reviewhttp "github.com/pcshop/storefront/internal/review/delivery/http"
	reviewrepo "github.com/pcshop/storefront/internal/review/repository"
	"github.com/pcshop/storefront/internal/user"
	userhttp "github.com/pcshop/storefront/internal/user/delivery/http"
	userrepo "github.com/pcshop/storefront/internal/user/repository"
	"github.com/pcshop/storefront/kafka"
	"github.com/pcshop/storefront/pkg/database"
	"github.com/pcshop/storefront/pkg/logger"
	"github.com/pcshop/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storefrontdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations, catalog first so foreign keys resolve
	catalogRepo := catalogrepo.NewGormCatalogRepository(db)
	if err := catalogRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run catalog migrations")
	}

	userRepo := userrepo.NewGormUserRepository(db)
	if err := userRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run user migrations")
	}

	cartRepo := cartrepo.NewGormCartRepository(db)
	if err := cartRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run cart migrations")
	}

	if err := orderrepo.NewGormOrderRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run order migrations")
	}
	if err := reviewrepo.NewGormReviewRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run review migrations")
	}
	marketingRepo := marketingrepo.NewGormMarketingRepository(db)
	if err := marketingRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run marketing migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka is optional: order placement works without it, events are skipped
	var publisher *kafka.Publisher
	var consumer *kafka.Consumer
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		brokerList := strings.Split(brokers, ",")

		publisher, err = kafka.NewPublisher(brokerList)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect Kafka publisher, order events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
			logger.Logger.Info().Strs("brokers", brokerList).Msg("Kafka publisher connected")
		}

		consumer, err = kafka.NewConsumer(brokerList, getEnv("KAFKA_GROUP_ID", "storefront"), []string{kafka.TopicOrderPlaced})
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect Kafka consumer, order audit disabled")
		} else {
			defer consumer.Close()
			registerOrderAudit(consumer)

			consumerCtx, cancelConsumer := context.WithCancel(context.Background())
			defer cancelConsumer()
			go func() {
				if err := consumer.Start(consumerCtx); err != nil {
					logger.Logger.Error().Err(err).Msg("Kafka consumer stopped")
				}
			}()
		}
	}

	// Initialize handlers with Wire DI
	catalogHandler, err := catalog.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	userHandler, err := user.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}

	cartHandler, err := cart.InitializeHandler(db, catalogRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize cart handler")
	}

	orderHandler, err := order.InitializeHandler(db, cartRepo, userRepo, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}

	reviewHandler, err := review.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize review handler")
	}

	marketingHandler := marketinghttp.NewMarketingHandler(marketingRepo)

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(httpPort, sqlDB, catalogHandler, userHandler, cartHandler, orderHandler, reviewHandler, marketingHandler)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(
	port string,
	db *sql.DB,
	catalogHandler *cataloghttp.CatalogHandler,
	userHandler *userhttp.UserHandler,
	cartHandler *carthttp.CartHandler,
	orderHandler *orderhttp.OrderHandler,
	reviewHandler *reviewhttp.ReviewHandler,
	marketingHandler *marketinghttp.MarketingHandler,
) {
	// Setup router
	router := mux.NewRouter()

	router.Use(userhttp.LoggingMiddleware)
	router.Use(func(next http.Handler) http.Handler {
		return userhttp.TracingMiddleware("http-request", next)
	})

	catalogHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	reviewHandler.RegisterRoutes(router)
	marketingHandler.RegisterRoutes(router)

	// Health check endpoint
	catalogHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	cataloghttp.RegisterSwaggerDocs(router, httpSwagger.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// registerOrderAudit consumes order.placed events back and logs them, keeping
// a running counter of processed orders.
func registerOrderAudit(consumer *kafka.Consumer) {
	ordersProcessed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_events_processed_total",
		Help: "Total number of order.placed events consumed",
	})
	prometheus.MustRegister(ordersProcessed)

	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, func(ctx context.Context, event kafka.OrderPlacedEvent) error {
		logger.Info(ctx).
			Str("event_id", event.EventID).
			Uint("order_id", event.OrderID).
			Uint("user_id", event.UserID).
			Str("total_price", event.TotalPrice.String()).
			Int("items", len(event.Items)).
			Msg("Order placed")

		ordersProcessed.Inc()
		return nil
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
