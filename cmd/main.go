package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/cashflowhq/cashflow-api/internal/facades"
	"github.com/cashflowhq/cashflow-api/internal/handlers"
	"github.com/cashflowhq/cashflow-api/internal/jwt"
	"github.com/cashflowhq/cashflow-api/internal/logger"
	"github.com/cashflowhq/cashflow-api/internal/middlewares"
	"github.com/cashflowhq/cashflow-api/internal/repositories"
	"github.com/cashflowhq/cashflow-api/internal/services"
	"github.com/cashflowhq/cashflow-api/internal/validators"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title cashflow-api
// @version 1.0.0
// @description Multi-tenant financial transaction ingestion and retrieval API
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		aggregationURL, aggregationTimeoutSecond, upsertTimeoutSecond,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		aggregationURL, aggregationTimeoutSecond, upsertTimeoutSecond,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, aggregation, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	aggregationURL string, aggregationTimeoutSecond, upsertTimeoutSecond int,
	jwtSecret string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "cashflow")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config; an empty host disables the tenant read cache
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("CACHE_TTL_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; empty brokers disable event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	// Downstream aggregation config; an empty URL disables the trigger
	aggregationURL = getEnv("AGGREGATION_FUNCTION_URL", "")
	if aggregationTimeoutSecond, err = strconv.Atoi(getEnv("AGGREGATION_TIMEOUT_SECOND", "15")); err != nil {
		return
	}
	if upsertTimeoutSecond, err = strconv.Atoi(getEnv("UPSERT_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// JWT config; an empty secret leaves the API unprotected
	jwtSecret = getEnv("JWT_SECRET_KEY", "")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	aggregationURL string, aggregationTimeoutSecond, upsertTimeoutSecond int,
	jwtSecret string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis if configured
	var cacheRepo *repositories.TransactionCacheRepository
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		cacheRepo = repositories.NewTransactionCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)
	} else {
		logger.Log.Info("Redis not configured, tenant read cache disabled")
	}

	// Connect to Kafka if configured
	var kafkaWriter *kafka.Writer
	if kafkaBrokers != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
	} else {
		logger.Log.Info("Kafka not configured, transaction events disabled")
	}

	// Initialize repositories
	writeRepo := repositories.NewTransactionWriteRepository(db)
	readRepo := repositories.NewTransactionReadRepository(db)

	// Initialize facades and services
	aggregationFacade := facades.NewAggregationHTTPFacade(aggregationURL, time.Duration(aggregationTimeoutSecond)*time.Second)
	txnValidator := validators.New(nil)

	var cacheInvalidator services.CacheInvalidator
	var tenantCache services.TenantTransactionsCache
	if cacheRepo != nil {
		cacheInvalidator = cacheRepo
		tenantCache = cacheRepo
	}
	var eventWriter services.KafkaWriter
	if kafkaWriter != nil {
		eventWriter = kafkaWriter
	}

	ingestionService := services.NewTransactionIngestionService(
		writeRepo,
		txnValidator,
		aggregationFacade,
		cacheInvalidator,
		eventWriter,
		time.Duration(upsertTimeoutSecond)*time.Second,
	)
	queryService := services.NewTransactionQueryService(readRepo, tenantCache)

	// Initialize handlers
	batchHandler := handlers.NewBatchTransactionsHandler(ingestionService)
	upsertHandler := handlers.NewUpsertTransactionHandler(ingestionService)
	listHandler := handlers.NewListTransactionsHandler(queryService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Group(func(r chi.Router) {
		if jwtSecret != "" {
			tokener := jwt.New(jwtSecret, time.Duration(jwtExpSecond)*time.Second)
			r.Use(middlewares.AuthMiddleware(tokener))
		}

		r.Post("/transaction", batchHandler)
		r.Post("/transactions/batch", batchHandler)
		r.Put("/transaction", upsertHandler)
		r.Get("/transaction", listHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
