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
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/sbilibin2017/workout-tracker/docs"
	"github.com/sbilibin2017/workout-tracker/internal/database"
	"github.com/sbilibin2017/workout-tracker/internal/facades"
	"github.com/sbilibin2017/workout-tracker/internal/handlers"
	"github.com/sbilibin2017/workout-tracker/internal/hasher"
	"github.com/sbilibin2017/workout-tracker/internal/logger"
	"github.com/sbilibin2017/workout-tracker/internal/middlewares"
	"github.com/sbilibin2017/workout-tracker/internal/repositories"
	"github.com/sbilibin2017/workout-tracker/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title workout-tracker API
// @version 1.0.0
// @description Personal workout tracker: login-or-register, default routine seeding and exercise todo items
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		databaseURL, sqlitePath, dbMaxOpenConns, dbMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		corsOrigins,
		legacyUserID, seedUsername, seedPassword,
		bcryptCost,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		databaseURL, sqlitePath, dbMaxOpenConns, dbMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		corsOrigins,
		legacyUserID, seedUsername, seedPassword,
		bcryptCost,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build Version: %s\nBuild Commit: %s\nBuild Date: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the application,
// database, Redis, Kafka, CORS, seeding and password hashing configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	databaseURL, sqlitePath string, dbMaxOpenConns, dbMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	corsOrigins []string,
	legacyUserID int64, seedUsername, seedPassword string,
	bcryptCost int,
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

	// Database config
	databaseURL = getEnv("DATABASE_URL", "")
	sqlitePath = getEnv("SQLITE_PATH", "./workout.db")
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if dbMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config, empty host disables the item cache
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "60")); err != nil {
		return
	}

	// Kafka config, no brokers disables events
	kafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	kafkaTopic = getEnv("KAFKA_TOPIC", "workout-events")

	corsOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"))

	// Seeding config
	if legacyUserID, err = strconv.ParseInt(getEnv("LEGACY_USER_ID", "1"), 10, 64); err != nil {
		return
	}
	// SEED_USERNAME may be set to an empty value to disable the seed account.
	seedUsername = "testuser"
	if val, ok := os.LookupEnv("SEED_USERNAME"); ok {
		seedUsername = val
	}
	seedPassword = getEnv("SEED_PASSWORD", "testuser")

	if bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))); err != nil {
		return
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		err = fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, bcryptCost)
		return
	}

	return
}

// splitList splits a comma separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run initializes the logger, database, optional Redis cache and Kafka events, and the HTTP server.
// It seeds the legacy account, sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	databaseURL, sqlitePath string, dbMaxOpenConns, dbMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	corsOrigins []string,
	legacyUserID int64, seedUsername, seedPassword string,
	bcryptCost int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to the database and create tables
	db, err := database.Open(ctx, databaseURL, sqlitePath, dbMaxOpenConns, dbMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := database.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	pwHasher := hasher.New(bcryptCost)

	// Create the seed account on an empty database
	if _, err := services.SeedLegacyAccount(ctx,
		repositories.NewUserReadRepository(db, nil),
		repositories.NewUserWriteRepository(db, nil),
		pwHasher, seedUsername, seedPassword,
	); err != nil {
		return fmt.Errorf("seed legacy account: %w", err)
	}

	// Connect to Redis
	var itemCache services.ItemCache
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		itemCache = repositories.NewItemCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
		logger.Log.Infow("item cache enabled", "addr", rdb.Options().Addr)
	}

	// Kafka events
	eventsFacade := facades.NewEventsKafkaFacade(facades.NewKafkaWriter(kafkaBrokers, kafkaTopic))
	defer func() {
		if err := eventsFacade.Close(); err != nil {
			logger.Log.Errorw("failed to close Kafka writer", "error", err)
		}
	}()

	swaggerURL := fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)
	r := newRouter(db, itemCache, eventsFacade, pwHasher, legacyUserID, corsOrigins, swaggerURL)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP router.
// itemCache and events may be nil.
func newRouter(
	db *sqlx.DB,
	itemCache services.ItemCache,
	events services.EventPublisher,
	pwHasher services.PasswordHasher,
	legacyUserID int64,
	corsOrigins []string,
	swaggerURL string,
) http.Handler {
	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	itemReadRepo := repositories.NewItemReadRepository(db, middlewares.GetTxFromContext)
	itemWriteRepo := repositories.NewItemWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	routineService := services.NewRoutineService(userReadRepo, userReadRepo, itemReadRepo, itemWriteRepo, itemCache, events)
	authService := services.NewAuthService(
		userReadRepo, userWriteRepo, pwHasher,
		routineService, itemWriteRepo,
		itemCache, events, legacyUserID,
	)
	itemService := services.NewItemService(itemReadRepo, itemWriteRepo, itemCache, events)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware(corsOrigins))

	r.Get("/health", handlers.NewHealthHandler(db))

	// Login manages its own transactions: the user row must survive a failed seeding.
	r.Post("/api/login", handlers.NewLoginHandler(authService))

	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/init_workout", func(r chi.Router) {
		r.Use(txMiddleware)
		r.Post("/", handlers.NewInitWorkoutHandler(routineService))
	})

	r.Route("/todos", func(r chi.Router) {
		r.Use(txMiddleware)
		r.Get("/", handlers.NewListItemsHandler(itemService))
		r.Post("/", handlers.NewCreateItemHandler(itemService))
		r.Put("/{id}", handlers.NewUpdateItemHandler(itemService))
		r.Patch("/{id}/toggle", handlers.NewToggleItemHandler(itemService))
		r.Delete("/{id}", handlers.NewDeleteItemHandler(itemService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
