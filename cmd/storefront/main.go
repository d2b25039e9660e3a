package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/aykah/storefront/internal/cart"
	cartdomain "github.com/aykah/storefront/internal/cart/domain"
	cartrepository "github.com/aykah/storefront/internal/cart/repository"
	cartcommand "github.com/aykah/storefront/internal/cart/usecase/command"
	"github.com/aykah/storefront/internal/catalog"
	catalogclient "github.com/aykah/storefront/internal/catalog/client"
	"github.com/aykah/storefront/internal/orders"
	ordersclient "github.com/aykah/storefront/internal/orders/client"
	"github.com/aykah/storefront/internal/session"
	sessionclient "github.com/aykah/storefront/internal/session/client"
	sessionHTTP "github.com/aykah/storefront/internal/session/delivery/http"
	sessiondomain "github.com/aykah/storefront/internal/session/domain"
	sessionrepository "github.com/aykah/storefront/internal/session/repository"
	"github.com/aykah/storefront/internal/wishlist"
	wishlistdomain "github.com/aykah/storefront/internal/wishlist/domain"
	wishlistrepository "github.com/aykah/storefront/internal/wishlist/repository"
	"github.com/aykah/storefront/kafka"
	"github.com/aykah/storefront/pkg/kvstore"
	"github.com/aykah/storefront/pkg/logger"
	"github.com/aykah/storefront/pkg/tracing"
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
		Msg("Starting storefront service")

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

	// Redis backs cart, wishlist and session token persistence. When it is
	// unreachable the storefront still runs; state just lives in memory.
	redisClient := connectRedis()

	cartRepo, wishlistRepo, tokenStore := buildStores(redisClient)

	// Decorate the cart repository with tracing spans
	cartRepo = cart.ProvideTracedCartRepository(cartRepo)

	// Kafka publisher is optional; the storefront works without it
	kafkaPublisher := connectKafka()
	if kafkaPublisher != nil {
		defer kafkaPublisher.Close()
	}

	// Upstream API clients. Requests carry the caller's upstream token when
	// the session key resolves to one.
	upstreamURL := getEnv("UPSTREAM_API_URL", "https://fakestoreapi.com")
	tokenSource := sessionHTTP.BearerTokenSource(tokenStore)
	catalogClient := catalogclient.New(catalogclient.Config{BaseURL: upstreamURL}, catalogclient.TokenSource(tokenSource))
	authClient := sessionclient.New(sessionclient.Config{BaseURL: upstreamURL})
	ordersClient := ordersclient.New(ordersclient.Config{BaseURL: upstreamURL}, ordersclient.TokenSource(tokenSource))

	catalogGateway := catalog.ProvideCatalogGateway(catalogClient)

	// Initialize handlers with Wire DI
	catalogHandler, err := catalog.InitializeHTTPHandler(catalogClient)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	sessionHandler, err := session.InitializeHTTPHandler(authClient, tokenStore, kafkaPublisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize session handler")
	}

	cartHandler, err := cart.InitializeHTTPHandler(cartRepo, catalogGateway, kafkaPublisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize cart handler")
	}

	cartAdd := cartcommand.NewAddItemHandler(cartRepo, catalogGateway)
	wishlistHandler, err := wishlist.InitializeHTTPHandler(wishlistRepo, catalogGateway, cartAdd, kafkaPublisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize wishlist handler")
	}

	orderHandler, err := orders.InitializeHTTPHandler(ordersClient, catalogGateway, sessionHandler.CurrentSessionHandler())
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}

	logger.Logger.Info().
		Str("upstream_api", upstreamURL).
		Msg("Handlers initialized")

	// Setup router
	router := mux.NewRouter()

	catalogHandler.RegisterRoutes(router)
	sessionHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	wishlistHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"storefront"}`))
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{getEnv("CORS_ALLOWED_ORIGINS", "*")},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Session-Key"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      c.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Logger.Info().Msg("Storefront service stopped")
}

// connectRedis returns nil when Redis is unreachable
func connectRedis() *redis.Client {
	cfg := kvstore.Config{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	}

	client, err := kvstore.NewRedisClient(cfg)
	if err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", cfg.Addr).
			Msg("Failed to connect to Redis - falling back to in-memory state")
		return nil
	}

	logger.Logger.Info().
		Str("redis_addr", cfg.Addr).
		Msg("Connected to Redis")
	return client
}

// buildStores picks durable Redis stores when available, in-memory otherwise
func buildStores(redisClient *redis.Client) (cartdomain.CartRepository, wishlistdomain.WishlistRepository, sessiondomain.TokenStore) {
	if redisClient == nil {
		return cartrepository.NewMemoryCartRepository(),
			wishlistrepository.NewMemoryWishlistRepository(),
			sessionrepository.NewMemoryTokenStore()
	}

	return cartrepository.NewRedisCartRepository(redisClient, 7*24*time.Hour),
		wishlistrepository.NewRedisWishlistRepository(redisClient, 30*24*time.Hour),
		sessionrepository.NewRedisTokenStore(redisClient, 24*time.Hour)
}

// connectKafka returns nil when no brokers are configured or the connect fails
func connectKafka() *kafka.Publisher {
	brokersEnv := getEnv("KAFKA_BROKERS", "")
	if brokersEnv == "" {
		logger.Logger.Info().Msg("Kafka brokers not configured - intent events disabled")
		return nil
	}

	brokers := strings.Split(brokersEnv, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	publisher, err := kafka.NewPublisher(brokers)
	if err != nil {
		logger.Logger.Warn().
			Err(err).
			Strs("brokers", brokers).
			Msg("Failed to connect to Kafka - intent events disabled")
		return nil
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Connected to Kafka")
	return publisher
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
