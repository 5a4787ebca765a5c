package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/auth"
	c "github.com/Rubayat-Rafi/MediMart-Server/internal/cache"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/events"
	h "github.com/Rubayat-Rafi/MediMart-Server/internal/http"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/payment"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/repository"
	s "github.com/Rubayat-Rafi/MediMart-Server/internal/service"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	TokenSecret     string
	PaymentSecret   string
	AllowedOrigins  []string
	KafkaBrokers    []string
	ExchangeRate    float64
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	rate := 110.0
	if v := os.Getenv("EXCHANGE_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			rate = parsed
		}
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = strings.Split(v, ",")
	}

	return &Config{
		HTTPPort:      getEnv("PORT", "8000"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:   getEnv("MONGO_DB_NAME", "mediMart"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		TokenSecret:   getEnv("ACCESS_TOKEN_SECRET", ""),
		PaymentSecret: getEnv("PAYMENT_SECRET_KEY", ""),
		AllowedOrigins: strings.Split(
			getEnv("ALLOWED_ORIGINS", "http://localhost:5173,https://medimart-678e7.web.app"), ","),
		KafkaBrokers:    brokers,
		ExchangeRate:    rate,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.TokenSecret == "" {
		logger.Fatal("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.PaymentSecret == "" {
		logger.Fatal("PAYMENT_SECRET_KEY is required")
	}

	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoDB.Client().Disconnect(ctx)
	logger.Info("connected to MongoDB", zap.String("db", cfg.MongoDBName))

	cartRepo := repository.NewMongoCartRepository(mongoDB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB)
	userRepo := repository.NewMongoUserRepository(mongoDB)
	medicineRepo := repository.NewMongoMedicineRepository(mongoDB)
	adRepo := repository.NewMongoAdRepository(mongoDB)
	categoryRepo := repository.NewMongoCategoryRepository(mongoDB)

	if err := cartRepo.(interface {
		CreateIndexes(context.Context) error
	}).CreateIndexes(ctx); err != nil {
		logger.Fatal("failed to create cart indexes", zap.Error(err))
	}
	if err := userRepo.(interface {
		CreateIndexes(context.Context) error
	}).CreateIndexes(ctx); err != nil {
		logger.Fatal("failed to create user indexes", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

	var publisher events.OrderPublisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers...)
		defer kp.Close()
		publisher = kp
		logger.Info("order events enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	cartCache := c.NewRedisCache(redisClient)
	processor := payment.NewStripeProcessor(cfg.PaymentSecret)
	tokens := auth.NewTokenService(cfg.TokenSecret)
	gate := auth.NewGate(userRepo)

	cartService := s.NewCartService(cartRepo, cartCache, logger)
	checkoutService := s.NewCheckoutService(cartRepo, processor, cfg.ExchangeRate, logger)
	orderService := s.NewOrderService(orderRepo, publisher, logger)

	handlers := h.Handlers{
		Users:    h.NewUserHandler(userRepo, tokens),
		Catalog:  h.NewCatalogHandler(medicineRepo, categoryRepo),
		Carts:    h.NewCartHandler(cartService),
		Ads:      h.NewAdHandler(adRepo),
		Checkout: h.NewCheckoutHandler(checkoutService),
		Orders:   h.NewOrderHandler(orderService),
	}

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      h.NewRouter(handlers, tokens, gate, cfg.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Medi Mart is running", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
