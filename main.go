package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelbooking/config"
	"hotelbooking/database"
	hotelRepo "hotelbooking/database/repository/hotel"
	userRepo "hotelbooking/database/repository/user"
	"hotelbooking/handlers"
	"hotelbooking/middleware"
	"hotelbooking/routes"
	"hotelbooking/services/booking"
	"hotelbooking/services/hotel"
	"hotelbooking/services/payment"
	"hotelbooking/services/search"
	"hotelbooking/services/storage"
	"hotelbooking/services/user"
	"hotelbooking/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.AppConfig.JWTSecret == "" {
		logger.Fatal("main: JWT_SECRET must be set")
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	healthChecks := map[string]utils.HealthCheck{}

	// repositories.
	var (
		users  userRepo.UserRepository
		hotels hotelRepo.HotelRepository
	)
	switch config.AppConfig.Store {
	case "memory":
		logger.Warn("main: using in-memory store; data is lost on restart")
		users = userRepo.NewMemoryUserRepo()
		hotels = hotelRepo.NewMemoryHotelRepo()
	default:
		db, err := database.InitDB()
		if err != nil {
			logger.Fatal("main: failed to initialize database", zap.Error(err))
		}
		if users, err = userRepo.NewMongoUserRepo(db); err != nil {
			logger.Fatal("main: failed to initialize user repository", zap.Error(err))
		}
		if hotels, err = hotelRepo.NewMongoHotelRepo(db); err != nil {
			logger.Fatal("main: failed to initialize hotel repository", zap.Error(err))
		}
		healthChecks["mongo"] = func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) }
	}

	// optional session denylist.
	var denylist utils.TokenDenylist
	redisClient, err := utils.InitAuthCache()
	if err != nil {
		logger.Fatal("main: failed to initialize auth cache", zap.Error(err))
	}
	if redisClient != nil {
		denylist = utils.NewRedisTokenDenylist(redisClient)
		healthChecks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	} else {
		logger.Warn("main: REDIS_ADDR not set; logout will only clear the cookie")
	}

	// external services.
	var payments payment.PaymentProcessor
	if config.AppConfig.StripeKey != "" {
		payments = payment.NewStripeProcessor(config.AppConfig.StripeKey)
	} else if config.IsProduction() {
		logger.Fatal("main: STRIPE_API_KEY must be set in production")
	} else {
		logger.Warn("main: STRIPE_API_KEY not set; using in-memory payment processor")
		payments = payment.NewFakeProcessor()
	}

	var images storage.StorageService
	cld, err := storage.NewStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
		config.AppConfig.CloudinaryFolder,
	)
	if err != nil {
		logger.Warn("main: image uploads disabled", zap.Error(err))
	} else {
		images = cld
	}

	// services.
	tokens := utils.NewTokenManager(config.AppConfig.JWTSecret, utils.SessionTTL)
	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		Users:  &user.DefaultUserService{Repo: users, Tokens: tokens, Denylist: denylist},
		Hotels: &hotel.DefaultHotelService{Repo: hotels, Storage: images},
		Search: &search.DefaultSearchService{Repo: hotels},
		Bookings: &booking.DefaultBookingService{
			Hotels:           hotels,
			Payments:         payments,
			Currency:         config.AppConfig.PaymentCurrency,
			RejectDuplicates: config.AppConfig.RejectDuplicatePaymentIntents,
			Logger:           logger,
		},
		Tokens:       tokens,
		Denylist:     denylist,
		HealthChecks: healthChecks,
		Metrics:      utils.MetricsHandler(utils.InitRegistry()),
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.FrontendURL, config.AppConfig.StaticDir)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:              "0.0.0.0:" + config.AppConfig.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
