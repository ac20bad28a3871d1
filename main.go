package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotwise/config"
	"slotwise/cron"
	"slotwise/database"
	bookingRepo "slotwise/database/repository/booking"
	settingsRepo "slotwise/database/repository/settings"
	userRepoPkg "slotwise/database/repository/user"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/routes"
	"slotwise/services/booking"
	"slotwise/services/notification"
	"slotwise/services/scheduling"
	"slotwise/services/user"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	stRepo := settingsRepo.NewMongoSettingsRepo()
	usRepo := userRepoPkg.NewMongoUserRepo()

	// Scheduling engine anchored to the fixed reference timezone.
	engine, err := scheduling.NewEngine(
		config.AppConfig.ReferenceTimezone,
		config.AppConfig.ReferenceUTCOffsetMin,
		config.AppConfig.HorizonDays,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize scheduling engine: %v", err)
	}

	// Notification queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	notifier := notification.NewAsynqNotifier(asynqClient)
	cron.InitNotificationWorker()

	// Services.
	userService := &user.DefaultUserService{Repo: usRepo}
	bookingService := &booking.DefaultBookingSessionService{
		Repo:         bkRepo,
		SettingsRepo: stRepo,
		Engine:       engine,
		Payment:      booking.NewPaymentHandler(logger),
		Notifier:     notifier,
		Sessions:     booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		User:     handlers.NewUserHandler(userService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Settings: handlers.NewSettingsHandler(stRepo),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
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
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
