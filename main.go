package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayhaven/config"
	"stayhaven/cron"
	"stayhaven/database"
	bookingRepoPkg "stayhaven/database/repository/booking"
	houseRepoPkg "stayhaven/database/repository/house"
	reviewRepoPkg "stayhaven/database/repository/review"
	userRepoPkg "stayhaven/database/repository/user"
	"stayhaven/handlers"
	"stayhaven/routes"
	"stayhaven/services/booking"
	"stayhaven/services/notification"
	"stayhaven/services/payment"
	"stayhaven/services/review"
	"stayhaven/services/storage"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const razorpayTimeoutSeconds = 10

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := storage.NewCloudinaryStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	houseRepo := houseRepoPkg.NewMongoHouseRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	gateway := payment.NewRazorpayGateway(
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
		razorpayTimeoutSeconds,
	)

	dispatcher := &notification.AsynqDispatcher{
		Client: cron.NewQueueClient(),
		Logger: logger,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		HouseRepo:  houseRepo,
		Gateway:    gateway,
		Dispatcher: dispatcher,
		Logger:     logger,
	}

	reviewService := &review.DefaultReviewService{
		Reviews:  reviewRepo,
		Bookings: bookingRepo,
		Houses:   houseRepo,
		Logger:   logger,
	}

	notificationService := &notification.DefaultNotificationService{
		Users:  userRepo,
		Logger: logger,
	}
	cron.InitNotificationWorker(notificationService)

	// Background sweep promoting stale confirmed bookings to completed.
	reconcilerCtx, stopReconciler := context.WithCancel(context.Background())
	defer stopReconciler()
	interval := time.Duration(config.AppConfig.ReconcilerIntervalHours) * time.Hour
	go booking.StartReconciler(reconcilerCtx, bookingService, interval, logger)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Review:  handlers.NewReviewHandler(reviewService, logger),
		House:   handlers.NewHouseHandler(houseRepo, logger),
		Storage: handlers.NewStorageHandler(storageService, houseRepo, logger),
		User:    handlers.NewUserHandler(userRepo, logger),
	}

	// Register routes with the assembled handler bundle.
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

	stopReconciler()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
