package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/config"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/controllers"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/logger"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/middleware"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/store"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/upload"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg)
	log := logger.Get()
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to MongoDB
	client, db, err := store.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("mongo connection failed", zap.Error(err))
	}
	log.Info("connected to MongoDB", zap.String("database", cfg.MongoDB))

	if err := store.EnsureIndexes(db); err != nil {
		log.Fatal("index creation failed", zap.Error(err))
	}

	uploader, err := upload.NewCloudinary(cfg.CloudinaryURL, cfg.CloudinaryFolder)
	if err != nil {
		log.Fatal("cloudinary init failed", zap.Error(err))
	}

	users := store.NewMongoUserStore(db)
	places := store.NewMongoPlaceStore(db)
	bookings := store.NewMongoBookingStore(db)

	authCtl := controllers.NewAuthController(users, cfg.JWTSecret, cfg.BcryptCost, log)
	placeCtl := controllers.NewPlaceController(places, log)
	bookingCtl := controllers.NewBookingController(bookings, places, log)
	uploadCtl := controllers.NewUploadController(uploader, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "hihihihi")
	})

	// Legacy local uploads; the active upload flow goes through Cloudinary.
	router.Static("/uploads", cfg.UploadsDir)

	api := router.Group("/api")
	{
		api.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, "test ok")
		})

		api.POST("/register", authCtl.Register)
		api.POST("/login", authCtl.Login)
		api.GET("/profile", authCtl.Profile)
		api.POST("/logout", authCtl.Logout)

		api.POST("/upload-by-link", uploadCtl.UploadByLink)
		api.POST("/upload", uploadCtl.Upload)

		api.GET("/places", placeCtl.ListAll)
		api.GET("/places/:id", placeCtl.GetByID)

		// cancellation takes no session; see the decision log
		api.POST("/cancel-booking", bookingCtl.Cancel)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			protected.POST("/places", placeCtl.Create)
			protected.GET("/user-places", placeCtl.ListMine)
			protected.PUT("/places", placeCtl.Update)
			protected.POST("/bookings", bookingCtl.Create)
			protected.GET("/bookings", bookingCtl.ListMine)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine for graceful shutdown
	go func() {
		log.Info("server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("server forced to shutdown", zap.Error(err))
	}

	if err := client.Disconnect(ctx); err != nil {
		log.Warn("error disconnecting MongoDB", zap.Error(err))
	}

	log.Info("server exited")
}
