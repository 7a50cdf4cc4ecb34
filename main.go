// @title Best Wishes Admin API
// @version 1.0
// @description Admin and delivery portal backend for the Best Wishes store
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	_ "github.com/Sarujan100/best-wishes-final-sub001/docs"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/routes"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
)

func main() {
	config.Load()
	config.InitLogger()
	defer config.CloseLogger()

	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	if err := models.AutoMigrate(config.CmsGorm); err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := models.SeedShippingClasses(config.CmsGorm); err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Redis connection
	config.ConnectRedis()
	defer config.CloseRedis()

	services.RegisterValidators()

	// ✅ Initialize JWT Service for staff auth
	if config.App.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(config.App.JWTSecret, config.App.JWTExpiry); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	services.InitMediaStore(config.App.CloudinaryURL)
	services.InitMailer(config.App.ResendAPIKey, config.App.EmailFrom)
	services.InitEventPublisher(config.App.KafkaBrokers, config.App.KafkaTopicPrefix)
	defer func() {
		if err := services.GetEventPublisher().Close(); err != nil {
			log.Printf("⚠️  event publisher close: %v", err)
		}
	}()

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	// Realtime notifications
	hub := services.NewSocketHub(routes.AllowedOrigins())
	if config.App.RedisURL != "" {
		if err := hub.UseRedis(config.App.RedisURL); err != nil {
			log.Printf("⚠️  socket.io redis adapter unavailable, broadcasting locally: %v", err)
		}
	}
	services.SetPusher(hub)
	go hub.Serve()
	defer hub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services.GetSessionService().StartCleanupLoop(ctx, time.Hour)

	srv := &http.Server{
		Addr:              ":" + config.App.Port,
		Handler:           routes.NewRouter(hub),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server is running on http://localhost:%s", config.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  graceful shutdown failed: %v", err)
	}
	if !services.WaitBackground(10 * time.Second) {
		log.Println("⚠️  background tasks still running at exit")
	}
}
