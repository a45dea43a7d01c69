package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auth_api/internal/api"
	"auth_api/internal/api/handler"
	"auth_api/internal/app/service"
	"auth_api/internal/common/security"
	"auth_api/internal/domain/repository"
	"auth_api/internal/platform/config"
	"auth_api/internal/platform/database"
	"auth_api/internal/platform/limiter"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	log.Println("Configuration loaded.")

	// 2. Initialize security primitives
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	hasher, err := security.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Could not initialize password hasher: %v", err)
	}

	// 3. Initialize Database
	db, err := database.Connect(cfg.DBConnStr)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected.")

	// 4. Initialize Redis
	rdb, err := limiter.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, tokens, hasher, cfg.PasswordMinLength)
	userService := service.NewUserService(userRepo)

	// 7. Initialize Handlers & Router
	loginLimiter := limiter.NewLoginLimiter(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow)
	authHandler := handler.NewAuthHandler(authService, loginLimiter)
	userHandler := handler.NewUserHandler(userService)
	router := api.NewRouter(tokens, authHandler, userHandler)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
