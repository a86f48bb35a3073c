package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital_records/internal/config"
	"hospital_records/internal/handler"
	"hospital_records/internal/middleware"
	"hospital_records/internal/repository"
	"hospital_records/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	sessionRepo := repository.NewSessionRepository(dbPool)
	staffRepo := repository.NewStaffRepository(dbPool)
	patientRepo := repository.NewPatientRepository(dbPool)
	appointmentRepo := repository.NewAppointmentRepository(dbPool)

	// Expired sessions are dead weight; sweep them once at startup.
	if removed, err := sessionRepo.DeleteExpired(context.Background(), time.Now().UTC()); err != nil {
		log.Printf("Failed to sweep expired sessions: %v", err)
	} else if removed > 0 {
		log.Printf("Removed %d expired sessions", removed)
	}

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, sessionRepo)
	recordsService := service.NewRecordsService(staffRepo, patientRepo, appointmentRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	recordsHandler := handler.NewRecordsHandler(recordsService)

	// --- Middleware ---
	authMW := middleware.AuthMiddleware(authService)

	// --- Router ---
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hospital Management API running"})
	})

	router.GET("/health", func(c *gin.Context) {
		// Check DB connection
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	apiV1 := router.Group("/api/v1")
	authHandler.RegisterAuthRoutes(apiV1, authMW)
	recordsHandler.RegisterRecordRoutes(apiV1, authMW)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
