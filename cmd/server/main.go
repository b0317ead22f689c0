package main

import (
	"log"

	"github.com/contest-hub/backend/internal/cache"
	"github.com/contest-hub/backend/internal/config"
	"github.com/contest-hub/backend/internal/database"
	"github.com/contest-hub/backend/internal/handler"
	"github.com/contest-hub/backend/internal/journal"
	"github.com/contest-hub/backend/internal/middleware"
	"github.com/contest-hub/backend/internal/models"
	"github.com/contest-hub/backend/internal/payments"
	"github.com/contest-hub/backend/internal/repository"
	"github.com/contest-hub/backend/internal/service"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	// Payment journal (append-only audit trail)
	paymentJournal, err := journal.New(cfg.PaymentLogPath)
	if err != nil {
		log.Fatalf("Failed to open payment journal: %v", err)
	}
	defer paymentJournal.Close()

	// Redis-backed contest cache
	contestCache, err := cache.NewRedisContestCache(cfg.RedisURL, cfg.ContestCacheTTL)
	if err != nil {
		log.Fatalf("Failed to initialize contest cache: %v", err)
	}
	defer contestCache.Close()

	// Payment gateway
	gateway := payments.NewStripeGateway(cfg.StripeSecretKey)

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	contestRepo := repository.NewContestRepository(database.DB)
	submissionRepo := repository.NewSubmissionRepository(database.DB)
	paymentRepo := repository.NewPaymentRepository(database.DB)

	// Services
	userService := service.NewUserService(userRepo)
	contestService := service.NewContestService(contestRepo, contestCache)
	submissionService := service.NewSubmissionService(submissionRepo)
	paymentService := service.NewPaymentService(paymentRepo, contestRepo, gateway, paymentJournal)

	// Handlers
	tokenHandler := handler.NewTokenHandler(cfg.JWTSecret, cfg.JWTExpiry)
	userHandler := handler.NewUserHandler(userService)
	contestHandler := handler.NewContestHandler(contestService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Router
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))

	rateLimiter := middleware.NewRateLimiter(contestCache.Client(), middleware.RateLimiterConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Window:      cfg.RateLimitWindow,
	})
	router.Use(rateLimiter.Middleware())

	// Public routes
	router.GET("/", func(c *gin.Context) {
		c.String(200, "Contest Hub Server Is Running")
	})
	router.POST("/jwt", tokenHandler.Issue)
	router.POST("/users", userHandler.Create)
	router.GET("/contests", contestHandler.ListApproved)
	router.GET("/contests/:contestName", contestHandler.GetByName)
	router.GET("/contest/:id", contestHandler.GetByID)
	router.GET("/user-points/:userEmail", submissionHandler.Points)

	// Token-gated routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/contests", contestHandler.Create)
		protected.GET("/my-contests/:email", contestHandler.ListByCreator)
		protected.PUT("/contests/:id", contestHandler.Update)
		protected.DELETE("/contests/:id", contestHandler.Delete)

		protected.POST("/submission", submissionHandler.Submit)
		protected.GET("/submission", submissionHandler.ListAll)
		protected.GET("/submission/:userEmail", submissionHandler.ListByUser)
		protected.GET("/submission/:userEmail/:contestId", submissionHandler.GetOne)
		protected.PATCH("/make-winner/:submissionId", submissionHandler.MarkWinner)

		protected.POST("/create-payment-intent", paymentHandler.CreateIntent)
		protected.POST("/payment", paymentHandler.Record)
		protected.GET("/payment", paymentHandler.ListAll)
		protected.GET("/payment/:email", paymentHandler.ListByEmail)
	}

	// Admin-gated routes
	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminMiddleware(userService))
	{
		admin.GET("/users", userHandler.List)
		admin.PATCH("/users/admin/:id", userHandler.SetRole(models.RoleAdmin))
		admin.PATCH("/users/creator/:id", userHandler.SetRole(models.RoleCreator))
		admin.PATCH("/users/user/:id", userHandler.SetRole(models.RoleUser))
		admin.GET("/pending-rejected-contests", contestHandler.ListPendingOrRejected)
		admin.PATCH("/approve-contests/:id", contestHandler.Approve)
		admin.PATCH("/rejected-contests/:id", contestHandler.Reject)
	}

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
