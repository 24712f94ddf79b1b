package main

import (
	"context"
	"log"
	"time"

	"aiquizzer/internal/config"
	"aiquizzer/internal/db"
	"aiquizzer/internal/event"
	"aiquizzer/internal/handlers"
	"aiquizzer/internal/llm"
	"aiquizzer/internal/middleware"
	"aiquizzer/internal/models"
	"aiquizzer/internal/repository"
	"aiquizzer/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	db.InitMongo(config.App.MongoURI)
	database := db.Client.Database(config.App.MongoDatabase)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if config.App.RabbitMQURI != "" && config.App.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(config.App.RabbitMQURI, config.App.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	gin.SetMode(config.App.GinMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.App.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	llmClient := llm.NewClient(config.App)

	// Repositories
	userRepo := repository.NewUserRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	quizAttemptRepo := repository.NewAttemptRepository(database, "quiz_attempts")
	challengeRepo := repository.NewChallengeRepository(database)
	challengeQuizRepo := repository.NewChallengeQuizRepository(database)
	challengeAttemptRepo := repository.NewAttemptRepository(database, "challenge_attempts")
	sessionRepo := repository.NewSessionRepository(database)
	resultRepo := repository.NewResultRepository(database)

	// Stored results expire a day after the quiz started.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := resultRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create result indexes: %v", err)
	}
	cancel()

	// Services
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	quizService := service.NewQuizService(quizRepo, quizAttemptRepo, llmClient)
	challengeService := service.NewChallengeService(challengeRepo, challengeQuizRepo, challengeAttemptRepo, userRepo, llmClient)
	adaptiveService := service.NewAdaptiveService(sessionRepo, resultRepo, llmClient)
	reportService := service.NewReportService(resultRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	quizHandler := handlers.NewQuizHandler(quizService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	adaptiveHandler := handlers.NewAdaptiveHandler(adaptiveService)
	reportHandler := handlers.NewReportHandler(reportService)
	adminHandler := handlers.NewAdminHandler(userService, quizService)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", func(c *gin.Context) {
			authHandler.Signup(c)
			if publisher != nil {
				publisher.Publish("user.signup", gin.H{"timestamp": time.Now()})
			}
		})
		auth.POST("/login", authHandler.Login)
	}

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/profile", userHandler.Profile)
		protected.PUT("/profile", userHandler.UpdateProfile)
		protected.GET("/profile/photo", userHandler.ProfilePhoto)
		protected.PUT("/profile/photo", userHandler.UpdatePhoto)
		protected.GET("/opponents", userHandler.Opponents)

		protected.GET("/quizzes", quizHandler.ListQuizzes)
		protected.GET("/quizzes/:id", quizHandler.GetQuiz)
		protected.POST("/quizzes/:id/attempts", func(c *gin.Context) {
			quizHandler.SubmitAttempt(c)
			if publisher != nil {
				publisher.Publish("quiz.attempted", gin.H{
					"quiz_id":   c.Param("id"),
					"username":  middleware.Username(c),
					"timestamp": time.Now(),
				})
			}
		})

		protected.POST("/adaptive/start", adaptiveHandler.Start)
		protected.POST("/adaptive/:token/submit", func(c *gin.Context) {
			adaptiveHandler.Submit(c)
			if publisher != nil {
				for _, key := range c.GetStringSlice("events") {
					publisher.Publish(key, gin.H{
						"token":     c.Param("token"),
						"username":  middleware.Username(c),
						"timestamp": time.Now(),
					})
				}
			}
		})
		protected.DELETE("/adaptive/:token", adaptiveHandler.Stop)

		protected.POST("/challenges", func(c *gin.Context) {
			challengeHandler.Create(c)
			if publisher != nil {
				publisher.Publish("challenge.created", gin.H{
					"username":  middleware.Username(c),
					"timestamp": time.Now(),
				})
			}
		})
		protected.GET("/challenges/pending", challengeHandler.Pending)
		protected.GET("/challenges/results", challengeHandler.Results)
		protected.GET("/challenges/:id/quiz", challengeHandler.Quiz)
		protected.POST("/challenges/:id/attempts", func(c *gin.Context) {
			challengeHandler.SubmitAttempt(c)
			if publisher != nil {
				publisher.Publish("challenge.attempted", gin.H{
					"challenge_id": c.Param("id"),
					"username":     middleware.Username(c),
					"timestamp":    time.Now(),
				})
			}
		})

		protected.GET("/reports", reportHandler.List)
		protected.GET("/reports/:id/pdf", reportHandler.ExportPDF)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/quizzes/generate", adminHandler.GenerateQuiz)
		admin.POST("/quizzes", func(c *gin.Context) {
			adminHandler.SaveQuiz(c)
			if publisher != nil {
				publisher.Publish("quiz.created", gin.H{
					"username":  middleware.Username(c),
					"timestamp": time.Now(),
				})
			}
		})
	}

	superadmin := r.Group("/superadmin")
	superadmin.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleSuperAdmin))
	{
		superadmin.GET("/users", adminHandler.PendingAdmins)
		superadmin.POST("/approve", adminHandler.Approve)
		superadmin.POST("/decline", adminHandler.Decline)
	}

	r.Run(":" + config.App.Port)
}
