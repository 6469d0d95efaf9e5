package main

import (
	"fmt"
	"log"

	aigenHandlers "github.com/architect/medquiz/internal/aigen/handlers"
	aigenServices "github.com/architect/medquiz/internal/aigen/services"
	"github.com/architect/medquiz/internal/common/database"
	commonHandlers "github.com/architect/medquiz/internal/common/handlers"
	"github.com/architect/medquiz/internal/common/health"
	"github.com/architect/medquiz/internal/common/middleware"
	examHandlers "github.com/architect/medquiz/internal/exam/handlers"
	examModels "github.com/architect/medquiz/internal/exam/models"
	progressHandlers "github.com/architect/medquiz/internal/progress/handlers"
	progressModels "github.com/architect/medquiz/internal/progress/models"
	quizHandlers "github.com/architect/medquiz/internal/quiz/handlers"
	quizModels "github.com/architect/medquiz/internal/quiz/models"
	userHandlers "github.com/architect/medquiz/internal/users/handlers"
	userModels "github.com/architect/medquiz/internal/users/models"
	"github.com/architect/medquiz/pkg/config"
	"github.com/architect/medquiz/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database (SQLite for development, PostgreSQL for production)
	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.GetDB().AutoMigrate(
		&userModels.User{},
		&userModels.DailyUsage{},
		&quizModels.Question{},
		&quizModels.AnswerRecord{},
		&progressModels.ProgressRecord{},
		&progressModels.StudySession{},
		&examModels.ExamSession{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// AI generation stays disabled without an API key
	aigenServices.Configure(cfg.OpenAI)

	// Create Gin engine
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())

	// Initialize health checker with database instance
	healthChecker := health.NewHealthChecker(database.GetDB(), "1.0.0")

	// Health check endpoints (production-grade)
	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/metrics", healthHandler.Metrics)
	router.GET("/health/detailed", healthHandler.Detailed)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Question catalog and adaptive practice
		questionsGroup := v1.Group("/questions")
		{
			questionsGroup.GET("", quizHandlers.ListQuestions)
			questionsGroup.GET("/categories", quizHandlers.GetCategories)
			questionsGroup.GET("/adaptive", middleware.AuthRequired(), quizHandlers.GetAdaptiveQuestions)
			questionsGroup.GET("/limit", middleware.AuthRequired(), quizHandlers.GetDailyLimit)
			questionsGroup.POST("/answer", middleware.AuthRequired(), quizHandlers.SubmitAnswer)
			questionsGroup.POST("", middleware.AuthRequired(), quizHandlers.CreateQuestion)
			questionsGroup.GET("/:id", quizHandlers.GetQuestion)
		}

		// Progress and analytics
		progressGroup := v1.Group("/progress")
		{
			progressGroup.GET("", middleware.AuthRequired(), progressHandlers.GetProgress)
			progressGroup.GET("/analytics", middleware.AuthRequired(), progressHandlers.GetAnalytics)
			progressGroup.GET("/analytics/subcategories", middleware.AuthRequired(), progressHandlers.GetSubcategoryAnalytics)
			progressGroup.GET("/sessions", middleware.AuthRequired(), progressHandlers.GetStudySessions)
			progressGroup.POST("/sessions/finish", middleware.AuthRequired(), progressHandlers.FinishSession)
		}

		// Exam sessions, including qualifying sessions toward the full bank
		examGroup := v1.Group("/exams")
		{
			examGroup.POST("", middleware.AuthRequired(), examHandlers.StartExam)
			examGroup.GET("", middleware.AuthRequired(), examHandlers.ListExams)
			examGroup.GET("/unlock-status", middleware.AuthRequired(), examHandlers.GetUnlockStatus)
			examGroup.GET("/:id/questions", middleware.AuthRequired(), examHandlers.GetExamQuestions)
			examGroup.POST("/:id/answer", middleware.AuthRequired(), examHandlers.SubmitExamAnswer)
			examGroup.POST("/:id/complete", middleware.AuthRequired(), examHandlers.CompleteExam)
			examGroup.GET("/:id/review", middleware.AuthRequired(), examHandlers.ReviewExam)
		}

		// AI question generation
		aiGroup := v1.Group("/ai")
		{
			aiGroup.POST("/generate", middleware.AuthRequired(), aigenHandlers.GenerateQuestions)
			aiGroup.GET("/usage", middleware.AuthRequired(), aigenHandlers.GetAIUsage)
		}

		// User profile
		usersGroup := v1.Group("/users")
		{
			usersGroup.GET("/profile", middleware.AuthRequired(), userHandlers.GetProfile)
			usersGroup.PUT("/profile", middleware.AuthRequired(), userHandlers.UpdateProfile)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting medquiz server", zap.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
