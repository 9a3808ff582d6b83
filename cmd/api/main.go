package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"prepmate/interview-coach/internal/config"
	"prepmate/interview-coach/internal/handlers"
	"prepmate/interview-coach/internal/jobs"
	"prepmate/interview-coach/internal/repositories"
	"prepmate/interview-coach/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := newLogger(cfg.Server.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zlog.Sync()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	zlog.Info("database connected")

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)

	// Services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("failed to create upload directory", zap.Error(err))
	}

	extractor := services.NewTextExtractor(cfg.Interview.MaxCVTextLen)

	geminiService, err := services.NewGeminiService(cfg.Gemini, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize Gemini client", zap.Error(err))
	}
	zlog.Info("Gemini client initialized",
		zap.Strings("candidate_models", cfg.Gemini.CandidateModels))

	analyzer := services.NewCVAnalyzer(userRepo, geminiService, zlog)
	statsUpdater := services.NewStatsUpdater(db, zlog)
	questionGenerator := services.NewQuestionGenerator(
		interviewRepo, geminiService, cfg.Interview.MaxQuestions, zlog)
	feedbackGenerator := services.NewFeedbackGenerator(
		interviewRepo, feedbackRepo, statsUpdater, geminiService, zlog)

	// Background cleanup of abandoned interviews
	cleanupJob := jobs.NewCleanupJob(interviewRepo, cfg.Cleanup, zlog)
	if err := cleanupJob.Start(); err != nil {
		zlog.Fatal("failed to start cleanup job", zap.Error(err))
	}

	// Handlers
	userHandler := handlers.NewUserHandler(userRepo)
	uploadHandler := handlers.NewUploadHandler(
		userRepo, storageService, extractor, analyzer, cfg.Storage.MaxFileSize)
	interviewHandler := handlers.NewInterviewHandler(
		interviewRepo, userRepo, questionGenerator, feedbackGenerator)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo)

	app := fiber.New(fiber.Config{
		AppName:      "AI Interview Coach API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/users", userHandler.HandleCreate)
	api.Get("/users/:id", userHandler.HandleGet)
	api.Post("/cv/upload", uploadHandler.HandleUpload)
	api.Post("/interviews", interviewHandler.HandleGenerate)
	api.Get("/interviews/:id", interviewHandler.HandleGet)
	api.Post("/interviews/:id/answers", interviewHandler.HandleSubmitAnswer)
	api.Post("/interviews/:id/complete", interviewHandler.HandleComplete)
	api.Get("/feedback/:id", feedbackHandler.HandleGet)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		cleanupJob.Stop()
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
