package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"horror-oracle/internal/adapter"
	"horror-oracle/internal/adapter/llm"
	"horror-oracle/internal/affect"
	"horror-oracle/internal/cache"
	"horror-oracle/internal/config"
	"horror-oracle/internal/domain"
	"horror-oracle/internal/evaluator"
	"horror-oracle/internal/generator"
	"horror-oracle/internal/handler"
	"horror-oracle/internal/logger"
	"horror-oracle/internal/middleware"
	"horror-oracle/internal/narrative"
	"horror-oracle/internal/orchestrator"
	"horror-oracle/internal/profilestore"
	"horror-oracle/internal/recommender"
	"horror-oracle/internal/repository"
	"horror-oracle/internal/retriever"
	"horror-oracle/internal/reward"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Generation backends, in fallback order. Either tier may be absent;
	// the engine runs fully offline on the static pools.
	var backends []domain.GenerationBackend
	if cfg.LLM.ServerURL != "" {
		ollamaBackend, err := llm.NewOllamaBackend(cfg.LLM.ServerURL, cfg.LLM.Model, cfg.LLM.Timeout)
		if err != nil {
			appLogger.Warn("Ollama backend unavailable, skipping tier", zap.Error(err))
		} else {
			appLogger.Info("Ollama backend initialized",
				zap.String("server_url", cfg.LLM.ServerURL),
				zap.String("model", cfg.LLM.Model))
			backends = append(backends, ollamaBackend)
		}
	}
	if cfg.LLM.OpenAIKey != "" {
		openaiBackend, err := llm.NewOpenAIBackend(cfg.LLM.OpenAIKey, cfg.LLM.OpenAIModel, cfg.LLM.Timeout)
		if err != nil {
			appLogger.Warn("OpenAI backend unavailable, skipping tier", zap.Error(err))
		} else {
			appLogger.Info("OpenAI backend initialized", zap.String("model", cfg.LLM.OpenAIModel))
			backends = append(backends, openaiBackend)
		}
	}
	if len(backends) == 0 {
		appLogger.Info("No generation backends configured, running on static fallbacks")
	}

	// Knowledge retriever: embedded vector index when configured, static
	// keyword corpus otherwise.
	var knowledge domain.KnowledgeRetriever
	if cfg.Retriever.VectorIndex && cfg.LLM.ServerURL != "" {
		vectorRetriever, err := retriever.NewVectorRetriever(context.Background(), cfg.Retriever.EmbeddingModel, cfg.LLM.ServerURL)
		if err != nil {
			appLogger.Warn("Vector index unavailable, using static corpus", zap.Error(err))
			knowledge = retriever.NewStaticRetriever()
		} else {
			appLogger.Info("Vector index initialized", zap.String("embedding_model", cfg.Retriever.EmbeddingModel))
			knowledge = vectorRetriever
		}
	} else {
		knowledge = retriever.NewStaticRetriever()
	}

	// Profile storage: SQLite with an in-memory fallback.
	var profileRepo domain.ProfileRepository
	var db *sqlx.DB
	db, err = repository.NewSQLiteDB(cfg.Storage.SQLitePath)
	if err != nil {
		appLogger.Warn("SQLite unavailable, profiles will not survive restarts", zap.Error(err))
		db = nil
		profileRepo = repository.NewMemoryProfileAdapter()
	} else {
		appLogger.Info("SQLite profile store initialized", zap.String("path", cfg.Storage.SQLitePath))
		profileRepo = repository.NewProfileDatabaseAdapter(db)
	}

	// Session cache: Redis with an in-memory fallback.
	var sessionCache domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, sessions held in memory", zap.Error(err))
		sessionCache = adapter.NewMemoryCacheAdapter()
	} else {
		appLogger.Info("Successfully connected to Redis")
		sessionCache = adapter.NewRedisCacheAdapter(redisClient)
	}

	// Engine services
	engine := orchestrator.New(
		generator.New(knowledge, backends...),
		evaluator.New(backends...),
		affect.New(),
		reward.New(backends...),
		profilestore.New(profileRepo),
		recommender.New(backends...),
		narrative.New(),
		sessionCache,
		cfg.Engine,
	)
	appLogger.Info("Oracle engine initialized")

	// Initialize handlers
	oracleHandler := handler.NewOracleHandler(engine)
	healthHandler := handler.NewHealthHandler(sessionCache, db)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/health", healthHandler.Check)

	// API group
	apiGroup := app.Group("/api")
	oracleGroup := apiGroup.Group("/oracle")
	oracleGroup.Post("/quiz/start", oracleHandler.StartQuiz)
	oracleGroup.Post("/quiz/submit", oracleHandler.SubmitAnswers)
	oracleGroup.Get("/profile/:userID", oracleHandler.GetProfile)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if db != nil {
		if err := db.Close(); err != nil {
			appLogger.Warn("Failed to close database", zap.Error(err))
		}
	}
	appLogger.Info("Server exited gracefully")
}
