// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"sat_prep_keep/internal/ai"
	"sat_prep_keep/internal/config"
	"sat_prep_keep/internal/handlers"
	"sat_prep_keep/internal/middleware"
	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/repository"
	"sat_prep_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		// 開発中は色付きの読みやすいログ
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// スキーマのマイグレーション
	if err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.QuestionAttempt{},
		&model.VocabularyCard{},
		&model.VocabAttempt{},
	); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	questionRepo := repository.NewGormQuestionRepository()
	cardRepo := repository.NewGormCardRepository()
	vocabAttemptRepo := repository.NewGormVocabAttemptRepository()
	questionAttemptRepo := repository.NewGormQuestionAttemptRepository()

	aiProvider := ai.NewProvider(&ai.Config{
		BaseURL:     config.Cfg.AI.BaseURL,
		APIKey:      config.Cfg.AI.APIKey,
		ChatModel:   config.Cfg.AI.ChatModel,
		Temperature: config.Cfg.AI.Temperature,
		Timeout:     time.Duration(config.Cfg.AI.TimeoutSeconds) * time.Second,
	})

	questionService := service.NewQuestionService(db, questionRepo)
	vocabularyService := service.NewVocabularyService(db, userRepo, cardRepo, vocabAttemptRepo)
	progressService := service.NewProgressService(db, userRepo, questionRepo, questionAttemptRepo)
	dialogService := service.NewDialogService(aiProvider)

	verifier := service.NewGoogleVerifier(config.Cfg.Auth.GoogleClientID)
	authService := service.NewAuthService(db, userRepo, verifier, &config.Cfg)

	questionHandler := handlers.NewQuestionHandler(questionService, logger)
	vocabularyHandler := handlers.NewVocabularyHandler(vocabularyService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, config.Cfg.App.RecentLimit, logger)
	dialogHandler := handlers.NewDialogHandler(dialogService, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	// --- Public routes ---
	r.Post("/auth/google", authHandler.PostGoogleLogin)

	// --- Protected routes (require user context) ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.UserAuthMiddleware(&config.Cfg))

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.GetQuestions)
			r.Post("/", questionHandler.PostQuestion)
			r.Get("/random", questionHandler.GetRandomQuestion)
			r.Get("/filter-options", questionHandler.GetFilterOptions)
		})

		r.Post("/dialog", dialogHandler.PostDialog)

		r.Route("/vocabulary", func(r chi.Router) {
			r.Get("/cards", vocabularyHandler.GetCards)
			r.Get("/due-cards", vocabularyHandler.GetDueCards)
			r.Get("/stats", vocabularyHandler.GetStats)
			r.Post("/submit-attempt", vocabularyHandler.PostSubmitAttempt)
		})

		r.Route("/api/user-progress", func(r chi.Router) {
			r.Post("/submit-answer", progressHandler.PostSubmitAnswer)
			r.Get("/stats", progressHandler.GetStats)
			r.Get("/recent-attempts", progressHandler.GetRecentAttempts)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
