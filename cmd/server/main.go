package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Olabomi/CashDey-sub001/internal/ai"
	"github.com/Olabomi/CashDey-sub001/internal/config"
	"github.com/Olabomi/CashDey-sub001/internal/database"
	"github.com/Olabomi/CashDey-sub001/internal/handlers"
	"github.com/Olabomi/CashDey-sub001/internal/payments"
	"github.com/Olabomi/CashDey-sub001/internal/storage"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	repo := database.NewRepository(db)

	store, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	aiClient, err := ai.NewClient(context.Background(), cfg.AI.GeminiAPIKey, cfg.AI.Model)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize AI client")
	}

	payClient := payments.NewClient(payments.DefaultBaseURL, cfg.Paystack.SecretKey)

	h, err := handlers.New(repo, store, aiClient, payClient, cfg.Premium, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize handlers")
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(handlers.RequestLogger(logger))

	// Receipt images
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))

	// API - Users
	r.Get("/api/users", h.ListUsers)
	r.Post("/api/users", h.CreateUser)
	r.Post("/api/users/select", h.SelectUser)
	r.Patch("/api/users/{id}/balance", h.UpdateInitialBalance)

	// API - Transactions
	r.Post("/api/transactions", h.CreateTransaction)
	r.Get("/api/transactions/recent", h.GetRecentTransactions)
	r.Get("/api/transactions/{id}", h.GetTransaction)
	r.Patch("/api/transactions/{id}/confirm", h.ConfirmTransaction)
	r.Delete("/api/transactions/{id}", h.DeleteTransaction)

	// API - Receipts
	r.Post("/api/receipts", h.UploadReceipt)
	r.Get("/api/receipts/{id}", h.GetTransaction)

	// API - Goals
	r.Post("/api/goals", h.CreateGoal)
	r.Get("/api/goals", h.ListGoals)
	r.Get("/api/goals/{id}", h.GetGoal)
	r.Post("/api/goals/{id}/deposit", h.DepositToGoal)
	r.Patch("/api/goals/{id}", h.UpdateGoal)
	r.Delete("/api/goals/{id}", h.DeleteGoal)

	// API - Dashboard
	r.Get("/api/dashboard/survival", h.DashboardSurvival)
	r.Get("/api/dashboard/survival/last", h.DashboardSurvivalLast)
	r.Get("/api/dashboard/weekly", h.DashboardWeekly)
	r.Get("/api/dashboard/monthly", h.DashboardMonthly)

	// API - Chat
	r.Post("/api/chat", h.Chat)
	r.Post("/api/chat/accept", h.AcceptGoalSuggestion)

	// API - Subscription
	r.Post("/api/subscribe", h.Subscribe)
	r.Get("/api/subscribe/verify", h.VerifySubscription)
	r.Get("/api/subscribe/status", h.SubscriptionStatus)
	r.Post("/webhooks/paystack", h.PaystackWebhook)

	logger.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
