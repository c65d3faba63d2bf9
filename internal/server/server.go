// Package server exposes the quoting engine and the pricing configuration
// over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"signquote/internal/quote"
)

// ConfigStore loads and saves the pricing configuration.
type ConfigStore interface {
	LoadPricing(ctx context.Context) (quote.PricingConfig, error)
	SavePricing(ctx context.Context, cfg quote.PricingConfig) error
}

// BudgetNotifier forwards a finished budget text to the shop admins.
type BudgetNotifier interface {
	BudgetReady(text string)
}

type Server struct {
	store    ConfigStore
	notifier BudgetNotifier
	logger   *zap.Logger
	router   chi.Router
}

func New(store ConfigStore, notifier BudgetNotifier, logger *zap.Logger) *Server {
	s := &Server{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/quote", s.handleQuote)
		r.Post("/budget/text", s.handleBudgetText)
		r.Get("/config", s.handleGetConfig)
		r.Put("/config", s.handlePutConfig)
		r.Get("/config/export", s.handleExportConfig)
	})
	s.router = r
	return s
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
