package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"signquote/internal/quote"
	"signquote/internal/storage"
)

type quoteRequest struct {
	Input      quote.QuoteInput         `json:"entrada"`
	Surcharges quote.SurchargeSelection `json:"acrescimos"`
}

type budgetTextRequest struct {
	quoteRequest
	DeliveryDays int    `json:"prazo_dias"`
	Note         string `json:"observacao"`
	Notify       bool   `json:"notificar"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, detail string) {
	s.writeJSON(w, status, errorResponse{Error: code, Detail: detail})
}

// pricing returns the saved configuration, falling back to the documented
// defaults when nothing has been saved yet.
func (s *Server) pricing(ctx context.Context) (quote.PricingConfig, error) {
	cfg, err := s.store.LoadPricing(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return quote.DefaultPricing(), nil
	}
	return cfg, err
}

// compute runs one quote for a request body, mapping each failure mode to
// its HTTP status. A false second return means a response was written.
func (s *Server) compute(w http.ResponseWriter, r *http.Request, req quoteRequest) (quote.QuoteResult, bool) {
	cfg, err := s.pricing(r.Context())
	if err != nil {
		s.logger.Error("Failed to load pricing config", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "storage_error", "could not load pricing configuration")
		return quote.QuoteResult{}, false
	}

	res, err := quote.ComputeQuote(req.Input, req.Surcharges, cfg)
	if err != nil {
		var cfgErr *quote.ConfigError
		if errors.As(err, &cfgErr) {
			// A broken price table is repairable by the admin; it is not the
			// same as an incomplete quote.
			s.writeError(w, http.StatusUnprocessableEntity, "config_error", cfgErr.Error())
			return quote.QuoteResult{}, false
		}
		s.writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return quote.QuoteResult{}, false
	}
	return res, true
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	res, ok := s.compute(w, r, req)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleBudgetText(w http.ResponseWriter, r *http.Request) {
	var req budgetTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	res, ok := s.compute(w, r, req.quoteRequest)
	if !ok {
		return
	}

	text := quote.FormatBudgetText(req.Input, res, quote.BudgetOptions{
		DeliveryDays: req.DeliveryDays,
		Note:         req.Note,
	})

	if req.Notify && res.Valid && s.notifier != nil {
		s.notifier.BudgetReady(text)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.pricing(r.Context())
	if err != nil {
		s.logger.Error("Failed to load pricing config", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "storage_error", "could not load pricing configuration")
		return
	}
	s.writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg quote.PricingConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	if err := cfg.Validate(); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, "config_error", err.Error())
		return
	}

	if err := s.store.SavePricing(r.Context(), cfg); err != nil {
		s.logger.Error("Failed to save pricing config", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "storage_error", "could not save pricing configuration")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExportConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.pricing(r.Context())
	if err != nil {
		s.logger.Error("Failed to load pricing config", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "storage_error", "could not load pricing configuration")
		return
	}

	f, err := storage.ExportPriceTable(cfg)
	if err != nil {
		s.logger.Error("Failed to build price table export", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "export_error", "could not build price table")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="tabela_precos.xlsx"`)
	if err := f.Write(w); err != nil {
		s.logger.Error("Failed to stream price table export", zap.Error(err))
	}
}
