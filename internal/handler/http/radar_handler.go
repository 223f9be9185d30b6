package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/value-radar-service/internal/apperr"
	"github.com/cypherlabdev/value-radar-service/internal/models"
	"github.com/cypherlabdev/value-radar-service/internal/service"
	syncpkg "github.com/cypherlabdev/value-radar-service/internal/sync"
)

const (
	defaultListLimit = 100
	maxListLimit     = 200
)

// RadarHandler exposes the sync/analyze triggers and the read-side queries
type RadarHandler struct {
	analyzer     *service.AnalysisService
	query        *service.QueryService
	orchestrator *syncpkg.Orchestrator
	defaultLimit int
	maxLimit     int
	logger       zerolog.Logger
}

// NewRadarHandler creates the API handler. defaultLimit and maxLimit bound
// the sync trigger's page size.
func NewRadarHandler(
	analyzer *service.AnalysisService,
	query *service.QueryService,
	orchestrator *syncpkg.Orchestrator,
	defaultLimit, maxLimit int,
	logger zerolog.Logger,
) *RadarHandler {
	if defaultLimit <= 0 {
		defaultLimit = 30
	}
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &RadarHandler{
		analyzer:     analyzer,
		query:        query,
		orchestrator: orchestrator,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger.With().Str("component", "radar_handler").Logger(),
	}
}

// RegisterRoutes mounts the API under /api/v1
func (h *RadarHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sync", h.handleSync)
		r.Post("/analyze", h.handleAnalyze)
		r.Get("/matches", h.handleListMatches)
		r.Get("/matches/{matchID}", h.handleGetMatch)
	})
}

type syncRequest struct {
	Cursor *string `json:"cursor"`
	Limit  *int    `json:"limit"`
}

// handleSync triggers one sync page and returns the orchestrator result
// verbatim.
func (h *RadarHandler) handleSync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.errorResponse(w, http.StatusBadRequest, "malformed JSON body")
			return
		}
	}

	limit := h.defaultLimit
	if req.Limit != nil {
		if *req.Limit < 1 || *req.Limit > h.maxLimit {
			h.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(h.maxLimit))
			return
		}
		limit = *req.Limit
	}

	result, err := h.orchestrator.Run(r.Context(), req.Cursor, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}

type analyzePayloadRequest struct {
	MatchID       string   `json:"match_id"`
	MarketType    string   `json:"market_type"`
	Side          string   `json:"side"`
	OpenOdds      *float64 `json:"open_odds"`
	CurrentOdds   float64  `json:"current_odds"`
	ModelProb     float64  `json:"model_prob"`
	Confidence    float64  `json:"confidence"`
	PublicPercent *float64 `json:"public_percent"`
	CashPercent   *float64 `json:"cash_percent"`
	Volatility    *float64 `json:"volatility"`
}

type analyzeRefRequest struct {
	MatchID    string `json:"match_id"`
	MarketType string `json:"market_type"`
	Side       string `json:"side"`
}

type analyzeRequest struct {
	Payload *analyzePayloadRequest `json:"payload"`
	Ref     *analyzeRefRequest     `json:"ref"`
}

// handleAnalyze accepts either a fully specified payload or a stored-key
// reference, mutually exclusive.
func (h *RadarHandler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	if (req.Payload == nil) == (req.Ref == nil) {
		h.errorResponse(w, http.StatusBadRequest, "exactly one of payload or ref is required")
		return
	}

	var (
		snap *models.AnalysisSnapshot
		err  error
	)
	if req.Payload != nil {
		payload, verr := req.Payload.validate()
		if verr != nil {
			h.writeError(w, verr)
			return
		}
		snap, err = h.analyzer.SaveFromPayload(r.Context(), payload)
	} else {
		matchID, marketType, side, verr := req.Ref.validate()
		if verr != nil {
			h.writeError(w, verr)
			return
		}
		snap, err = h.analyzer.AnalyzeFromStore(r.Context(), matchID, marketType, side)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, snap)
}

func (p *analyzePayloadRequest) validate() (service.AnalyzePayload, error) {
	matchID, err := uuid.Parse(p.MatchID)
	if err != nil {
		return service.AnalyzePayload{}, apperr.New(apperr.KindValidation, "match_id must be a well-formed identifier")
	}
	if !models.ValidMarketType(p.MarketType) {
		return service.AnalyzePayload{}, apperr.New(apperr.KindValidation, "unknown market_type %q", p.MarketType)
	}
	if !models.ValidSide(p.Side) {
		return service.AnalyzePayload{}, apperr.New(apperr.KindValidation, "unknown side %q", p.Side)
	}
	if p.CurrentOdds <= 0 {
		return service.AnalyzePayload{}, apperr.New(apperr.KindValidation, "current_odds must be positive")
	}
	if p.ModelProb < 0 || p.ModelProb > 1 {
		return service.AnalyzePayload{}, apperr.New(apperr.KindValidation, "model_prob must be within [0,1]")
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return service.AnalyzePayload{}, apperr.New(apperr.KindValidation, "confidence must be within [0,1]")
	}
	if p.Volatility != nil && (*p.Volatility < 0 || *p.Volatility > 1) {
		return service.AnalyzePayload{}, apperr.New(apperr.KindValidation, "volatility must be within [0,1]")
	}
	if p.PublicPercent != nil && (*p.PublicPercent < 0 || *p.PublicPercent > 100) {
		return service.AnalyzePayload{}, apperr.New(apperr.KindValidation, "public_percent must be within [0,100]")
	}
	if p.CashPercent != nil && (*p.CashPercent < 0 || *p.CashPercent > 100) {
		return service.AnalyzePayload{}, apperr.New(apperr.KindValidation, "cash_percent must be within [0,100]")
	}

	return service.AnalyzePayload{
		MatchID:       matchID,
		MarketType:    models.MarketType(p.MarketType),
		Side:          models.Side(p.Side),
		OpenOdds:      p.OpenOdds,
		CurrentOdds:   p.CurrentOdds,
		ModelProb:     p.ModelProb,
		Confidence:    p.Confidence,
		PublicPercent: p.PublicPercent,
		CashPercent:   p.CashPercent,
		Volatility:    p.Volatility,
	}, nil
}

func (ref *analyzeRefRequest) validate() (uuid.UUID, models.MarketType, models.Side, error) {
	matchID, err := uuid.Parse(ref.MatchID)
	if err != nil {
		return uuid.Nil, "", "", apperr.New(apperr.KindValidation, "match_id must be a well-formed identifier")
	}
	if !models.ValidMarketType(ref.MarketType) {
		return uuid.Nil, "", "", apperr.New(apperr.KindValidation, "unknown market_type %q", ref.MarketType)
	}
	if !models.ValidSide(ref.Side) {
		return uuid.Nil, "", "", apperr.New(apperr.KindValidation, "unknown side %q", ref.Side)
	}
	return matchID, models.MarketType(ref.MarketType), models.Side(ref.Side), nil
}

// handleListMatches handles GET /api/v1/matches?league=&date=&limit=
func (h *RadarHandler) handleListMatches(w http.ResponseWriter, r *http.Request) {
	filter := models.MatchFilter{Limit: defaultListLimit}

	if league := r.URL.Query().Get("league"); league != "" {
		filter.League = &league
	}
	if date := r.URL.Query().Get("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		filter.Date = &day
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxListLimit {
			h.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxListLimit))
			return
		}
		filter.Limit = limit
	}

	matches, err := h.query.ListMatches(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count":   len(matches),
		"matches": matches,
	})
}

// handleGetMatch handles GET /api/v1/matches/{matchID}
func (h *RadarHandler) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "matchID must be a well-formed identifier")
		return
	}

	details, err := h.query.GetMatchDetails(r.Context(), matchID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, details)
}

// writeError maps the error taxonomy onto HTTP statuses. Full detail is
// logged server-side; the response only carries the message itself.
func (h *RadarHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindProvider:
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("request failed")
	} else {
		h.logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	h.errorResponse(w, status, err.Error())
}

// jsonResponse writes a JSON response
func (h *RadarHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *RadarHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
