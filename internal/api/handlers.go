package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mohamedkhairy/ta-engine/internal/indicator"
	indicatorpkg "github.com/mohamedkhairy/ta-engine/pkg/indicator"
	"github.com/mohamedkhairy/ta-engine/pkg/logger"
	"github.com/mohamedkhairy/ta-engine/pkg/ta"
	"github.com/mohamedkhairy/ta-engine/pkg/ta/candle"
)

// maxBodyBytes bounds a compute request body
const maxBodyBytes = 64 << 20

// IndicatorHandler handles indicator and candle settings endpoints
type IndicatorHandler struct {
	engine *indicator.Engine
}

// NewIndicatorHandler creates a new indicator handler
func NewIndicatorHandler(engine *indicator.Engine) *IndicatorHandler {
	return &IndicatorHandler{engine: engine}
}

// RegisterRoutes mounts the handler under /api/v1
func (h *IndicatorHandler) RegisterRoutes(router *mux.Router) {
	v1 := router.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/indicators", h.ListIndicators).Methods("GET")
	v1.HandleFunc("/indicators/{name}", h.GetIndicator).Methods("GET")
	v1.HandleFunc("/indicators/{name}", h.Compute).Methods("POST")
	v1.HandleFunc("/indicators/{name}/lookback", h.GetLookback).Methods("GET")

	v1.HandleFunc("/candle-settings", h.GetCandleSettings).Methods("GET")
	v1.HandleFunc("/candle-settings/reset", h.ResetCandleSettings).Methods("POST")
	v1.HandleFunc("/candle-settings/{kind}", h.UpdateCandleSetting).Methods("PUT")
}

// NewRouter creates a router serving the indicator API
func NewRouter(engine *indicator.Engine) *mux.Router {
	router := mux.NewRouter()
	router.Use(mux.MiddlewareFunc(MetricsMiddleware()))
	router.NotFoundHandler = MetricsMiddleware()(http.HandlerFunc(notFound))
	router.MethodNotAllowedHandler = MetricsMiddleware()(http.HandlerFunc(methodNotAllowed))

	NewIndicatorHandler(engine).RegisterRoutes(router)
	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// ListIndicators handles GET /api/v1/indicators
func (h *IndicatorHandler) ListIndicators(w http.ResponseWriter, r *http.Request) {
	defs := h.engine.Indicators()

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"indicators": defs,
		"count":      len(defs),
	})
}

// GetIndicator handles GET /api/v1/indicators/{name}
func (h *IndicatorHandler) GetIndicator(w http.ResponseWriter, r *http.Request) {
	def, err := h.engine.Definition(mux.Vars(r)["name"])
	if err != nil {
		respondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, def)
}

// GetLookback handles GET /api/v1/indicators/{name}/lookback?period=&penetration=
func (h *IndicatorHandler) GetLookback(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	opts, err := parseOptions(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	lookback, err := h.engine.Lookback(name, opts)
	if err != nil {
		respondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	if lookback < 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid options")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"indicator": name,
		"lookback":  lookback,
	})
}

// computeRequest is the body of a compute call. A missing end_idx
// selects the last bar.
type computeRequest struct {
	Series   ta.Series            `json:"series"`
	StartIdx int                  `json:"start_idx"`
	EndIdx   *int                 `json:"end_idx"`
	Options  indicatorpkg.Options `json:"options"`
}

// Compute handles POST /api/v1/indicators/{name}
func (h *IndicatorHandler) Compute(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var body computeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req := indicator.Request{
		Indicator: name,
		Series:    body.Series,
		StartIdx:  body.StartIdx,
		EndIdx:    body.Series.Len() - 1,
		Options:   body.Options,
	}
	if body.EndIdx != nil {
		req.EndIdx = *body.EndIdx
	}

	result, err := h.engine.Compute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, indicatorpkg.ErrUnknownIndicator), errors.Is(err, indicator.ErrDisabled):
			respondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, indicator.ErrTooManyBars):
			respondWithError(w, http.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respondWithError(w, http.StatusServiceUnavailable, "Request cancelled")
		default:
			respondWithError(w, http.StatusInternalServerError, "Computation failed")
		}
		return
	}

	if result.Status != ta.Success {
		respondWithJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  result.Status.Err().Error(),
			"code":   http.StatusUnprocessableEntity,
			"status": result.Status,
		})
		return
	}

	// Only the computed prefix of the output buffer is returned
	if result.Real != nil {
		result.Real = result.Real[:result.ElementCount]
	}
	if result.Integer != nil {
		result.Integer = result.Integer[:result.ElementCount]
	}

	respondWithJSON(w, http.StatusOK, result)
}

// GetCandleSettings handles GET /api/v1/candle-settings
func (h *IndicatorHandler) GetCandleSettings(w http.ResponseWriter, r *http.Request) {
	settings, version := h.engine.Settings().All()

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"settings": settings,
		"version":  version,
	})
}

// UpdateCandleSetting handles PUT /api/v1/candle-settings/{kind}
func (h *IndicatorHandler) UpdateCandleSetting(w http.ResponseWriter, r *http.Request) {
	kind, err := candle.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		respondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	var setting candle.Setting
	if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	version, err := h.engine.Settings().Set(kind, setting)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.WithContext(r.Context()).Info("Candle setting updated via API", logger.Stringer("kind", kind))

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"kind":    kind.String(),
		"setting": setting,
		"version": version,
	})
}

// ResetCandleSettings handles POST /api/v1/candle-settings/reset
func (h *IndicatorHandler) ResetCandleSettings(w http.ResponseWriter, r *http.Request) {
	version := h.engine.Settings().Reset()

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"version": version,
	})
}

func parseOptions(r *http.Request) (indicatorpkg.Options, error) {
	var opts indicatorpkg.Options
	query := r.URL.Query()

	if v := query.Get(indicatorpkg.OptionPeriod); v != "" {
		period, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New("period must be an integer")
		}
		opts.Period = period
	}
	if v := query.Get(indicatorpkg.OptionPenetration); v != "" {
		penetration, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New("penetration must be a number")
		}
		opts.Penetration = &penetration
	}
	return opts, nil
}
