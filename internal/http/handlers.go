package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dpcardoso/clima-proxy/internal/client"
	"github.com/dpcardoso/clima-proxy/internal/lifecycle"
	"github.com/dpcardoso/clima-proxy/internal/proxy"
)

// Handler adapts the platform-neutral proxy handler to net/http and serves
// the health endpoint.
type Handler struct {
	proxy            *proxy.Handler
	api              client.API
	logger           *zap.Logger
	healthStatusMu   sync.Mutex
	healthStatusPrev string
	// cachePing, when set, is called to check cache reachability. Used when
	// the backend is memcached.
	cachePing func() error
}

// NewHandler returns a new Handler. cachePing may be nil when no external
// cache is configured.
func NewHandler(p *proxy.Handler, api client.API, logger *zap.Logger, cachePing func() error) *Handler {
	return &Handler{
		proxy:     p,
		api:       api,
		logger:    logger,
		cachePing: cachePing,
	}
}

// GetWeather handles GET /weather?lat=..&lon=.. by translating the request
// into the proxy contract and writing the resulting Response verbatim.
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp := h.proxy.Handle(r.Context(), proxy.Request{
		QueryParams: map[string]string{
			"lat": q.Get("lat"),
			"lon": q.Get("lon"),
		},
	})

	if resp.StatusCode >= 500 {
		if logger, ok := r.Context().Value("logger").(*zap.Logger); ok && logger != nil {
			logger.Debug("proxy failure",
				zap.Int("status", resp.StatusCode),
				zap.String("body", resp.Body))
		}
	}

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}

// healthResult holds the computed health status and metadata for logging.
type healthResult struct {
	status     string
	statusCode int
	reason     string
}

// GetHealth handles GET /health.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	result := h.computeHealthStatus(r.Context())

	h.healthStatusMu.Lock()
	prev := h.healthStatusPrev
	if prev != "" && prev != result.status {
		h.logger.Info("health status transition",
			zap.String("previous_status", prev),
			zap.String("current_status", result.status),
			zap.String("reason", result.reason))
	}
	h.healthStatusPrev = result.status
	h.healthStatusMu.Unlock()

	checks := make(map[string]string)
	if result.status == "degraded" {
		checks["weatherApi"] = "unhealthy"
	} else {
		checks["weatherApi"] = "healthy"
	}
	if h.cachePing != nil {
		if h.cachePing() == nil {
			checks["cache"] = "healthy"
		} else {
			checks["cache"] = "unhealthy"
		}
	}
	resp := map[string]interface{}{
		"status":    result.status,
		"service":   "clima-proxy",
		"version":   "dev",
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// computeHealthStatus evaluates conditions in priority order:
// shutting-down > upstream unreachable > healthy.
func (h *Handler) computeHealthStatus(ctx context.Context) healthResult {
	if lifecycle.IsShuttingDown() {
		return healthResult{"shutting-down", http.StatusServiceUnavailable, "signal"}
	}
	if err := h.api.Ping(ctx); err != nil {
		return healthResult{"degraded", http.StatusServiceUnavailable, "upstream_unreachable"}
	}
	return healthResult{"healthy", http.StatusOK, ""}
}
