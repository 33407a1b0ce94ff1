// Package proxy implements the platform-neutral request/response contract:
// validate lat/lon, call the upstream forecast API once, reshape the result.
// Every failure path returns a well-formed Response; nothing here panics on
// upstream input. Logging is left to the hosting adapter.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dpcardoso/clima-proxy/internal/cache"
	"github.com/dpcardoso/clima-proxy/internal/client"
	"github.com/dpcardoso/clima-proxy/internal/models"
	"github.com/dpcardoso/clima-proxy/internal/observability"
	"github.com/dpcardoso/clima-proxy/internal/validation"
)

// Request is the inbound contract: a flat map of query parameters. Only lat
// and lon are consulted.
type Request struct {
	QueryParams map[string]string
}

// Response is the outbound contract consumed by hosting adapters.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

const (
	msgMissingCoords  = "Missing 'lat' or 'lon'"
	msgLatNotNumeric  = "Latitude must be numeric."
	msgLonNotNumeric  = "Longitude must be numeric."
	msgLatOutOfRange  = "Latitude must be between -90 and 90."
	msgLonOutOfRange  = "Longitude must be between -180 and 180."
	msgBadFormat      = "Unexpected response format from weather API (missing current_weather)."
	msgUpstreamPrefix = "Error calling weather API: "
)

// Handler proxies current-weather queries. The upstream client is long-lived
// and shared across invocations; the handler itself holds no per-request
// state. cache is optional (nil bypasses it entirely) and only successful
// reports are stored.
type Handler struct {
	api       client.API
	cache     cache.Cache
	cacheName string
	cacheTTL  time.Duration
}

// NewHandler returns a Handler. c may be nil to disable caching; cacheName
// labels cache-hit metrics (e.g. "in_memory", "memcached").
func NewHandler(api client.API, c cache.Cache, cacheName string, cacheTTL time.Duration) *Handler {
	return &Handler{
		api:       api,
		cache:     c,
		cacheName: cacheName,
		cacheTTL:  cacheTTL,
	}
}

// Handle runs one invocation. Failure ordering follows the validation steps:
// missing params, lat parse, lon parse, lat range, lon range, then the
// upstream call. Non-2xx upstream responses pass through verbatim.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	coords, err := validation.ParseCoordinates(req.QueryParams["lat"], req.QueryParams["lon"])
	if err != nil {
		observability.ProxyResultsTotal.WithLabelValues("validation").Inc()
		return plainText(http.StatusBadRequest, validationMessage(err))
	}

	key := cache.Key(coords.LatRaw, coords.LonRaw)
	if h.cache != nil {
		if cached, ok, cacheErr := h.cache.Get(ctx, key); cacheErr == nil && ok {
			observability.CacheHitsTotal.WithLabelValues(h.cacheName).Inc()
			observability.ProxyResultsTotal.WithLabelValues("ok").Inc()
			return reportResponse(cached)
		}
	}

	result, err := h.api.CurrentWeather(ctx, coords.LatRaw, coords.LonRaw)
	if err != nil {
		observability.ProxyResultsTotal.WithLabelValues("transport").Inc()
		return plainText(http.StatusInternalServerError, msgUpstreamPrefix+err.Error())
	}

	if result.StatusCode < 200 || result.StatusCode >= 300 {
		observability.ProxyResultsTotal.WithLabelValues("passthrough").Inc()
		return Response{
			StatusCode: result.StatusCode,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       string(result.Body),
		}
	}

	var forecast models.ForecastResponse
	if err := json.Unmarshal(result.Body, &forecast); err != nil {
		observability.ProxyResultsTotal.WithLabelValues("bad_format").Inc()
		return plainText(http.StatusBadGateway, msgBadFormat)
	}
	cw := forecast.CurrentWeather
	if cw == nil || cw.Temperature == nil || cw.Windspeed == nil || cw.Time == nil {
		observability.ProxyResultsTotal.WithLabelValues("bad_format").Inc()
		return plainText(http.StatusBadGateway, msgBadFormat)
	}

	report := models.Report{
		Latitude:    coords.LatRaw,
		Longitude:   coords.LonRaw,
		Temperatura: *cw.Temperature,
		Vento:       *cw.Windspeed,
		Hora:        *cw.Time,
	}

	if h.cache != nil {
		_ = h.cache.Set(ctx, key, report, h.cacheTTL)
	}

	observability.ProxyResultsTotal.WithLabelValues("ok").Inc()
	return reportResponse(report)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, validation.ErrCoordinatesMissing):
		return msgMissingCoords
	case errors.Is(err, validation.ErrLatitudeNotNumeric):
		return msgLatNotNumeric
	case errors.Is(err, validation.ErrLongitudeNotNumeric):
		return msgLonNotNumeric
	case errors.Is(err, validation.ErrLatitudeOutOfRange):
		return msgLatOutOfRange
	case errors.Is(err, validation.ErrLongitudeOutOfRange):
		return msgLonOutOfRange
	}
	return msgMissingCoords
}

func reportResponse(report models.Report) Response {
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return plainText(http.StatusInternalServerError, msgUpstreamPrefix+err.Error())
	}
	return Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func plainText(status int, body string) Response {
	return Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       body,
	}
}
