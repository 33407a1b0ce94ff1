package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dpcardoso/clima-proxy/internal/observability"
)

// API is the upstream weather provider contract consumed by the proxy.
type API interface {
	CurrentWeather(ctx context.Context, lat, lon string) (Result, error)
	Ping(ctx context.Context) error
}

// Result carries the upstream status code and raw body. The proxy decides
// what to do with non-2xx responses, so no status is an error here; errors
// are reserved for transport failures.
type Result struct {
	StatusCode int
	Body       []byte
}

// OpenMeteoClient calls the Open-Meteo forecast endpoint. The embedded
// http.Client is created once and reused across requests so connection
// pooling survives between invocations.
type OpenMeteoClient struct {
	baseURL string
	client  *http.Client
}

// NewOpenMeteoClient creates a client for the given forecast endpoint URL.
func NewOpenMeteoClient(baseURL string, timeout time.Duration) (*OpenMeteoClient, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}
	return &OpenMeteoClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// CurrentWeather issues GET <base>?latitude=<lat>&longitude=<lon>&current_weather=true.
// lat and lon are the caller's original strings; they are never reformatted
// from parsed floats, so the upstream sees exactly what the caller sent.
func (c *OpenMeteoClient) CurrentWeather(ctx context.Context, lat, lon string) (Result, error) {
	start := time.Now()

	req, err := c.buildRequest(ctx, lat, lon)
	if err != nil {
		observability.UpstreamCallsTotal.WithLabelValues("error").Inc()
		return Result{}, fmt.Errorf("build request: %w", err)
	}

	corrID := extractCorrelationID(ctx)
	if corrID != "" {
		req.Header.Set("X-Correlation-ID", corrID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		duration := time.Since(start).Seconds()
		observability.UpstreamCallsTotal.WithLabelValues("error").Inc()
		observability.UpstreamDuration.WithLabelValues("error").Observe(duration)
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.UpstreamCallsTotal.WithLabelValues("error").Inc()
		return Result{}, fmt.Errorf("read response body: %w", err)
	}

	duration := time.Since(start).Seconds()
	status := statusLabel(resp.StatusCode)
	observability.UpstreamCallsTotal.WithLabelValues(status).Inc()
	observability.UpstreamDuration.WithLabelValues(status).Observe(duration)

	return Result{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *OpenMeteoClient) buildRequest(ctx context.Context, lat, lon string) (*http.Request, error) {
	baseURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	params := url.Values{}
	params.Set("latitude", lat)
	params.Set("longitude", lon)
	params.Set("current_weather", "true")
	baseURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", baseURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Ping checks upstream reachability for health reporting. Any HTTP response
// counts as reachable; only transport failures return an error.
func (c *OpenMeteoClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := c.buildRequest(ctx, "0", "0")
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ping request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

func extractCorrelationID(ctx context.Context) string {
	if corrIDVal := ctx.Value("correlation_id"); corrIDVal != nil {
		if corrID, ok := corrIDVal.(string); ok {
			return corrID
		}
	}
	return ""
}

func statusLabel(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "success"
	}
	if statusCode == 429 {
		return "rate_limited"
	}
	if statusCode >= 400 && statusCode < 500 {
		return "client_error"
	}
	if statusCode >= 500 {
		return "server_error"
	}
	return "error"
}
