package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestCurrentWeather_SendsOriginalCoordinateStrings(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current_weather":{"temperature":1,"windspeed":2,"time":"t"}}`))
	}))
	defer srv.Close()

	c, err := NewOpenMeteoClient(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewOpenMeteoClient() err = %v", err)
	}

	result, err := c.CurrentWeather(context.Background(), "40.7128", "-74.0060")
	if err != nil {
		t.Fatalf("CurrentWeather() err = %v", err)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", result.StatusCode)
	}

	if got := gotQuery.Get("latitude"); got != "40.7128" {
		t.Errorf("latitude param = %q, want original string", got)
	}
	if got := gotQuery.Get("longitude"); got != "-74.0060" {
		t.Errorf("longitude param = %q, want original string (trailing zero intact)", got)
	}
	if got := gotQuery.Get("current_weather"); got != "true" {
		t.Errorf("current_weather param = %q, want true", got)
	}
}

func TestCurrentWeather_ReturnsBodyRegardlessOfStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":true}`))
	}))
	defer srv.Close()

	c, err := NewOpenMeteoClient(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewOpenMeteoClient() err = %v", err)
	}

	result, err := c.CurrentWeather(context.Background(), "1", "2")
	if err != nil {
		t.Fatalf("CurrentWeather() err = %v, want nil for non-2xx status", err)
	}
	if result.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want 503", result.StatusCode)
	}
	if string(result.Body) != `{"error":true}` {
		t.Errorf("Body = %q, want raw upstream body", result.Body)
	}
}

func TestCurrentWeather_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c, err := NewOpenMeteoClient(addr, 1*time.Second)
	if err != nil {
		t.Fatalf("NewOpenMeteoClient() err = %v", err)
	}

	_, err = c.CurrentWeather(context.Background(), "1", "2")
	if err == nil {
		t.Fatal("CurrentWeather() err = nil, want transport error")
	}
}

func TestCurrentWeather_PropagatesCorrelationID(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Correlation-ID")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := NewOpenMeteoClient(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewOpenMeteoClient() err = %v", err)
	}

	ctx := context.WithValue(context.Background(), "correlation_id", "corr-123")
	if _, err := c.CurrentWeather(ctx, "1", "2"); err != nil {
		t.Fatalf("CurrentWeather() err = %v", err)
	}
	if gotHeader != "corr-123" {
		t.Errorf("X-Correlation-ID = %q, want corr-123", gotHeader)
	}
}

func TestCurrentWeather_RespectsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := NewOpenMeteoClient(srv.URL, 10*time.Second)
	if err != nil {
		t.Fatalf("NewOpenMeteoClient() err = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.CurrentWeather(ctx, "1", "2"); err == nil {
		t.Fatal("CurrentWeather() err = nil, want context deadline error")
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := NewOpenMeteoClient(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewOpenMeteoClient() err = %v", err)
	}
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping() err = %v, want nil", err)
	}
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c, err := NewOpenMeteoClient(addr, 1*time.Second)
	if err != nil {
		t.Fatalf("NewOpenMeteoClient() err = %v", err)
	}
	if err := c.Ping(context.Background()); err == nil {
		t.Error("Ping() err = nil, want transport error")
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "success"},
		{204, "success"},
		{400, "client_error"},
		{429, "rate_limited"},
		{500, "server_error"},
		{503, "server_error"},
		{100, "error"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.code); got != tt.want {
			t.Errorf("statusLabel(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
