// Command localtest invokes the proxy handler once without an HTTP server,
// the way a hosting platform would. Coordinates come from positional args
// and default to New York City.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dpcardoso/clima-proxy/internal/client"
	"github.com/dpcardoso/clima-proxy/internal/proxy"
)

func main() {
	lat := "40.7128"
	lon := "-74.0060"
	if len(os.Args) > 1 {
		lat = os.Args[1]
	}
	if len(os.Args) > 2 {
		lon = os.Args[2]
	}

	apiURL := os.Getenv("WEATHER_API_URL")
	if apiURL == "" {
		apiURL = "https://api.open-meteo.com/v1/forecast"
	}

	weatherClient, err := client.NewOpenMeteoClient(apiURL, 10*time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "weather client: %v\n", err)
		os.Exit(1)
	}

	handler := proxy.NewHandler(weatherClient, nil, "", 0)
	resp := handler.Handle(context.Background(), proxy.Request{
		QueryParams: map[string]string{"lat": lat, "lon": lon},
	})

	fmt.Printf("Status: %d\n", resp.StatusCode)
	keys := make([]string, 0, len(resp.Headers))
	for k := range resp.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, resp.Headers[k])
	}
	fmt.Println()
	fmt.Println(resp.Body)
}
