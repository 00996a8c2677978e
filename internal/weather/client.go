// Package weather fetches and analyzes OpenWeatherMap forecasts.
package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"rainbot/internal/logging"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client fetches forecasts from OpenWeatherMap
type Client struct {
	client *resty.Client
	apiKey string
}

// NewClient creates a forecast client with the given API key
func NewClient(apiKey string) *Client {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(10 * time.Second)

	return &Client{
		client: client,
		apiKey: apiKey,
	}
}

// SetBaseURL overrides the API endpoint, used in tests
func (c *Client) SetBaseURL(url string) {
	c.client.SetBaseURL(url)
}

// HTTPClient exposes the underlying transport, used in tests
func (c *Client) HTTPClient() *resty.Client {
	return c.client
}

// GetForecast fetches the 5-day/3-hour forecast for a city by name,
// in metric units.
func (c *Client) GetForecast(ctx context.Context, city string) (*Forecast, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather API key is not configured")
	}

	logging.Info("Fetching weather forecast for %s", city)

	var forecast Forecast
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": c.apiKey,
			"units": "metric",
		}).
		SetResult(&forecast).
		Get("/forecast")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast for %s: %w", city, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("forecast request for %s returned status %d", city, resp.StatusCode())
	}

	if len(forecast.List) == 0 {
		return nil, fmt.Errorf("forecast for %s contains no intervals", city)
	}

	return &forecast, nil
}
