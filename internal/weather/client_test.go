package weather

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockForecastPayload() map[string]interface{} {
	return map[string]interface{}{
		"cod": "200",
		"city": map[string]interface{}{
			"name":    "Chicago",
			"country": "US",
		},
		"list": []map[string]interface{}{
			{
				"dt": 1750000000,
				"main": map[string]interface{}{
					"temp": 21.4, "feels_like": 20.1, "humidity": 55, "pressure": 1014,
				},
				"weather": []map[string]interface{}{
					{"id": 801, "main": "Clouds", "description": "few clouds"},
				},
				"wind":       map[string]interface{}{"speed": 4.2, "deg": 250.0},
				"clouds":     map[string]interface{}{"all": 20},
				"visibility": 10000,
				"pop":        0.0,
			},
			{
				"dt": 1750010800,
				"main": map[string]interface{}{
					"temp": 19.0, "feels_like": 18.2, "humidity": 60, "pressure": 1013,
				},
				"weather": []map[string]interface{}{
					{"id": 500, "main": "Rain", "description": "light rain"},
				},
				"wind": map[string]interface{}{"speed": 5.0, "deg": 200.0},
				"pop":  0.4,
				"rain": map[string]interface{}{"3h": 0.8},
			},
		},
	}
}

func TestGetForecast(t *testing.T) {
	client := NewClient("test-key")
	httpmock.ActivateNonDefault(client.HTTPClient().GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://api.openweathermap.org/data/2.5/forecast",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Chicago", req.URL.Query().Get("q"))
			assert.Equal(t, "test-key", req.URL.Query().Get("appid"))
			assert.Equal(t, "metric", req.URL.Query().Get("units"))
			return httpmock.NewJsonResponse(200, mockForecastPayload())
		},
	)

	forecast, err := client.GetForecast(context.Background(), "Chicago")
	require.NoError(t, err)
	require.NotNil(t, forecast)

	current := forecast.Current()
	require.NotNil(t, current)
	assert.Equal(t, 21.4, current.Main.Temp)
	assert.Equal(t, "Few clouds", current.Description())
	assert.Equal(t, 801, current.ConditionID())

	upcoming := forecast.Upcoming()
	require.Len(t, upcoming, 1)
	assert.Equal(t, 0.4, upcoming[0].Pop)
	assert.Equal(t, 0.8, upcoming[0].Rain.ThreeHour)
}

func TestGetForecastErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       interface{}
	}{
		{name: "city not found", statusCode: 404, body: map[string]string{"cod": "404", "message": "city not found"}},
		{name: "invalid api key", statusCode: 401, body: map[string]string{"cod": "401", "message": "Invalid API key"}},
		{name: "server error", statusCode: 500, body: "oops"},
		{name: "empty forecast list", statusCode: 200, body: map[string]interface{}{"cod": "200", "list": []interface{}{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("test-key")
			httpmock.ActivateNonDefault(client.HTTPClient().GetClient())
			defer httpmock.DeactivateAndReset()

			httpmock.RegisterResponder("GET", "https://api.openweathermap.org/data/2.5/forecast",
				func(req *http.Request) (*http.Response, error) {
					return httpmock.NewJsonResponse(tt.statusCode, tt.body)
				},
			)

			_, err := client.GetForecast(context.Background(), "Nowhere")
			assert.Error(t, err)
		})
	}
}

func TestGetForecastMissingKey(t *testing.T) {
	client := NewClient("")
	_, err := client.GetForecast(context.Background(), "Chicago")
	assert.Error(t, err)
}
