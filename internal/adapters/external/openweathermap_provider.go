package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

const defaultOpenWeatherMapURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	http    *providerClient
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Breaker BreakerSettings
	Logger  ports.Logger
}

type openWeatherMapResponse struct {
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Main struct {
		Temp     float64 `json:"temp"`
		Pressure float64 `json:"pressure"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapURL
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newProviderClient(weather.ProviderOpenWeatherMap.String(), params.Client, params.Breaker, params.Logger),
	}
}

// GetCurrentWeather retrieves the current reading for a city from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")

	var apiResp openWeatherMapResponse
	status, err := p.http.getJSON(ctx, fmt.Sprintf("%s/weather?%s", p.baseURL, query.Encode()), &apiResp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, p.http.statusError(status, city)
	}

	timestamp := time.Now().UTC()
	if apiResp.Dt > 0 {
		timestamp = time.Unix(apiResp.Dt, 0).UTC()
	}

	return &ports.WeatherData{
		Provider:     p.GetProviderName(),
		ReportedCity: apiResp.Name,
		CountryCode:  apiResp.Sys.Country,
		Longitude:    apiResp.Coord.Lon,
		Latitude:     apiResp.Coord.Lat,
		Temperature:  apiResp.Main.Temp,
		Pressure:     apiResp.Main.Pressure,
		Humidity:     apiResp.Main.Humidity,
		Timestamp:    timestamp,
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return weather.ProviderOpenWeatherMap.String()
}

// BreakerState reports the circuit breaker state for provider info
func (p *OpenWeatherMapProviderAdapter) BreakerState() string {
	return p.http.state()
}
