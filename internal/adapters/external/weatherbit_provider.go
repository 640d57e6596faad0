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

const defaultWeatherBitURL = "https://api.weatherbit.io/v2.0"

// WeatherBitProviderAdapter implements WeatherProvider port for WeatherBit
type WeatherBitProviderAdapter struct {
	apiKey  string
	baseURL string
	http    *providerClient
}

// WeatherBitProviderParams holds parameters for creating WeatherBit provider
type WeatherBitProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Breaker BreakerSettings
	Logger  ports.Logger
}

type weatherBitResponse struct {
	Count int `json:"count"`
	Data  []struct {
		CityName    string  `json:"city_name"`
		CountryCode string  `json:"country_code"`
		Lon         float64 `json:"lon"`
		Lat         float64 `json:"lat"`
		Temp        float64 `json:"temp"`
		Pres        float64 `json:"pres"`
		RH          float64 `json:"rh"`
		TS          int64   `json:"ts"`
	} `json:"data"`
}

// NewWeatherBitProviderAdapter creates a new WeatherBit provider adapter
func NewWeatherBitProviderAdapter(params WeatherBitProviderParams) *WeatherBitProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultWeatherBitURL
	}

	return &WeatherBitProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newProviderClient(weather.ProviderWeatherBit.String(), params.Client, params.Breaker, params.Logger),
	}
}

// GetCurrentWeather retrieves the current reading for a city from WeatherBit
func (p *WeatherBitProviderAdapter) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	query := url.Values{}
	query.Set("city", city)
	query.Set("key", p.apiKey)

	var apiResp weatherBitResponse
	status, err := p.http.getJSON(ctx, fmt.Sprintf("%s/current?%s", p.baseURL, query.Encode()), &apiResp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, p.http.statusError(status, city)
	}
	if len(apiResp.Data) == 0 {
		return nil, p.http.statusError(http.StatusNoContent, city)
	}

	obs := apiResp.Data[0]
	timestamp := time.Now().UTC()
	if obs.TS > 0 {
		timestamp = time.Unix(obs.TS, 0).UTC()
	}

	return &ports.WeatherData{
		Provider:     p.GetProviderName(),
		ReportedCity: obs.CityName,
		CountryCode:  obs.CountryCode,
		Longitude:    obs.Lon,
		Latitude:     obs.Lat,
		Temperature:  obs.Temp,
		Pressure:     obs.Pres,
		Humidity:     obs.RH,
		Timestamp:    timestamp,
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *WeatherBitProviderAdapter) GetProviderName() string {
	return weather.ProviderWeatherBit.String()
}

// BreakerState reports the circuit breaker state for provider info
func (p *WeatherBitProviderAdapter) BreakerState() string {
	return p.http.state()
}
