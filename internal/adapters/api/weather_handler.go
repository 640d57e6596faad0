package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/pkg/errors"
)

// ReadingResponse represents the stored reading of a (city, provider) pair
type ReadingResponse struct {
	CityID       uint      `json:"city_id"`
	Provider     string    `json:"provider"`
	ReportedCity string    `json:"reported_city"`
	CountryCode  string    `json:"country_code"`
	Longitude    float64   `json:"longitude"`
	Latitude     float64   `json:"latitude"`
	Temperature  float64   `json:"temperature"`
	Pressure     float64   `json:"pressure"`
	Humidity     float64   `json:"humidity"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// getReading handles GET /api/readings?city_id=&provider= requests
func (s *HTTPServerAdapter) getReading(c *gin.Context) {
	cityID, err := strconv.ParseUint(c.Query("city_id"), 10, 64)
	if err != nil || cityID == 0 {
		s.handleError(c, errors.NewValidationError("city_id parameter must be a positive integer"))
		return
	}

	provider := weather.ProviderFromString(c.Query("provider"))
	if !provider.IsValid() {
		s.handleError(c, errors.NewValidationError("provider parameter must be OpenWeatherMap or WeatherBit"))
		return
	}

	reading, err := s.weatherUseCase.GetReading(c.Request.Context(), uint(cityID), provider)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReadingResponse{
		CityID:       reading.CityID,
		Provider:     reading.Provider.String(),
		ReportedCity: reading.ReportedCity,
		CountryCode:  reading.CountryCode,
		Longitude:    reading.Longitude,
		Latitude:     reading.Latitude,
		Temperature:  reading.Temperature,
		Pressure:     reading.Pressure,
		Humidity:     reading.Humidity,
		UpdatedAt:    reading.UpdatedAt,
	})
}

// getProviders handles GET /api/providers requests
func (s *HTTPServerAdapter) getProviders(c *gin.Context) {
	c.JSON(http.StatusOK, s.weatherUseCase.GetProviderInfo())
}
