package ports

import (
	"context"
	"time"
)

// WeatherData represents a normalized reading returned by a weather provider
type WeatherData struct {
	Provider     string
	ReportedCity string
	CountryCode  string
	Longitude    float64
	Latitude     float64
	Temperature  float64
	Pressure     float64
	Humidity     float64
	Timestamp    time.Time
}

// WeatherReadingData represents the stored latest reading for a (city, provider) pair
type WeatherReadingData struct {
	ID           uint
	CityID       uint
	Provider     string
	ReportedCity string
	CountryCode  string
	Longitude    float64
	Latitude     float64
	Temperature  float64
	Pressure     float64
	Humidity     float64
	UpdatedAt    time.Time
}

// WeatherProvider defines the contract for a single weather data provider
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, city string) (*WeatherData, error)
	GetProviderName() string
}

// WeatherSource selects a configured provider by name and fetches from it
type WeatherSource interface {
	Fetch(ctx context.Context, city, provider string) (*WeatherData, error)
	GetProviderInfo() map[string]interface{}
}

// WeatherReadingRepository defines the contract for persisting the latest readings
type WeatherReadingRepository interface {
	FindByCityAndProvider(ctx context.Context, cityID uint, provider string) (*WeatherReadingData, error)
	Upsert(ctx context.Context, reading *WeatherReadingData) error
	DeleteByCityAndProvider(ctx context.Context, cityID uint, provider string) error
	DeleteByCity(ctx context.Context, cityID uint) error
}

// ReadingCache defines the contract for caching stored readings
type ReadingCache interface {
	Get(ctx context.Context, key string) (*WeatherReadingData, error)
	Set(ctx context.Context, key string, reading *WeatherReadingData, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
