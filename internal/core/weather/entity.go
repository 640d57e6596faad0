package weather

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Provider identifies one of the supported weather data sources
type Provider int

const (
	ProviderUnknown Provider = iota
	ProviderOpenWeatherMap
	ProviderWeatherBit
)

// Providers lists every supported provider in a fixed order
func Providers() []Provider {
	return []Provider{ProviderOpenWeatherMap, ProviderWeatherBit}
}

// String returns the canonical provider name
func (p Provider) String() string {
	switch p {
	case ProviderOpenWeatherMap:
		return "OpenWeatherMap"
	case ProviderWeatherBit:
		return "WeatherBit"
	default:
		return "unknown"
	}
}

// IsValid checks if the provider value is supported
func (p Provider) IsValid() bool {
	return p == ProviderOpenWeatherMap || p == ProviderWeatherBit
}

// ProviderFromString converts a provider name, ignoring case
func ProviderFromString(s string) Provider {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "openweathermap":
		return ProviderOpenWeatherMap
	case "weatherbit":
		return ProviderWeatherBit
	default:
		return ProviderUnknown
	}
}

// UnmarshalJSON implements json.Unmarshaler interface
func (p *Provider) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = ProviderFromString(s)
	return nil
}

// MarshalJSON implements json.Marshaler interface
func (p Provider) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalText implements encoding.TextUnmarshaler for form parsing
func (p *Provider) UnmarshalText(text []byte) error {
	*p = ProviderFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for form parsing
func (p Provider) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// City is a stored city identified by its canonical name
type City struct {
	ID   uint
	Name string
}

// Reading is the latest weather observation for a (city, provider) pair
type Reading struct {
	CityID       uint
	Provider     Provider
	ReportedCity string
	CountryCode  string
	Longitude    float64
	Latitude     float64
	Temperature  float64
	Pressure     float64
	Humidity     float64
	UpdatedAt    time.Time
}

// IsValid validates reading data
func (r *Reading) IsValid() error {
	if !r.Provider.IsValid() {
		return fmt.Errorf("unknown provider")
	}
	if r.Temperature < -273.15 {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if r.Humidity < 0 || r.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if r.Longitude < -180 || r.Longitude > 180 || r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("coordinates out of range")
	}
	return nil
}

// NormalizeCityName converts user input into the canonical city name:
// words split on whitespace or underscores, lowercased, first letter upper-cased, joined by one space.
func NormalizeCityName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '_'
	})

	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
