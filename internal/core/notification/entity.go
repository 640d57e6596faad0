package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/pkg/errors"
)

// Subject is the fixed subject line of every periodic weather email
const Subject = "Weather notification"

// WeatherNotification is the content of one periodic email
type WeatherNotification struct {
	Email       string
	City        string
	PeriodHours int
	Provider    weather.Provider
	CountryCode string
	Longitude   float64
	Latitude    float64
	Temperature float64
	Pressure    float64
	Humidity    float64
	UpdatedAt   time.Time
	ManageURL   string
}

// IsValid validates the notification before rendering
func (n *WeatherNotification) IsValid() error {
	if strings.TrimSpace(n.Email) == "" {
		return errors.NewValidationError("recipient email is required")
	}
	if strings.TrimSpace(n.City) == "" {
		return errors.NewValidationError("city is required")
	}
	if !n.Provider.IsValid() {
		return errors.NewValidationError("provider is required")
	}
	return nil
}

var bodyTemplate = template.Must(template.New("weather").Parse(`<h2>Weather in {{.City}}</h2>
<p>Period of notifications: every {{.PeriodHours}} hours</p><hr>
<p>Service: {{.Provider}}</p><hr>
<p>Country code: {{.CountryCode}}</p><hr>
<p>Coordinate: {{.Coordinate}}</p><hr>
<p>Temperature: {{.Temperature}} °C</p><hr>
<p>Pressure: {{.Pressure}} hPa</p><hr>
<p>Humidity: {{.Humidity}}%</p><hr>
<p style="font-size: 12px; color: #888;">Last updated: {{.UpdatedAt}}</p>
{{- if .ManageURL}}
<p style="font-size: 12px; color: #888;">Manage your subscriptions at <a href="{{.ManageURL}}">{{.ManageURL}}</a>.</p>
{{- end}}
`))

// RenderBody produces the HTML body; user supplied values are escaped
func (n *WeatherNotification) RenderBody() (string, error) {
	view := struct {
		City        string
		PeriodHours int
		Provider    string
		CountryCode string
		Coordinate  string
		Temperature string
		Pressure    string
		Humidity    string
		UpdatedAt   string
		ManageURL   string
	}{
		City:        n.City,
		PeriodHours: n.PeriodHours,
		Provider:    n.Provider.String(),
		CountryCode: n.CountryCode,
		Coordinate:  fmt.Sprintf("%g %g", n.Longitude, n.Latitude),
		Temperature: fmt.Sprintf("%.1f", n.Temperature),
		Pressure:    fmt.Sprintf("%g", n.Pressure),
		Humidity:    fmt.Sprintf("%g", n.Humidity),
		UpdatedAt:   n.UpdatedAt.UTC().Format("2006-01-02 15:04 MST"),
		ManageURL:   n.ManageURL,
	}

	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render notification body: %w", err)
	}
	return buf.String(), nil
}
