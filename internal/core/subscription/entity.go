package subscription

import (
	"fmt"
	"time"

	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/pkg/validation"
)

// Subscription represents a user's periodic weather notification for one city and provider
type Subscription struct {
	ID        uint
	UserID    uint
	CityID    uint
	Email     string
	City      string
	Provider  weather.Provider
	Period    Period
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Period is the notification interval in hours
type Period int

const (
	PeriodUnknown  Period = 0
	PeriodHourly   Period = 1
	PeriodEvery3h  Period = 3
	PeriodEvery6h  Period = 6
	PeriodEvery12h Period = 12
)

// IsValid checks if the period is one of the supported intervals
func (p Period) IsValid() bool {
	return validation.IsValidPeriodHours(int(p))
}

// Hours returns the period as a number of hours
func (p Period) Hours() int {
	return int(p)
}

// String returns the string representation of period
func (p Period) String() string {
	if !p.IsValid() {
		return "unknown"
	}
	return fmt.Sprintf("%dh", int(p))
}

// SubscribeParams represents data required to create a subscription
type SubscribeParams struct {
	Email    string
	City     string
	Provider weather.Provider
	Period   Period
}

// ChangePeriodParams represents a period change request
type ChangePeriodParams struct {
	SubscriptionID uint
	Period         Period
}

// UnsubscribeParams identifies a subscription to remove
type UnsubscribeParams struct {
	SubscriptionID uint
}

// UnsubscribeByKeyParams identifies a subscription by its natural key
type UnsubscribeByKeyParams struct {
	Email    string
	City     string
	Provider weather.Provider
}

// DeleteCityParams identifies a city to remove with all of its subscriptions
type DeleteCityParams struct {
	CityID uint
}
