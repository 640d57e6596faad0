package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// JobKind distinguishes per-subscription notification jobs from shared refresh jobs
type JobKind string

const (
	JobKindNotification JobKind = "notification"
	JobKindRefresh      JobKind = "refresh"
)

// Action names dispatched by the job executor
const (
	ActionSendEmail      = "send_email_task"
	ActionRefreshWeather = "get_weather_task"
)

// DefaultTimezone is the zone every job cadence is evaluated in unless configured otherwise
const DefaultTimezone = "Europe/Kiev"

// JobKey is the stable composite identity of a job.
// Refresh jobs are shared by all subscribers of a city, so their UserID is zero.
type JobKey struct {
	Kind     JobKind
	UserID   uint
	CityID   uint
	Provider string
}

// NotificationKey builds the key of the notification job owned by one subscription
func NotificationKey(userID, cityID uint, provider string) JobKey {
	return JobKey{Kind: JobKindNotification, UserID: userID, CityID: cityID, Provider: provider}
}

// RefreshKey builds the key of the refresh job shared by a (city, provider) pair
func RefreshKey(cityID uint, provider string) JobKey {
	return JobKey{Kind: JobKindRefresh, CityID: cityID, Provider: provider}
}

// String renders the key for logs and metric labels only
func (k JobKey) String() string {
	if k.Kind == JobKindRefresh {
		return fmt.Sprintf("%s/city=%d/%s", k.Kind, k.CityID, k.Provider)
	}
	return fmt.Sprintf("%s/user=%d/city=%d/%s", k.Kind, k.UserID, k.CityID, k.Provider)
}

func (k JobKey) toData() ports.JobKeyData {
	return ports.JobKeyData{
		Kind:     string(k.Kind),
		UserID:   k.UserID,
		CityID:   k.CityID,
		Provider: k.Provider,
	}
}

// KeyFromData converts a stored key back into a JobKey
func KeyFromData(d ports.JobKeyData) JobKey {
	return JobKey{Kind: JobKind(d.Kind), UserID: d.UserID, CityID: d.CityID, Provider: d.Provider}
}

// Cadence holds crontab fields plus the zone they are evaluated in
type Cadence struct {
	Minute      string
	Hour        string
	DayOfWeek   string
	DayOfMonth  string
	MonthOfYear string
	Timezone    string
}

// CadenceForPeriod returns the cadence of a notification job firing every periodHours hours on the hour
func CadenceForPeriod(periodHours int, timezone string) (Cadence, error) {
	hour := ""
	switch periodHours {
	case 1:
		hour = "*"
	case 3, 6, 12:
		hour = fmt.Sprintf("*/%d", periodHours)
	default:
		return Cadence{}, errors.NewValidationError(fmt.Sprintf("unsupported period: %d hours", periodHours))
	}

	return Cadence{
		Minute:      "0",
		Hour:        hour,
		DayOfWeek:   "*",
		DayOfMonth:  "*",
		MonthOfYear: "*",
		Timezone:    zoneOrDefault(timezone),
	}, nil
}

// RefreshCadence returns the fixed hourly cadence of refresh jobs
func RefreshCadence(timezone string) Cadence {
	c, _ := CadenceForPeriod(1, timezone)
	return c
}

// CadenceOf extracts the cadence stored on a job
func CadenceOf(job *ports.JobData) Cadence {
	return Cadence{
		Minute:      job.Minute,
		Hour:        job.Hour,
		DayOfWeek:   job.DayOfWeek,
		DayOfMonth:  job.DayOfMonth,
		MonthOfYear: job.MonthOfYear,
		Timezone:    job.Timezone,
	}
}

// Spec renders the five-field crontab expression: minute hour day-of-month month day-of-week
func (c Cadence) Spec() string {
	return strings.Join([]string{c.Minute, c.Hour, c.DayOfMonth, c.MonthOfYear, c.DayOfWeek}, " ")
}

// Schedule parses the cadence into a cron schedule evaluated in the cadence's zone
func (c Cadence) Schedule() (cron.Schedule, error) {
	zone := zoneOrDefault(c.Timezone)
	if _, err := time.LoadLocation(zone); err != nil {
		return nil, errors.NewConfigurationError("unknown timezone "+zone, err)
	}

	schedule, err := cron.ParseStandard("CRON_TZ=" + zone + " " + c.Spec())
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid cadence %q: %v", c.Spec(), err))
	}
	return schedule, nil
}

func (c Cadence) applyTo(job *ports.JobData) {
	job.Minute = c.Minute
	job.Hour = c.Hour
	job.DayOfWeek = c.DayOfWeek
	job.DayOfMonth = c.DayOfMonth
	job.MonthOfYear = c.MonthOfYear
	job.Timezone = c.Timezone
}

func zoneOrDefault(zone string) string {
	if strings.TrimSpace(zone) == "" {
		return DefaultTimezone
	}
	return zone
}
