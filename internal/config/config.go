package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherreminder.app/pkg/errors"
)

const (
	maxRedisDB             = 15
	maxCacheTTLMinutes     = 1440
	maxPortNumber          = 65535
	maxHTTPTimeoutSeconds  = 120
	lockLeaseMarginSeconds = 10
	maxResyncSeconds       = 3600
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig    `split_words:"true"`
	Database   DatabaseConfig  `split_words:"true"`
	Weather    WeatherConfig   `split_words:"true"`
	Email      EmailConfig     `split_words:"true"`
	Scheduler  SchedulerConfig `split_words:"true"`
	Cache      CacheConfig     `split_words:"true"`
	Lock       LockConfig      `split_words:"true"`
	Log        LogConfig       `split_words:"true"`
	AppBaseURL string          `envconfig:"APP_URL" default:"http://localhost:8080"`
}

// LogConfig controls the process-wide slog handler
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"weatherreminder"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"weatherreminder.db"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	WeatherBitKey         string `envconfig:"WEATHERBIT_API_KEY"`
	WeatherBitBaseURL     string `envconfig:"WEATHERBIT_API_BASE_URL" default:"https://api.weatherbit.io/v2.0"`
	HTTPTimeoutSeconds    int    `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	BreakerFailures       uint32 `envconfig:"WEATHER_BREAKER_FAILURES" default:"5"`
	BreakerOpenSeconds    int    `envconfig:"WEATHER_BREAKER_OPEN_SECONDS" default:"60"`
	EnableCache           bool   `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	CacheTTLMinutes       int    `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"10"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
}

// HTTPTimeout returns the per-request timeout of provider calls
func (w WeatherConfig) HTTPTimeout() time.Duration {
	return time.Duration(w.HTTPTimeoutSeconds) * time.Second
}

// BackendType selects the implementation behind the cache and lock ports
type BackendType int

const (
	BackendTypeUnknown BackendType = iota
	BackendTypeMemory
	BackendTypeRedis
)

// String returns the string representation of backend type
func (b BackendType) String() string {
	switch b {
	case BackendTypeMemory:
		return "memory"
	case BackendTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the backend type is valid
func (b BackendType) IsValid() bool {
	return b == BackendTypeMemory || b == BackendTypeRedis
}

// BackendTypeFromString converts string to BackendType enum
func BackendTypeFromString(s string) BackendType {
	switch s {
	case "memory":
		return BackendTypeMemory
	case "redis":
		return BackendTypeRedis
	default:
		return BackendTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (b *BackendType) UnmarshalText(text []byte) error {
	*b = BackendTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (b BackendType) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

type CacheConfig struct {
	Type  BackendType `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// LockConfig selects the key locker serializing lifecycle operations per (city, provider).
// A Redis lease is never extended, so LOCK_TTL_SECONDS must outlast a subscribe,
// which includes one provider call of up to WEATHER_HTTP_TIMEOUT_SECONDS.
type LockConfig struct {
	Type       BackendType `envconfig:"LOCK_TYPE" default:"memory"`
	TTLSeconds int         `envconfig:"LOCK_TTL_SECONDS" default:"30"`
}

type EmailConfig struct {
	SMTPHost     string `envconfig:"EMAIL_SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"EMAIL_SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"EMAIL_SMTP_USERNAME"`
	SMTPPassword string `envconfig:"EMAIL_SMTP_PASSWORD"`
	FromName     string `envconfig:"EMAIL_FROM_NAME" default:"Weather Reminder"`
	FromAddress  string `envconfig:"EMAIL_FROM_ADDRESS" default:"no-reply@weatherreminder.app"`
}

type SchedulerConfig struct {
	Enabled       bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	Timezone      string `envconfig:"SCHEDULER_TIMEZONE" default:"Europe/Kiev"`
	ResyncSeconds int    `envconfig:"SCHEDULER_RESYNC_SECONDS" default:"30"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	validators := []func() error{
		c.Server.Validate,
		c.Database.Validate,
		c.Weather.Validate,
		c.Email.Validate,
		c.Scheduler.Validate,
		c.Cache.Validate,
		c.Lock.Validate,
		c.Log.Validate,
		c.validateAppBaseURL,
		c.validateLockLease,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	if c.Lock.Type == BackendTypeRedis && c.Cache.Type != BackendTypeRedis {
		if err := c.Cache.Redis.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateLockLease() error {
	if c.Lock.Type != BackendTypeRedis {
		return nil
	}
	minTTL := c.Weather.HTTPTimeoutSeconds + lockLeaseMarginSeconds
	if c.Lock.TTLSeconds < minTTL {
		return errors.NewConfigurationError(fmt.Sprintf(
			"LOCK_TTL_SECONDS must be at least %d (WEATHER_HTTP_TIMEOUT_SECONDS + %d) for redis locks",
			minTTL, lockLeaseMarginSeconds), nil)
	}
	return nil
}

func (c *Config) validateAppBaseURL() error {
	if c.AppBaseURL == "" {
		return errors.NewConfigurationError("APP_URL cannot be empty", nil)
	}
	if !isHTTPURL(c.AppBaseURL) {
		return errors.NewConfigurationError("APP_URL must start with http:// or https://", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapKey == "" && w.WeatherBitKey == "" {
		return errors.NewConfigurationError("at least one weather provider API key must be configured", nil)
	}

	if w.OpenWeatherMapKey != "" && !isHTTPURL(w.OpenWeatherMapBaseURL) {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.WeatherBitKey != "" && !isHTTPURL(w.WeatherBitBaseURL) {
		return errors.NewConfigurationError("WEATHERBIT_API_BASE_URL must start with http:// or https://", nil)
	}

	if w.HTTPTimeoutSeconds < 1 || w.HTTPTimeoutSeconds > maxHTTPTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.BreakerFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_FAILURES must be at least 1", nil)
	}
	if w.BreakerOpenSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_OPEN_SECONDS must be at least 1", nil)
	}
	if w.CacheTTLMinutes < 1 || w.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == BackendTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LockConfig) Validate() error {
	if !l.Type.IsValid() {
		return errors.NewConfigurationError("LOCK_TYPE must be one of: memory, redis", nil)
	}
	if l.TTLSeconds < 1 {
		return errors.NewConfigurationError("LOCK_TTL_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	return nil
}

func (e *EmailConfig) Validate() error {
	if e.SMTPHost == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_HOST cannot be empty", nil)
	}
	if e.SMTPPort < 1 || e.SMTPPort > maxPortNumber {
		return errors.NewConfigurationError("EMAIL_SMTP_PORT must be between 1 and 65535", nil)
	}
	if (e.SMTPUsername == "") != (e.SMTPPassword == "") {
		return errors.NewConfigurationError("EMAIL_SMTP_USERNAME and EMAIL_SMTP_PASSWORD must both be provided or both be empty", nil)
	}
	if e.FromName == "" {
		return errors.NewConfigurationError("EMAIL_FROM_NAME cannot be empty", nil)
	}
	if !strings.Contains(e.FromAddress, "@") {
		return errors.NewConfigurationError("EMAIL_FROM_ADDRESS must be a valid email address", nil)
	}
	return nil
}

func (s *SchedulerConfig) Validate() error {
	if strings.TrimSpace(s.Timezone) == "" {
		return errors.NewConfigurationError("SCHEDULER_TIMEZONE cannot be empty", nil)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return errors.NewConfigurationError("SCHEDULER_TIMEZONE is not a known zone", err)
	}
	if s.ResyncSeconds < 1 || s.ResyncSeconds > maxResyncSeconds {
		return errors.NewConfigurationError("SCHEDULER_RESYNC_SECONDS must be between 1 and 3600", nil)
	}
	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
