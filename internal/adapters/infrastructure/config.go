package infrastructure

import (
	"time"

	"weatherreminder.app/internal/config"
	"weatherreminder.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetAppConfig returns application configuration
func (c *ConfigProviderAdapter) GetAppConfig() ports.AppConfig {
	return ports.AppConfig{
		BaseURL: c.config.AppBaseURL,
	}
}

// GetDatabaseConfig returns database configuration
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	db := c.config.Database
	return ports.DatabaseConfig{
		Host:     db.Host,
		Port:     db.Port,
		User:     db.User,
		Password: db.Password,
		Name:     db.Name,
		SSLMode:  db.SSLMode,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetWeatherConfig returns weather configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	w := c.config.Weather
	return ports.WeatherConfig{
		EnableCache:    w.EnableCache,
		CacheTTL:       time.Duration(w.CacheTTLMinutes) * time.Minute,
		RequestTimeout: w.HTTPTimeout(),
	}
}

// GetEmailConfig returns email configuration
func (c *ConfigProviderAdapter) GetEmailConfig() ports.EmailConfig {
	e := c.config.Email
	return ports.EmailConfig{
		SMTPHost:     e.SMTPHost,
		SMTPPort:     e.SMTPPort,
		SMTPUsername: e.SMTPUsername,
		SMTPPassword: e.SMTPPassword,
		FromName:     e.FromName,
		FromAddress:  e.FromAddress,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:  c.config.Cache.Type.String(),
		Redis: redisConfig(c.config.Cache.Redis),
	}
}

// GetSchedulerConfig returns scheduler configuration
func (c *ConfigProviderAdapter) GetSchedulerConfig() ports.SchedulerConfig {
	s := c.config.Scheduler
	return ports.SchedulerConfig{
		Enabled:        s.Enabled,
		Timezone:       s.Timezone,
		ResyncInterval: time.Duration(s.ResyncSeconds) * time.Second,
	}
}

// GetLockConfig returns key locker configuration
func (c *ConfigProviderAdapter) GetLockConfig() ports.LockConfig {
	return ports.LockConfig{
		Type: c.config.Lock.Type.String(),
		TTL:  time.Duration(c.config.Lock.TTLSeconds) * time.Second,
	}
}

func redisConfig(r config.RedisConfig) ports.RedisConfig {
	return ports.RedisConfig{
		Addr:         r.Addr,
		Password:     r.Password,
		DB:           r.DB,
		DialTimeout:  r.DialTimeout,
		ReadTimeout:  r.ReadTimeout,
		WriteTimeout: r.WriteTimeout,
	}
}
