package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/pkg/errors"
)

func setMinimalEnv(t *testing.T) {
	t.Setenv("OPENWEATHERMAP_API_KEY", "owm-key")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "owm-key", cfg.Weather.OpenWeatherMapKey)
	assert.Equal(t, "https://api.weatherbit.io/v2.0", cfg.Weather.WeatherBitBaseURL)
	assert.Equal(t, BackendTypeMemory, cfg.Cache.Type)
	assert.Equal(t, BackendTypeMemory, cfg.Lock.Type)
	assert.Equal(t, "Europe/Kiev", cfg.Scheduler.Timezone)
	assert.Equal(t, 30, cfg.Scheduler.ResyncSeconds)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("WEATHERBIT_API_KEY", "wb-key")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("LOCK_TYPE", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SCHEDULER_TIMEZONE", "UTC")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "wb-key", cfg.Weather.WeatherBitKey)
	assert.Equal(t, BackendTypeRedis, cfg.Cache.Type)
	assert.Equal(t, BackendTypeRedis, cfg.Lock.Type)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, "UTC", cfg.Scheduler.Timezone)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"NoProviderKeys", map[string]string{"OPENWEATHERMAP_API_KEY": ""}},
		{"UnknownTimezone", map[string]string{"SCHEDULER_TIMEZONE": "Mars/Olympus"}},
		{"ResyncTooLong", map[string]string{"SCHEDULER_RESYNC_SECONDS": "7200"}},
		{"UnknownCache", map[string]string{"CACHE_TYPE": "memcached"}},
		{"UnknownLock", map[string]string{"LOCK_TYPE": "zookeeper"}},
		{"BadLockTTL", map[string]string{"LOCK_TTL_SECONDS": "0"}},
		{"RedisLockLeaseTooShort", map[string]string{"LOCK_TYPE": "redis", "REDIS_ADDR": "redis:6379", "LOCK_TTL_SECONDS": "12"}},
		{"BadDriver", map[string]string{"DB_DRIVER": "mysql"}},
		{"BadSSLMode", map[string]string{"DB_SSL_MODE": "sometimes"}},
		{"BadAppURL", map[string]string{"APP_URL": "localhost:8080"}},
		{"HalfSMTPAuth", map[string]string{"EMAIL_SMTP_USERNAME": "user"}},
		{"BadLogLevel", map[string]string{"LOG_LEVEL": "trace"}},
		{"BadBreaker", map[string]string{"WEATHER_BREAKER_FAILURES": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setMinimalEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

func TestConfig_RedisLockRequiresRedisSettings(t *testing.T) {
	cfg := &Config{
		AppBaseURL: "http://localhost:8080",
		Server:     ServerConfig{Port: 8080},
		Database:   DatabaseConfig{Driver: "sqlite", SQLitePath: "test.db"},
		Weather: WeatherConfig{
			WeatherBitKey: "k", WeatherBitBaseURL: "http://wb", HTTPTimeoutSeconds: 5,
			BreakerFailures: 1, BreakerOpenSeconds: 1, CacheTTLMinutes: 1,
		},
		Email:     EmailConfig{SMTPHost: "smtp", SMTPPort: 25, FromName: "n", FromAddress: "a@b.c"},
		Scheduler: SchedulerConfig{Timezone: "UTC", ResyncSeconds: 10},
		Cache:     CacheConfig{Type: BackendTypeMemory},
		Lock:      LockConfig{Type: BackendTypeRedis, TTLSeconds: 30},
		Log:       LogConfig{Level: "info", Format: "json"},
	}

	err := cfg.Validate()
	assert.True(t, errors.IsConfigurationError(err), "empty redis settings must be rejected")

	cfg.Cache.Redis = RedisConfig{Addr: "redis:6379", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
	assert.NoError(t, cfg.Validate())
}

func TestConfig_RedisLockLeaseOutlastsProviderCall(t *testing.T) {
	tests := []struct {
		name     string
		lockType BackendType
		ttl      int
		timeout  int
		valid    bool
	}{
		{"RedisDefaults", BackendTypeRedis, 30, 10, true},
		{"RedisAtBound", BackendTypeRedis, 25, 15, true},
		{"RedisTooShort", BackendTypeRedis, 15, 10, false},
		{"MemoryIgnoresTTL", BackendTypeMemory, 1, 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Weather: WeatherConfig{HTTPTimeoutSeconds: tt.timeout},
				Lock:    LockConfig{Type: tt.lockType, TTLSeconds: tt.ttl},
			}

			err := cfg.validateLockLease()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), "LOCK_TTL_SECONDS must be at least 20")
		})
	}
}

func TestBackendType(t *testing.T) {
	assert.Equal(t, BackendTypeRedis, BackendTypeFromString("redis"))
	assert.Equal(t, BackendTypeUnknown, BackendTypeFromString("etcd"))
	assert.False(t, BackendTypeUnknown.IsValid())
	assert.Equal(t, "memory", BackendTypeMemory.String())

	var b BackendType
	require.NoError(t, b.UnmarshalText([]byte("redis")))
	assert.Equal(t, BackendTypeRedis, b)
}
