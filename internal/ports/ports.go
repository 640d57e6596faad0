// Package ports defines the interfaces for external dependencies in our hexagonal architecture.
// These interfaces are implemented by adapters and mocked for testing.
//
//go:generate mockery
package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Persistence
	Transactions           TransactionManager
	UserRepository         UserRepository
	CityRepository         CityRepository
	SubscriptionRepository SubscriptionRepository
	WeatherRepository      WeatherReadingRepository
	JobStore               JobStore

	// Weather
	WeatherSource WeatherSource
	ReadingCache  ReadingCache

	// Communication
	EmailProvider EmailProvider

	// Concurrency
	KeyLocker KeyLocker

	// Cache
	CacheMetrics CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsRecorder
	Database       interface{}
}
