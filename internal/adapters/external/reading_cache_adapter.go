package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// ReadingCacheAdapter bridges the generic CacheProvider to the ReadingCache port
type ReadingCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

func NewReadingCacheAdapter(cacheProvider ports.CacheProvider) *ReadingCacheAdapter {
	return &ReadingCacheAdapter{cacheProvider: cacheProvider}
}

func (a *ReadingCacheAdapter) Get(ctx context.Context, key string) (*ports.WeatherReadingData, error) {
	data, err := a.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var reading ports.WeatherReadingData
	if err := json.Unmarshal(data, &reading); err != nil {
		return nil, errors.NewExternalAPIError("failed to deserialize cached reading", err)
	}

	return &reading, nil
}

func (a *ReadingCacheAdapter) Set(ctx context.Context, key string, reading *ports.WeatherReadingData, ttl time.Duration) error {
	if reading == nil {
		return errors.NewValidationError("reading cannot be nil")
	}

	data, err := json.Marshal(reading)
	if err != nil {
		return errors.NewExternalAPIError("failed to serialize reading", err)
	}

	return a.cacheProvider.Set(ctx, key, data, ttl)
}

func (a *ReadingCacheAdapter) Delete(ctx context.Context, key string) error {
	return a.cacheProvider.Delete(ctx, key)
}
