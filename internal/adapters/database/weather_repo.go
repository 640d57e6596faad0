package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// WeatherReadingModel represents the latest stored reading of a (city, provider) pair
type WeatherReadingModel struct {
	ID           uint   `gorm:"primaryKey"`
	CityID       uint   `gorm:"not null;uniqueIndex:idx_reading_city_provider"`
	Provider     string `gorm:"size:32;not null;uniqueIndex:idx_reading_city_provider"`
	ReportedCity string `gorm:"size:255"`
	CountryCode  string `gorm:"size:8"`
	Longitude    float64
	Latitude     float64
	Temperature  float64
	Pressure     float64
	Humidity     float64
	UpdatedAt    time.Time
}

func (WeatherReadingModel) TableName() string {
	return "weather_readings"
}

// WeatherReadingRepositoryAdapter implements the WeatherReadingRepository port using GORM
type WeatherReadingRepositoryAdapter struct {
	db *gorm.DB
}

// NewWeatherReadingRepositoryAdapter creates a new weather reading repository adapter
func NewWeatherReadingRepositoryAdapter(db *gorm.DB) ports.WeatherReadingRepository {
	return &WeatherReadingRepositoryAdapter{db: db}
}

// FindByCityAndProvider retrieves the stored reading of the pair
func (r *WeatherReadingRepositoryAdapter) FindByCityAndProvider(ctx context.Context, cityID uint, provider string) (*ports.WeatherReadingData, error) {
	var model WeatherReadingModel
	err := conn(ctx, r.db).Where("city_id = ? AND provider = ?", cityID, provider).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("weather reading not found")
		}
		return nil, errors.NewDatabaseError("failed to find weather reading", err)
	}
	return r.modelToData(&model), nil
}

// Upsert overwrites the reading of the pair in place
func (r *WeatherReadingRepositoryAdapter) Upsert(ctx context.Context, reading *ports.WeatherReadingData) error {
	if reading == nil {
		return errors.NewValidationError("weather reading cannot be nil")
	}

	model := r.dataToModel(reading)
	model.ID = 0
	if model.UpdatedAt.IsZero() {
		model.UpdatedAt = time.Now().UTC()
	}

	result := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "city_id"}, {Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"reported_city", "country_code", "longitude", "latitude",
			"temperature", "pressure", "humidity", "updated_at",
		}),
	}).Create(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to upsert weather reading", result.Error)
	}
	return nil
}

// DeleteByCityAndProvider removes one pair's reading; a missing row is not an error
func (r *WeatherReadingRepositoryAdapter) DeleteByCityAndProvider(ctx context.Context, cityID uint, provider string) error {
	err := conn(ctx, r.db).
		Where("city_id = ? AND provider = ?", cityID, provider).
		Delete(&WeatherReadingModel{}).Error
	if err != nil {
		return errors.NewDatabaseError("failed to delete weather reading", err)
	}
	return nil
}

// DeleteByCity removes the readings of every provider for a city
func (r *WeatherReadingRepositoryAdapter) DeleteByCity(ctx context.Context, cityID uint) error {
	if err := conn(ctx, r.db).Where("city_id = ?", cityID).Delete(&WeatherReadingModel{}).Error; err != nil {
		return errors.NewDatabaseError("failed to delete weather readings", err)
	}
	return nil
}

func (r *WeatherReadingRepositoryAdapter) dataToModel(data *ports.WeatherReadingData) *WeatherReadingModel {
	return &WeatherReadingModel{
		ID:           data.ID,
		CityID:       data.CityID,
		Provider:     data.Provider,
		ReportedCity: data.ReportedCity,
		CountryCode:  data.CountryCode,
		Longitude:    data.Longitude,
		Latitude:     data.Latitude,
		Temperature:  data.Temperature,
		Pressure:     data.Pressure,
		Humidity:     data.Humidity,
		UpdatedAt:    data.UpdatedAt,
	}
}

func (r *WeatherReadingRepositoryAdapter) modelToData(model *WeatherReadingModel) *ports.WeatherReadingData {
	return &ports.WeatherReadingData{
		ID:           model.ID,
		CityID:       model.CityID,
		Provider:     model.Provider,
		ReportedCity: model.ReportedCity,
		CountryCode:  model.CountryCode,
		Longitude:    model.Longitude,
		Latitude:     model.Latitude,
		Temperature:  model.Temperature,
		Pressure:     model.Pressure,
		Humidity:     model.Humidity,
		UpdatedAt:    model.UpdatedAt,
	}
}
