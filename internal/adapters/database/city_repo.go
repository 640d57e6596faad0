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

// CityModel represents the database model for cities
type CityModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (CityModel) TableName() string {
	return "cities"
}

// CityRepositoryAdapter implements the CityRepository port using GORM
type CityRepositoryAdapter struct {
	db *gorm.DB
}

// NewCityRepositoryAdapter creates a new city repository adapter
func NewCityRepositoryAdapter(db *gorm.DB) ports.CityRepository {
	return &CityRepositoryAdapter{db: db}
}

// FindOrCreateByName returns the city with the canonical name, inserting it first when absent.
// Concurrent inserts of the same name resolve to one row.
func (r *CityRepositoryAdapter) FindOrCreateByName(ctx context.Context, name string) (*ports.CityData, error) {
	if name == "" {
		return nil, errors.NewValidationError("city name cannot be empty")
	}

	db := conn(ctx, r.db)
	insert := CityModel{Name: name}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&insert).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to create city", err)
	}

	var model CityModel
	if err := db.Where("name = ?", name).First(&model).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to load city", err)
	}
	return r.modelToData(&model), nil
}

// FindByID retrieves a city by its ID
func (r *CityRepositoryAdapter) FindByID(ctx context.Context, id uint) (*ports.CityData, error) {
	if id == 0 {
		return nil, errors.NewValidationError("city ID cannot be zero")
	}

	var model CityModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		return nil, r.lookupError(err)
	}
	return r.modelToData(&model), nil
}

// FindByName retrieves a city by its canonical name
func (r *CityRepositoryAdapter) FindByName(ctx context.Context, name string) (*ports.CityData, error) {
	if name == "" {
		return nil, errors.NewValidationError("city name cannot be empty")
	}

	var model CityModel
	if err := conn(ctx, r.db).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, r.lookupError(err)
	}
	return r.modelToData(&model), nil
}

// List returns all cities ordered by name
func (r *CityRepositoryAdapter) List(ctx context.Context) ([]*ports.CityData, error) {
	var models []CityModel
	if err := conn(ctx, r.db).Order("name").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to list cities", err)
	}

	cities := make([]*ports.CityData, len(models))
	for i := range models {
		cities[i] = r.modelToData(&models[i])
	}
	return cities, nil
}

// Delete removes a city
func (r *CityRepositoryAdapter) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.NewValidationError("city ID cannot be zero for delete")
	}

	if err := conn(ctx, r.db).Delete(&CityModel{}, id).Error; err != nil {
		return errors.NewDatabaseError("failed to delete city", err)
	}
	return nil
}

func (r *CityRepositoryAdapter) lookupError(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewNotFoundError("city not found")
	}
	return errors.NewDatabaseError("failed to find city", err)
}

func (r *CityRepositoryAdapter) modelToData(model *CityModel) *ports.CityData {
	return &ports.CityData{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}
