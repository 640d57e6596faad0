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

// SubscriptionModel represents the database model for subscriptions
type SubscriptionModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_subscription_key"`
	CityID    uint      `gorm:"not null;uniqueIndex:idx_subscription_key;index:idx_subscription_city_provider"`
	Provider  string    `gorm:"size:32;not null;uniqueIndex:idx_subscription_key;index:idx_subscription_city_provider"`
	Period    int       `gorm:"not null"`
	User      UserModel `gorm:"foreignKey:UserID"`
	City      CityModel `gorm:"foreignKey:CityID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// SubscriptionRepositoryAdapter implements the SubscriptionRepository port using GORM
type SubscriptionRepositoryAdapter struct {
	db *gorm.DB
}

// NewSubscriptionRepositoryAdapter creates a new subscription repository adapter
func NewSubscriptionRepositoryAdapter(db *gorm.DB) ports.SubscriptionRepository {
	return &SubscriptionRepositoryAdapter{db: db}
}

// Create persists a new subscription; a duplicate (user, city, provider) is an AlreadyExists error
func (r *SubscriptionRepositoryAdapter) Create(ctx context.Context, sub *ports.SubscriptionData) error {
	if sub == nil {
		return errors.NewValidationError("subscription cannot be nil")
	}

	model := r.dataToModel(sub)
	result := conn(ctx, r.db).Omit(clause.Associations).Create(model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errors.NewAlreadyExistsError("subscription already exists")
		}
		return errors.NewDatabaseError("failed to create subscription", result.Error)
	}

	sub.ID = model.ID
	sub.CreatedAt = model.CreatedAt
	sub.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID retrieves a subscription by its ID
func (r *SubscriptionRepositoryAdapter) FindByID(ctx context.Context, id uint) (*ports.SubscriptionData, error) {
	if id == 0 {
		return nil, errors.NewValidationError("subscription ID cannot be zero")
	}

	var model SubscriptionModel
	if err := r.withRelations(ctx).First(&model, id).Error; err != nil {
		return nil, r.lookupError(err)
	}
	return r.modelToData(&model), nil
}

// FindByKey retrieves the subscription of a user to a city on a provider
func (r *SubscriptionRepositoryAdapter) FindByKey(ctx context.Context, userID, cityID uint, provider string) (*ports.SubscriptionData, error) {
	var model SubscriptionModel
	err := r.withRelations(ctx).
		Where("user_id = ? AND city_id = ? AND provider = ?", userID, cityID, provider).
		First(&model).Error
	if err != nil {
		return nil, r.lookupError(err)
	}
	return r.modelToData(&model), nil
}

// FindAnyByCityAndProvider returns the oldest subscription referencing the pair
func (r *SubscriptionRepositoryAdapter) FindAnyByCityAndProvider(ctx context.Context, cityID uint, provider string) (*ports.SubscriptionData, error) {
	var model SubscriptionModel
	err := r.withRelations(ctx).
		Where("city_id = ? AND provider = ?", cityID, provider).
		Order("id").
		First(&model).Error
	if err != nil {
		return nil, r.lookupError(err)
	}
	return r.modelToData(&model), nil
}

// ListByUser returns the subscriptions of a user
func (r *SubscriptionRepositoryAdapter) ListByUser(ctx context.Context, userID uint) ([]*ports.SubscriptionData, error) {
	var models []SubscriptionModel
	if err := r.withRelations(ctx).Where("user_id = ?", userID).Order("id").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to list subscriptions by user", err)
	}
	return r.modelsToData(models), nil
}

// ListByCity returns the subscriptions of a city across all providers
func (r *SubscriptionRepositoryAdapter) ListByCity(ctx context.Context, cityID uint) ([]*ports.SubscriptionData, error) {
	var models []SubscriptionModel
	if err := r.withRelations(ctx).Where("city_id = ?", cityID).Order("id").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to list subscriptions by city", err)
	}
	return r.modelsToData(models), nil
}

// UpdatePeriod changes the notification period of a subscription
func (r *SubscriptionRepositoryAdapter) UpdatePeriod(ctx context.Context, id uint, period int) error {
	if id == 0 {
		return errors.NewValidationError("subscription ID cannot be zero for update")
	}

	result := conn(ctx, r.db).Model(&SubscriptionModel{ID: id}).Update("period", period)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update subscription", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("subscription not found")
	}
	return nil
}

// Delete removes a subscription
func (r *SubscriptionRepositoryAdapter) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.NewValidationError("subscription ID cannot be zero for delete")
	}

	if err := conn(ctx, r.db).Delete(&SubscriptionModel{}, id).Error; err != nil {
		return errors.NewDatabaseError("failed to delete subscription", err)
	}
	return nil
}

// DeleteByCity removes every subscription of a city and reports how many were removed
func (r *SubscriptionRepositoryAdapter) DeleteByCity(ctx context.Context, cityID uint) (int64, error) {
	result := conn(ctx, r.db).Where("city_id = ?", cityID).Delete(&SubscriptionModel{})
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to delete subscriptions by city", result.Error)
	}
	return result.RowsAffected, nil
}

// CountByCityAndProvider counts the live subscriptions referencing the pair
func (r *SubscriptionRepositoryAdapter) CountByCityAndProvider(ctx context.Context, cityID uint, provider string) (int64, error) {
	var count int64
	result := conn(ctx, r.db).Model(&SubscriptionModel{}).
		Where("city_id = ? AND provider = ?", cityID, provider).
		Count(&count)
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to count subscriptions", result.Error)
	}
	return count, nil
}

func (r *SubscriptionRepositoryAdapter) withRelations(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).Preload("User").Preload("City")
}

func (r *SubscriptionRepositoryAdapter) lookupError(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewNotFoundError("subscription not found")
	}
	return errors.NewDatabaseError("failed to find subscription", err)
}

// dataToModel converts port data to database model
func (r *SubscriptionRepositoryAdapter) dataToModel(data *ports.SubscriptionData) *SubscriptionModel {
	return &SubscriptionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		CityID:    data.CityID,
		Provider:  data.Provider,
		Period:    data.Period,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *SubscriptionRepositoryAdapter) modelToData(model *SubscriptionModel) *ports.SubscriptionData {
	return &ports.SubscriptionData{
		ID:        model.ID,
		UserID:    model.UserID,
		CityID:    model.CityID,
		Provider:  model.Provider,
		Period:    model.Period,
		Email:     model.User.Email,
		CityName:  model.City.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (r *SubscriptionRepositoryAdapter) modelsToData(models []SubscriptionModel) []*ports.SubscriptionData {
	out := make([]*ports.SubscriptionData, len(models))
	for i := range models {
		out[i] = r.modelToData(&models[i])
	}
	return out
}
