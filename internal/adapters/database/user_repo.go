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

// UserModel represents the database model for subscribers
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// UserRepositoryAdapter implements the UserRepository port using GORM
type UserRepositoryAdapter struct {
	db *gorm.DB
}

// NewUserRepositoryAdapter creates a new user repository adapter
func NewUserRepositoryAdapter(db *gorm.DB) ports.UserRepository {
	return &UserRepositoryAdapter{db: db}
}

// FindOrCreateByEmail returns the user with the email, inserting it first when absent
func (r *UserRepositoryAdapter) FindOrCreateByEmail(ctx context.Context, email string) (*ports.UserData, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}

	db := conn(ctx, r.db)
	insert := UserModel{Email: email}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&insert).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to create user", err)
	}

	var model UserModel
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to load user", err)
	}

	return &ports.UserData{ID: model.ID, Email: model.Email, CreatedAt: model.CreatedAt}, nil
}

// FindByEmail retrieves a user by email
func (r *UserRepositoryAdapter) FindByEmail(ctx context.Context, email string) (*ports.UserData, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}

	var model UserModel
	result := conn(ctx, r.db).Where("email = ?", email).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewDatabaseError("failed to find user", result.Error)
	}

	return &ports.UserData{ID: model.ID, Email: model.Email, CreatedAt: model.CreatedAt}, nil
}
