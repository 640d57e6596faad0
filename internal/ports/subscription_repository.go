package ports

import (
	"context"
	"time"
)

// UserData represents a subscriber account for persistence
type UserData struct {
	ID        uint
	Email     string
	CreatedAt time.Time
}

// CityData represents a city for persistence
type CityData struct {
	ID        uint
	Name      string
	CreatedAt time.Time
}

// SubscriptionData represents subscription data for persistence.
// Email and CityName are populated on reads and ignored on writes.
type SubscriptionData struct {
	ID        uint
	UserID    uint
	CityID    uint
	Provider  string
	Period    int
	Email     string
	CityName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRepository defines the contract for subscriber persistence
type UserRepository interface {
	FindOrCreateByEmail(ctx context.Context, email string) (*UserData, error)
	FindByEmail(ctx context.Context, email string) (*UserData, error)
}

// CityRepository defines the contract for city persistence
type CityRepository interface {
	FindOrCreateByName(ctx context.Context, name string) (*CityData, error)
	FindByID(ctx context.Context, id uint) (*CityData, error)
	FindByName(ctx context.Context, name string) (*CityData, error)
	List(ctx context.Context) ([]*CityData, error)
	Delete(ctx context.Context, id uint) error
}

// SubscriptionRepository defines the contract for subscription data persistence
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *SubscriptionData) error
	FindByID(ctx context.Context, id uint) (*SubscriptionData, error)
	FindByKey(ctx context.Context, userID, cityID uint, provider string) (*SubscriptionData, error)
	FindAnyByCityAndProvider(ctx context.Context, cityID uint, provider string) (*SubscriptionData, error)
	ListByUser(ctx context.Context, userID uint) ([]*SubscriptionData, error)
	ListByCity(ctx context.Context, cityID uint) ([]*SubscriptionData, error)
	UpdatePeriod(ctx context.Context, id uint, period int) error
	Delete(ctx context.Context, id uint) error
	DeleteByCity(ctx context.Context, cityID uint) (int64, error)
	CountByCityAndProvider(ctx context.Context, cityID uint, provider string) (int64, error)
}
