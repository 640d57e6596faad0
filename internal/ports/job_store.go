package ports

import (
	"context"
	"time"
)

// JobKeyData is the composite identity of a periodic job.
// UserID is zero for jobs shared by every subscriber of a city.
type JobKeyData struct {
	Kind     string
	UserID   uint
	CityID   uint
	Provider string
}

// JobData represents a periodic job definition consumed by the executor
type JobData struct {
	ID          uint
	Key         JobKeyData
	Action      string
	Args        []uint
	Minute      string
	Hour        string
	DayOfWeek   string
	DayOfMonth  string
	MonthOfYear string
	Timezone    string
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JobStore defines the contract for the durable job table.
// FindByKey returns a NotFound error when no job has the key.
// Delete reports whether a row was removed.
type JobStore interface {
	Upsert(ctx context.Context, job *JobData) error
	FindByKey(ctx context.Context, key JobKeyData) (*JobData, error)
	Delete(ctx context.Context, key JobKeyData) (bool, error)
	ListEnabled(ctx context.Context) ([]*JobData, error)
	CountByKind(ctx context.Context, kind string) (int64, error)
}
