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

// JobModel is one periodic job definition; (kind, user_id, city_id, provider) is unique
type JobModel struct {
	ID          uint   `gorm:"primaryKey"`
	Kind        string `gorm:"size:32;not null;uniqueIndex:idx_job_key"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_job_key"`
	CityID      uint   `gorm:"not null;uniqueIndex:idx_job_key"`
	Provider    string `gorm:"size:32;not null;uniqueIndex:idx_job_key"`
	Action      string `gorm:"size:64;not null"`
	Args        []uint `gorm:"serializer:json;type:text;not null"`
	Minute      string `gorm:"size:16;not null"`
	Hour        string `gorm:"size:16;not null"`
	DayOfWeek   string `gorm:"size:16;not null"`
	DayOfMonth  string `gorm:"size:16;not null"`
	MonthOfYear string `gorm:"size:16;not null"`
	Timezone    string `gorm:"size:64;not null"`
	Enabled     bool   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (JobModel) TableName() string {
	return "periodic_jobs"
}

// JobStoreAdapter implements the JobStore port using GORM
type JobStoreAdapter struct {
	db *gorm.DB
}

// NewJobStoreAdapter creates a new job store adapter
func NewJobStoreAdapter(db *gorm.DB) ports.JobStore {
	return &JobStoreAdapter{db: db}
}

// Upsert inserts the job or replaces the definition stored under its key
func (s *JobStoreAdapter) Upsert(ctx context.Context, job *ports.JobData) error {
	if job == nil {
		return errors.NewValidationError("job cannot be nil")
	}

	db := conn(ctx, s.db)
	model := s.dataToModel(job)
	model.ID = 0
	model.UpdatedAt = time.Now().UTC()

	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "kind"}, {Name: "user_id"}, {Name: "city_id"}, {Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"action", "args", "minute", "hour", "day_of_week", "day_of_month",
			"month_of_year", "timezone", "enabled", "updated_at",
		}),
	}).Create(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to upsert job", result.Error)
	}

	var stored JobModel
	if err := s.byKey(db, job.Key).First(&stored).Error; err != nil {
		return errors.NewDatabaseError("failed to reload job", err)
	}
	job.ID = stored.ID
	job.CreatedAt = stored.CreatedAt
	job.UpdatedAt = stored.UpdatedAt
	return nil
}

// FindByKey retrieves the job stored under a key
func (s *JobStoreAdapter) FindByKey(ctx context.Context, key ports.JobKeyData) (*ports.JobData, error) {
	var model JobModel
	if err := s.byKey(conn(ctx, s.db), key).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("job not found")
		}
		return nil, errors.NewDatabaseError("failed to find job", err)
	}
	return s.modelToData(&model), nil
}

// Delete removes the job stored under a key and reports whether one existed
func (s *JobStoreAdapter) Delete(ctx context.Context, key ports.JobKeyData) (bool, error) {
	result := s.byKey(conn(ctx, s.db), key).Delete(&JobModel{})
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to delete job", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListEnabled returns every enabled job ordered by id
func (s *JobStoreAdapter) ListEnabled(ctx context.Context) ([]*ports.JobData, error) {
	var models []JobModel
	if err := conn(ctx, s.db).Where("enabled = ?", true).Order("id").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to list jobs", err)
	}

	jobs := make([]*ports.JobData, len(models))
	for i := range models {
		jobs[i] = s.modelToData(&models[i])
	}
	return jobs, nil
}

// CountByKind counts jobs of one kind
func (s *JobStoreAdapter) CountByKind(ctx context.Context, kind string) (int64, error) {
	var count int64
	if err := conn(ctx, s.db).Model(&JobModel{}).Where("kind = ?", kind).Count(&count).Error; err != nil {
		return 0, errors.NewDatabaseError("failed to count jobs", err)
	}
	return count, nil
}

func (s *JobStoreAdapter) byKey(db *gorm.DB, key ports.JobKeyData) *gorm.DB {
	return db.Where("kind = ? AND user_id = ? AND city_id = ? AND provider = ?",
		key.Kind, key.UserID, key.CityID, key.Provider)
}

func (s *JobStoreAdapter) dataToModel(data *ports.JobData) *JobModel {
	args := data.Args
	if args == nil {
		args = []uint{}
	}
	return &JobModel{
		ID:          data.ID,
		Kind:        data.Key.Kind,
		UserID:      data.Key.UserID,
		CityID:      data.Key.CityID,
		Provider:    data.Key.Provider,
		Action:      data.Action,
		Args:        args,
		Minute:      data.Minute,
		Hour:        data.Hour,
		DayOfWeek:   data.DayOfWeek,
		DayOfMonth:  data.DayOfMonth,
		MonthOfYear: data.MonthOfYear,
		Timezone:    data.Timezone,
		Enabled:     data.Enabled,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func (s *JobStoreAdapter) modelToData(model *JobModel) *ports.JobData {
	return &ports.JobData{
		ID: model.ID,
		Key: ports.JobKeyData{
			Kind:     model.Kind,
			UserID:   model.UserID,
			CityID:   model.CityID,
			Provider: model.Provider,
		},
		Action:      model.Action,
		Args:        model.Args,
		Minute:      model.Minute,
		Hour:        model.Hour,
		DayOfWeek:   model.DayOfWeek,
		DayOfMonth:  model.DayOfMonth,
		MonthOfYear: model.MonthOfYear,
		Timezone:    model.Timezone,
		Enabled:     model.Enabled,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
