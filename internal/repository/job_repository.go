package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

type JobFilter struct {
	Status    *model.JobStatus
	Region    *model.Region
	CleanerID *uuid.UUID
	From      *time.Time
	To        *time.Time
}

const jobColumns = `
	id,
	customer_name,
	phone,
	address,
	region,
	scheduled_date,
	scheduled_time,
	price,
	cleaner_id,
	status,
	created_at,
	updated_at
`

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = ?
	`, id).Scan(&job).Error
	if err != nil {
		return nil, err
	}
	if job.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &job, nil
}

func (r *JobRepository) Create(ctx context.Context, job model.Job) (*model.Job, error) {
	var saved model.Job
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO jobs (
			customer_name,
			phone,
			address,
			region,
			scheduled_date,
			scheduled_time,
			price,
			cleaner_id,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+jobColumns,
		job.CustomerName,
		job.Phone,
		job.Address,
		job.Region,
		job.ScheduledDate,
		job.ScheduledTime,
		job.Price,
		job.CleanerID,
		job.Status,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *JobRepository) Update(ctx context.Context, job model.Job) (*model.Job, error) {
	var saved model.Job
	err := r.db.WithContext(ctx).Raw(`
		UPDATE jobs SET
			customer_name = ?,
			phone = ?,
			address = ?,
			region = ?,
			scheduled_date = ?,
			scheduled_time = ?,
			price = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+jobColumns,
		job.CustomerName,
		job.Phone,
		job.Address,
		job.Region,
		job.ScheduledDate,
		job.ScheduledTime,
		job.Price,
		job.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.JobStatus) (*model.Job, error) {
	var saved model.Job
	err := r.db.WithContext(ctx).Raw(`
		UPDATE jobs SET
			status = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+jobColumns,
		status, id,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *JobRepository) UpdateCleaner(ctx context.Context, id uuid.UUID, cleanerID *uuid.UUID) (*model.Job, error) {
	var saved model.Job
	err := r.db.WithContext(ctx).Raw(`
		UPDATE jobs SET
			cleaner_id = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+jobColumns,
		cleanerID, id,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *JobRepository) List(ctx context.Context, filter JobFilter) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	var args []interface{}
	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, *filter.Status)
	}
	if filter.Region != nil {
		query += ` AND region = ?`
		args = append(args, *filter.Region)
	}
	if filter.CleanerID != nil {
		query += ` AND cleaner_id = ?`
		args = append(args, *filter.CleanerID)
	}
	if filter.From != nil {
		query += ` AND scheduled_date >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += ` AND scheduled_date < ?`
		args = append(args, *filter.To)
	}
	query += ` ORDER BY scheduled_date ASC, created_at ASC`

	var jobs []model.Job
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) CountByStatus(ctx context.Context, from, to time.Time) (map[model.JobStatus]int64, error) {
	var rows []struct {
		Status model.JobStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM jobs
		WHERE scheduled_date >= ? AND scheduled_date < ?
		GROUP BY status
	`, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.JobStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *JobRepository) CompletedRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(price), 0)
		FROM jobs
		WHERE status = 'Completed'
			AND scheduled_date >= ? AND scheduled_date < ?
	`, from, to).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
