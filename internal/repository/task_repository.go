package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `
	id,
	job_id,
	assigned_to,
	title,
	description,
	due_date,
	priority,
	status,
	created_at,
	updated_at
`

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = ?
	`, id).Scan(&task).Error
	if err != nil {
		return nil, err
	}
	if task.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &task, nil
}

func (r *TaskRepository) GetByJobID(ctx context.Context, jobID uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+taskColumns+`
		FROM tasks
		WHERE job_id = ?
	`, jobID).Scan(&task).Error
	if err != nil {
		return nil, err
	}
	if task.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (*model.Task, error) {
	var saved model.Task
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO tasks (
			job_id,
			assigned_to,
			title,
			description,
			due_date,
			priority,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+taskColumns,
		task.JobID,
		task.AssignedTo,
		task.Title,
		task.Description,
		task.DueDate,
		task.Priority,
		task.Status,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *TaskRepository) Reassign(ctx context.Context, jobID, assignedTo uuid.UUID) (*model.Task, error) {
	var saved model.Task
	err := r.db.WithContext(ctx).Raw(`
		UPDATE tasks SET
			assigned_to = ?,
			updated_at = NOW()
		WHERE job_id = ?
		RETURNING `+taskColumns,
		assignedTo, jobID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *TaskRepository) UpdateStatusByJobID(ctx context.Context, jobID uuid.UUID, status model.TaskStatus) (*model.Task, error) {
	var saved model.Task
	err := r.db.WithContext(ctx).Raw(`
		UPDATE tasks SET
			status = ?,
			updated_at = NOW()
		WHERE job_id = ?
		RETURNING `+taskColumns,
		status, jobID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) (*model.Task, error) {
	var saved model.Task
	err := r.db.WithContext(ctx).Raw(`
		UPDATE tasks SET
			status = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+taskColumns,
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

func (r *TaskRepository) List(ctx context.Context, cleanerID *uuid.UUID) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	var args []interface{}
	if cleanerID != nil {
		query += ` AND assigned_to = ?`
		args = append(args, *cleanerID)
	}
	query += ` ORDER BY due_date ASC, created_at ASC`

	var tasks []model.Task
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
