package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
)

// TaskService reads tasks and routes cleaner status updates through the
// owning job, so a task can never drift from its job.
type TaskService struct {
	tasks *repository.TaskRepository
	jobs  *JobService
}

func NewTaskService(tasks *repository.TaskRepository, jobs *JobService) *TaskService {
	return &TaskService{tasks: tasks, jobs: jobs}
}

func (s *TaskService) List(ctx context.Context, cleanerID *uuid.UUID) ([]model.Task, error) {
	return s.tasks.List(ctx, cleanerID)
}

// ChangeStatus translates a task status update into the equivalent job
// transition; the job service then writes both records and the ledger row.
func (s *TaskService) ChangeStatus(ctx context.Context, taskID uuid.UUID, rawStatus string) (*model.Task, error) {
	status, err := model.ParseTaskStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.jobs.ChangeStatus(ctx, task.JobID, string(status.JobStatus())); err != nil {
		return nil, err
	}
	return s.tasks.GetByID(ctx, taskID)
}
