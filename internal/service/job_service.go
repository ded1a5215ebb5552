package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/ledger"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
)

type JobStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Create(ctx context.Context, job model.Job) (*model.Job, error)
	Update(ctx context.Context, job model.Job) (*model.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.JobStatus) (*model.Job, error)
	UpdateCleaner(ctx context.Context, id uuid.UUID, cleanerID *uuid.UUID) (*model.Job, error)
	List(ctx context.Context, filter repository.JobFilter) ([]model.Job, error)
}

type TaskStore interface {
	GetByJobID(ctx context.Context, jobID uuid.UUID) (*model.Task, error)
	Create(ctx context.Context, task model.Task) (*model.Task, error)
	Reassign(ctx context.Context, jobID, assignedTo uuid.UUID) (*model.Task, error)
	UpdateStatusByJobID(ctx context.Context, jobID uuid.UUID, status model.TaskStatus) (*model.Task, error)
}

type EmployeeStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
}

// LedgerNotifier receives job snapshots after the primary transaction has
// committed. Implementations never return an error: the ledger is a
// best-effort side channel and must not fail the triggering request.
type LedgerNotifier interface {
	Enqueue(snap ledger.JobSnapshot)
}

// JobService owns the job lifecycle: creation, cleaner assignment and
// status transitions, with the shadow task kept in lock-step and every
// status-affecting write projected into the spreadsheet ledger.
type JobService struct {
	jobs      JobStore
	tasks     TaskStore
	employees EmployeeStore
	ledger    LedgerNotifier
	log       zerolog.Logger
}

func NewJobService(jobs JobStore, tasks TaskStore, employees EmployeeStore, notifier LedgerNotifier, log zerolog.Logger) *JobService {
	return &JobService{
		jobs:      jobs,
		tasks:     tasks,
		employees: employees,
		ledger:    notifier,
		log:       log,
	}
}

type CreateJobInput struct {
	CustomerName  string
	Phone         string
	Address       string
	Region        model.Region
	ScheduledDate time.Time
	ScheduledTime string
	Price         float64
	CleanerID     *uuid.UUID
}

func (s *JobService) CreateJob(ctx context.Context, input CreateJobInput) (*model.Job, error) {
	if input.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if !input.Region.Known() {
		return nil, fmt.Errorf("%w: unknown region %q", ErrInvalidInput, input.Region)
	}
	if input.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("%w: scheduled date is required", ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	var cleaner *model.Employee
	if input.CleanerID != nil {
		found, err := s.employees.GetByID(ctx, *input.CleanerID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: cleaner", ErrNotFound)
			}
			return nil, err
		}
		cleaner = found
	}

	job, err := s.jobs.Create(ctx, model.Job{
		CustomerName:  input.CustomerName,
		Phone:         input.Phone,
		Address:       input.Address,
		Region:        input.Region,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: input.ScheduledTime,
		Price:         input.Price,
		CleanerID:     input.CleanerID,
		Status:        model.JobStatusUpcoming,
	})
	if err != nil {
		return nil, err
	}

	// The shadow task exists only once a cleaner is on the job.
	if cleaner != nil {
		if _, err := s.tasks.Create(ctx, newTaskForJob(*job, cleaner.ID)); err != nil {
			return nil, err
		}
	}

	s.publishSnapshot(ctx, job)
	return job, nil
}

type UpdateJobInput struct {
	CustomerName  string
	Phone         string
	Address       string
	Region        model.Region
	ScheduledDate time.Time
	ScheduledTime string
	Price         float64
}

func (s *JobService) UpdateJob(ctx context.Context, id uuid.UUID, input UpdateJobInput) (*model.Job, error) {
	if input.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if !input.Region.Known() {
		return nil, fmt.Errorf("%w: unknown region %q", ErrInvalidInput, input.Region)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	job, err := s.jobs.Update(ctx, model.Job{
		ID:            id,
		CustomerName:  input.CustomerName,
		Phone:         input.Phone,
		Address:       input.Address,
		Region:        input.Region,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: input.ScheduledTime,
		Price:         input.Price,
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.publishSnapshot(ctx, job)
	return job, nil
}

// ChangeStatus applies a job status transition. Any of the four recognized
// statuses is accepted from any current status; unknown literals are
// rejected before any persistence. On success the linked task's status is
// set via the fixed mapping and the full post-update snapshot is handed to
// the ledger. A ledger failure never rolls the transition back.
func (s *JobService) ChangeStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*model.Job, error) {
	status, err := model.ParseJobStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	job, err := s.jobs.UpdateStatus(ctx, id, status)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.tasks.UpdateStatusByJobID(ctx, id, status.TaskStatus()); err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	s.publishSnapshot(ctx, job)
	return job, nil
}

// AssignCleaner points the job at a cleaner, creating the shadow task on
// first assignment and re-pointing the existing one afterwards.
func (s *JobService) AssignCleaner(ctx context.Context, jobID, cleanerID uuid.UUID) (*model.Job, error) {
	cleaner, err := s.employees.GetByID(ctx, cleanerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: cleaner", ErrNotFound)
		}
		return nil, err
	}

	job, err := s.jobs.UpdateCleaner(ctx, jobID, &cleaner.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.tasks.Reassign(ctx, jobID, cleaner.ID); err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		if _, err := s.tasks.Create(ctx, newTaskForJob(*job, cleaner.ID)); err != nil {
			return nil, err
		}
	}

	s.publishSnapshot(ctx, job)
	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, filter repository.JobFilter) ([]model.Job, error) {
	return s.jobs.List(ctx, filter)
}

// publishSnapshot captures the job's current state for the ledger. It only
// enqueues; the actual file write happens on the writer goroutine and its
// failure is logged there, never surfaced here.
func (s *JobService) publishSnapshot(ctx context.Context, job *model.Job) {
	snap := ledger.JobSnapshot{
		JobID:         job.ID,
		CustomerName:  job.CustomerName,
		Phone:         job.Phone,
		Address:       job.Address,
		Region:        job.Region,
		ScheduledDate: job.ScheduledDate,
		Price:         job.Price,
		Status:        job.Status,
	}
	if job.CleanerID != nil {
		cleaner, err := s.employees.GetByID(ctx, *job.CleanerID)
		if err != nil {
			s.log.Warn().Err(err).Str("job_id", job.ID.String()).Msg("cleaner lookup failed for ledger row")
		} else {
			snap.CleanerName = cleaner.FullName
		}
	}
	s.ledger.Enqueue(snap)
}

func newTaskForJob(job model.Job, cleanerID uuid.UUID) model.Task {
	return model.Task{
		JobID:       job.ID,
		AssignedTo:  cleanerID,
		Title:       fmt.Sprintf("Clean for %s", job.CustomerName),
		Description: job.Address,
		DueDate:     job.ScheduledDate,
		Priority:    model.TaskPriorityMedium,
		Status:      job.Status.TaskStatus(),
	}
}
