package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/ledger"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
)

type fakeJobStore struct {
	jobs map[uuid.UUID]model.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[uuid.UUID]model.Job)}
}

func (f *fakeJobStore) GetByID(_ context.Context, id uuid.UUID) (*model.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &job, nil
}

func (f *fakeJobStore) Create(_ context.Context, job model.Job) (*model.Job, error) {
	job.ID = uuid.New()
	f.jobs[job.ID] = job
	return &job, nil
}

func (f *fakeJobStore) Update(_ context.Context, job model.Job) (*model.Job, error) {
	existing, ok := f.jobs[job.ID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	job.CleanerID = existing.CleanerID
	job.Status = existing.Status
	f.jobs[job.ID] = job
	return &job, nil
}

func (f *fakeJobStore) UpdateStatus(_ context.Context, id uuid.UUID, status model.JobStatus) (*model.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	job.Status = status
	f.jobs[id] = job
	return &job, nil
}

func (f *fakeJobStore) UpdateCleaner(_ context.Context, id uuid.UUID, cleanerID *uuid.UUID) (*model.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	job.CleanerID = cleanerID
	f.jobs[id] = job
	return &job, nil
}

func (f *fakeJobStore) List(_ context.Context, _ repository.JobFilter) ([]model.Job, error) {
	var jobs []model.Job
	for _, job := range f.jobs {
		jobs = append(jobs, job)
	}
	return jobs, nil
}

type fakeTaskStore struct {
	byJob map[uuid.UUID]model.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{byJob: make(map[uuid.UUID]model.Task)}
}

func (f *fakeTaskStore) GetByJobID(_ context.Context, jobID uuid.UUID) (*model.Task, error) {
	task, ok := f.byJob[jobID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &task, nil
}

func (f *fakeTaskStore) Create(_ context.Context, task model.Task) (*model.Task, error) {
	task.ID = uuid.New()
	f.byJob[task.JobID] = task
	return &task, nil
}

func (f *fakeTaskStore) Reassign(_ context.Context, jobID, assignedTo uuid.UUID) (*model.Task, error) {
	task, ok := f.byJob[jobID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	task.AssignedTo = assignedTo
	f.byJob[jobID] = task
	return &task, nil
}

func (f *fakeTaskStore) UpdateStatusByJobID(_ context.Context, jobID uuid.UUID, status model.TaskStatus) (*model.Task, error) {
	task, ok := f.byJob[jobID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	task.Status = status
	f.byJob[jobID] = task
	return &task, nil
}

type fakeEmployeeStore struct {
	employees map[uuid.UUID]model.Employee
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{employees: make(map[uuid.UUID]model.Employee)}
}

func (f *fakeEmployeeStore) GetByID(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &employee, nil
}

type fakeNotifier struct {
	snapshots []ledger.JobSnapshot
}

func (f *fakeNotifier) Enqueue(snap ledger.JobSnapshot) {
	f.snapshots = append(f.snapshots, snap)
}

type fixture struct {
	jobs      *fakeJobStore
	tasks     *fakeTaskStore
	employees *fakeEmployeeStore
	notifier  *fakeNotifier
	svc       *JobService
}

func newFixture() *fixture {
	jobs := newFakeJobStore()
	tasks := newFakeTaskStore()
	employees := newFakeEmployeeStore()
	notifier := &fakeNotifier{}
	return &fixture{
		jobs:      jobs,
		tasks:     tasks,
		employees: employees,
		notifier:  notifier,
		svc:       NewJobService(jobs, tasks, employees, notifier, zerolog.Nop()),
	}
}

func (f *fixture) addCleaner(name string) uuid.UUID {
	id := uuid.New()
	f.employees.employees[id] = model.Employee{ID: id, FullName: name, Region: model.RegionSydney, Active: true}
	return id
}

func validCreateInput() CreateJobInput {
	return CreateJobInput{
		CustomerName:  "Alice Nguyen",
		Phone:         "0400 111 222",
		Address:       "12 Harbour St",
		Region:        model.RegionSydney,
		ScheduledDate: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "09:00",
		Price:         150,
	}
}

func TestCreateJobWithoutCleanerCreatesNoTask(t *testing.T) {
	f := newFixture()

	job, err := f.svc.CreateJob(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, model.JobStatusUpcoming, job.Status)
	assert.Empty(t, f.tasks.byJob)
	require.Len(t, f.notifier.snapshots, 1, "job creation triggers one ledger upsert")
	assert.Empty(t, f.notifier.snapshots[0].CleanerName, "upserter substitutes the placeholder")
}

func TestCreateJobWithCleanerCreatesTask(t *testing.T) {
	f := newFixture()
	cleanerID := f.addCleaner("Sam Carter")

	input := validCreateInput()
	input.CleanerID = &cleanerID

	job, err := f.svc.CreateJob(context.Background(), input)
	require.NoError(t, err)

	task, err := f.tasks.GetByJobID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, cleanerID, task.AssignedTo)
	assert.Equal(t, model.TaskStatusPending, task.Status)

	require.Len(t, f.notifier.snapshots, 1)
	assert.Equal(t, "Sam Carter", f.notifier.snapshots[0].CleanerName)
}

func TestCreateJobValidation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(*CreateJobInput)
	}{
		{"missing customer", func(in *CreateJobInput) { in.CustomerName = "" }},
		{"unknown region", func(in *CreateJobInput) { in.Region = "Atlantis" }},
		{"zero date", func(in *CreateJobInput) { in.ScheduledDate = time.Time{} }},
		{"negative price", func(in *CreateJobInput) { in.Price = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(&input)

			_, err := f.svc.CreateJob(context.Background(), input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, f.notifier.snapshots, "rejected input must not reach the ledger")
}

func TestCreateJobUnknownCleaner(t *testing.T) {
	f := newFixture()
	missing := uuid.New()

	input := validCreateInput()
	input.CleanerID = &missing

	_, err := f.svc.CreateJob(context.Background(), input)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.notifier.snapshots)
}

func TestChangeStatusRejectsUnknownLiteral(t *testing.T) {
	f := newFixture()
	job, err := f.svc.CreateJob(context.Background(), validCreateInput())
	require.NoError(t, err)
	f.notifier.snapshots = nil

	_, err = f.svc.ChangeStatus(context.Background(), job.ID, "Done")
	assert.ErrorIs(t, err, ErrInvalidInput)

	stored, _ := f.jobs.GetByID(context.Background(), job.ID)
	assert.Equal(t, model.JobStatusUpcoming, stored.Status, "no side effects on rejection")
	assert.Empty(t, f.notifier.snapshots)
}

func TestChangeStatusUnknownJob(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ChangeStatus(context.Background(), uuid.New(), "Completed")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.notifier.snapshots)
}

func TestChangeStatusSyncsTask(t *testing.T) {
	f := newFixture()
	cleanerID := f.addCleaner("Sam Carter")
	input := validCreateInput()
	input.CleanerID = &cleanerID
	job, err := f.svc.CreateJob(context.Background(), input)
	require.NoError(t, err)

	updated, err := f.svc.ChangeStatus(context.Background(), job.ID, "Completed")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, updated.Status)

	task, err := f.tasks.GetByJobID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, task.Status)

	// Redo re-enters from Completed and the task follows.
	_, err = f.svc.ChangeStatus(context.Background(), job.ID, "Redo")
	require.NoError(t, err)
	task, err = f.tasks.GetByJobID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusRedo, task.Status)
}

func TestChangeStatusWithoutTask(t *testing.T) {
	f := newFixture()
	job, err := f.svc.CreateJob(context.Background(), validCreateInput())
	require.NoError(t, err)
	f.notifier.snapshots = nil

	updated, err := f.svc.ChangeStatus(context.Background(), job.ID, "Cancelled")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCancelled, updated.Status)
	require.Len(t, f.notifier.snapshots, 1, "exactly one ledger upsert per transition")
	assert.Equal(t, model.JobStatusCancelled, f.notifier.snapshots[0].Status)
}

func TestChangeStatusIsPermissiveAcrossLiterals(t *testing.T) {
	f := newFixture()
	job, err := f.svc.CreateJob(context.Background(), validCreateInput())
	require.NoError(t, err)

	// Operator corrections like Cancelled back to Upcoming are allowed.
	for _, status := range []string{"Cancelled", "Upcoming", "Completed", "Redo", "Completed"} {
		updated, err := f.svc.ChangeStatus(context.Background(), job.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, string(updated.Status))
	}
}

func TestAssignCleanerCreatesTaskOnce(t *testing.T) {
	f := newFixture()
	first := f.addCleaner("Sam Carter")
	second := f.addCleaner("Jo Park")

	job, err := f.svc.CreateJob(context.Background(), validCreateInput())
	require.NoError(t, err)
	require.Empty(t, f.tasks.byJob)

	_, err = f.svc.AssignCleaner(context.Background(), job.ID, first)
	require.NoError(t, err)
	require.Len(t, f.tasks.byJob, 1)
	task, _ := f.tasks.GetByJobID(context.Background(), job.ID)
	firstTaskID := task.ID
	assert.Equal(t, first, task.AssignedTo)

	// Re-assignment re-points the existing task, never duplicates it.
	_, err = f.svc.AssignCleaner(context.Background(), job.ID, second)
	require.NoError(t, err)
	require.Len(t, f.tasks.byJob, 1)
	task, _ = f.tasks.GetByJobID(context.Background(), job.ID)
	assert.Equal(t, firstTaskID, task.ID)
	assert.Equal(t, second, task.AssignedTo)
}

func TestAssignCleanerUnknownEmployee(t *testing.T) {
	f := newFixture()
	job, err := f.svc.CreateJob(context.Background(), validCreateInput())
	require.NoError(t, err)

	_, err = f.svc.AssignCleaner(context.Background(), job.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshotReflectsPostUpdateState(t *testing.T) {
	f := newFixture()
	job, err := f.svc.CreateJob(context.Background(), validCreateInput())
	require.NoError(t, err)
	f.notifier.snapshots = nil

	_, err = f.svc.ChangeStatus(context.Background(), job.ID, "Completed")
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(context.Background(), job.ID, "Redo")
	require.NoError(t, err)

	require.Len(t, f.notifier.snapshots, 2)
	assert.Equal(t, model.JobStatusCompleted, f.notifier.snapshots[0].Status)
	assert.Equal(t, model.JobStatusRedo, f.notifier.snapshots[1].Status)
	assert.Equal(t, job.ID, f.notifier.snapshots[1].JobID)
}
