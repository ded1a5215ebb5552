package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCompleted TaskStatus = "Completed"
	TaskStatusRedo      TaskStatus = "Redo"
	TaskStatusCancelled TaskStatus = "Cancelled"
)

func ParseTaskStatus(raw string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return TaskStatusPending, nil
	case "completed":
		return TaskStatusCompleted, nil
	case "redo":
		return TaskStatusRedo, nil
	case "cancelled":
		return TaskStatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown task status %q", raw)
	}
}

// JobStatus maps a task status back onto the owning job. Task status is
// never changed directly; cleaner updates go through the job transition so
// the two can never drift apart.
func (s TaskStatus) JobStatus() JobStatus {
	switch s {
	case TaskStatusPending:
		return JobStatusUpcoming
	case TaskStatusCompleted:
		return JobStatusCompleted
	case TaskStatusRedo:
		return JobStatusRedo
	case TaskStatusCancelled:
		return JobStatusCancelled
	default:
		return JobStatusUpcoming
	}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// Task is the cleaner-facing shadow of a Job. It exists only once the job
// has an assigned cleaner, and its status always follows the job's status.
type Task struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	AssignedTo  uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	Priority    TaskPriority
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
