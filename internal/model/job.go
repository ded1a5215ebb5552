package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusUpcoming  JobStatus = "Upcoming"
	JobStatusCompleted JobStatus = "Completed"
	JobStatusRedo      JobStatus = "Redo"
	JobStatusCancelled JobStatus = "Cancelled"
)

// ParseJobStatus accepts the four recognized literals, case-insensitively.
// Transitions between recognized statuses are not restricted: operators
// routinely correct mistakes (e.g. Cancelled back to Upcoming).
func ParseJobStatus(raw string) (JobStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "upcoming":
		return JobStatusUpcoming, nil
	case "completed":
		return JobStatusCompleted, nil
	case "redo":
		return JobStatusRedo, nil
	case "cancelled":
		return JobStatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown job status %q", raw)
	}
}

// TaskStatus returns the task status kept in lock-step with a job status.
func (s JobStatus) TaskStatus() TaskStatus {
	switch s {
	case JobStatusUpcoming:
		return TaskStatusPending
	case JobStatusCompleted:
		return TaskStatusCompleted
	case JobStatusRedo:
		return TaskStatusRedo
	case JobStatusCancelled:
		return TaskStatusCancelled
	default:
		return TaskStatusPending
	}
}

type Region string

const (
	RegionSydney    Region = "Sydney"
	RegionMelbourne Region = "Melbourne"
	RegionBrisbane  Region = "Brisbane"
	RegionPerth     Region = "Perth"
	RegionAdelaide  Region = "Adelaide"
)

// Regions lists the recognized operating regions in ledger sheet order.
func Regions() []Region {
	return []Region{RegionSydney, RegionMelbourne, RegionBrisbane, RegionPerth, RegionAdelaide}
}

func ParseRegion(raw string) (Region, error) {
	trimmed := strings.TrimSpace(raw)
	for _, region := range Regions() {
		if strings.EqualFold(trimmed, string(region)) {
			return region, nil
		}
	}
	return "", fmt.Errorf("unknown region %q", raw)
}

func (r Region) Known() bool {
	for _, region := range Regions() {
		if r == region {
			return true
		}
	}
	return false
}

type Job struct {
	ID            uuid.UUID
	CustomerName  string
	Phone         string
	Address       string
	Region        Region
	ScheduledDate time.Time
	ScheduledTime string
	Price         float64
	CleanerID     *uuid.UUID
	Status        JobStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
