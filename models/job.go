package models

import "time"

// Job statuses.
const (
	JobStatusQueued    = "queued"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Job is one execution attempt of a pipeline. Progress and logs are carried
// as inert state; nothing in this process advances them.
type Job struct {
	ID           int        `json:"id"`
	PipelineID   int        `json:"pipelineId"`
	Status       string     `json:"status"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	Progress     int        `json:"progress"`
	Logs         []string   `json:"logs"`
	ErrorMessage *string    `json:"errorMessage"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// InsertJob is the accepted shape for creating a job.
type InsertJob struct {
	PipelineID   int        `json:"pipelineId" validate:"required"`
	Status       string     `json:"status" validate:"omitempty,oneof=queued running completed failed"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	Progress     *int       `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Logs         []string   `json:"logs"`
	ErrorMessage *string    `json:"errorMessage"`
}

// UpdateJob carries a partial update; nil fields are left untouched. Logs
// replace the stored slice wholesale when present.
type UpdateJob struct {
	PipelineID   *int       `json:"pipelineId"`
	Status       *string    `json:"status"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	Progress     *int       `json:"progress"`
	Logs         []string   `json:"logs"`
	ErrorMessage *string    `json:"errorMessage"`
}
