package models

import "time"

// Schedule associates a cron expression with a pipeline. The expression is
// stored as an opaque string and never parsed or evaluated; NextRun and
// LastRun are hand-set labels, not derived values.
type Schedule struct {
	ID             int        `json:"id"`
	PipelineID     int        `json:"pipelineId"`
	CronExpression string     `json:"cronExpression"`
	IsActive       bool       `json:"isActive"`
	NextRun        *time.Time `json:"nextRun"`
	LastRun        *time.Time `json:"lastRun"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// InsertSchedule is the accepted shape for creating a schedule. IsActive
// defaults to true when omitted.
type InsertSchedule struct {
	PipelineID     int        `json:"pipelineId" validate:"required"`
	CronExpression string     `json:"cronExpression" validate:"required"`
	IsActive       *bool      `json:"isActive"`
	NextRun        *time.Time `json:"nextRun"`
	LastRun        *time.Time `json:"lastRun"`
}

// UpdateSchedule carries a partial update; nil fields are left untouched.
type UpdateSchedule struct {
	PipelineID     *int       `json:"pipelineId"`
	CronExpression *string    `json:"cronExpression"`
	IsActive       *bool      `json:"isActive"`
	NextRun        *time.Time `json:"nextRun"`
	LastRun        *time.Time `json:"lastRun"`
}
