package models

import "time"

// Pipeline statuses.
const (
	PipelineStatusDraft  = "draft"
	PipelineStatusActive = "active"
	PipelineStatusPaused = "paused"
	PipelineStatusError  = "error"
)

// Pipeline is a user-owned ETL design with a lifecycle status. The
// configuration is the canvas state plus the textual YAML config; it is
// stored verbatim and never executed.
type Pipeline struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Configuration *PipelineConfig `json:"configuration"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	UserID        int             `json:"userId"`
}

// PipelineConfig is the builder canvas: nodes, the edges between them, and
// the YAML the editor pane holds.
type PipelineConfig struct {
	Nodes       []PipelineNode       `json:"nodes"`
	Connections []PipelineConnection `json:"connections"`
	YAMLConfig  string               `json:"yamlConfig,omitempty"`
}

// PipelineNode is one canvas element. The typed fields beyond Type are
// populated depending on the node kind.
type PipelineNode struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	SourceType      string   `json:"sourceType,omitempty"`
	TransformType   string   `json:"transformType,omitempty"`
	DestinationType string   `json:"destinationType,omitempty"`
	Position        Position `json:"position"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type PipelineConnection struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// InsertPipeline is the accepted shape for creating a pipeline. The owner id
// is overwritten by the API layer before validation, never trusted from the
// request body.
type InsertPipeline struct {
	Name          string          `json:"name" validate:"required"`
	Description   *string         `json:"description"`
	Configuration *PipelineConfig `json:"configuration" validate:"required"`
	Status        string          `json:"status" validate:"omitempty,oneof=draft active paused error"`
	UserID        int             `json:"userId" validate:"required"`
}

// UpdatePipeline carries a partial update; nil fields are left untouched.
type UpdatePipeline struct {
	Name          *string         `json:"name"`
	Description   *string         `json:"description"`
	Configuration *PipelineConfig `json:"configuration"`
	Status        *string         `json:"status"`
	UserID        *int            `json:"userId"`
}
