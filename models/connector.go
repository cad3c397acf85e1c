package models

import "time"

// Connector statuses.
const (
	ConnectorStatusActive   = "active"
	ConnectorStatusInactive = "inactive"
	ConnectorStatusError    = "error"
)

// Connector describes how to reach an external data system (oracle, mongodb,
// hive, postgresql, mysql, ...). The type set is open and the configuration
// shape varies per type, so it stays an untyped document. Connectivity is
// only ever simulated; see Store.TestConnector.
type Connector struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Configuration map[string]any `json:"configuration"`
	Status        string         `json:"status"`
	LastTested    *time.Time     `json:"lastTested"`
	CreatedAt     time.Time      `json:"createdAt"`
	UserID        int            `json:"userId"`
}

// InsertConnector is the accepted shape for creating a connector.
// LastTested is server-assigned and never accepted from the caller.
type InsertConnector struct {
	Name          string         `json:"name" validate:"required"`
	Type          string         `json:"type" validate:"required"`
	Configuration map[string]any `json:"configuration" validate:"required"`
	Status        string         `json:"status" validate:"omitempty,oneof=active inactive error"`
	UserID        int            `json:"userId" validate:"required"`
}

// UpdateConnector carries a partial update; nil fields are left untouched.
type UpdateConnector struct {
	Name          *string        `json:"name"`
	Type          *string        `json:"type"`
	Configuration map[string]any `json:"configuration"`
	Status        *string        `json:"status"`
	UserID        *int           `json:"userId"`
}
