package storage

import (
	"time"

	"github.com/SankarPatnaik/dataflow-studio/models"
)

func ptr[T any](v T) *T { return &v }

// seed loads the demo dataset: one admin user, three connectors, one active
// pipeline, a running and a queued job, and a daily schedule. The values
// only exist so the UI has something to show on first load.
func (s *Store) seed() {
	now := s.now()

	s.users[1] = models.User{ID: 1, Username: "admin", Password: "password"}
	s.nextUserID = 2

	s.connectors[1] = models.Connector{
		ID:   1,
		Name: "Oracle Production",
		Type: "oracle",
		Configuration: map[string]any{
			"host":     "prod-oracle.company.com",
			"port":     1521,
			"database": "ORDERS_DB",
			"username": "etl_user",
		},
		Status:     models.ConnectorStatusActive,
		LastTested: ptr(now),
		CreatedAt:  now,
		UserID:     1,
	}
	s.connectors[2] = models.Connector{
		ID:   2,
		Name: "MongoDB Atlas",
		Type: "mongodb",
		Configuration: map[string]any{
			"connectionString": "mongodb+srv://cluster0.mongodb.net",
			"database":         "user_events",
		},
		Status:     models.ConnectorStatusActive,
		LastTested: ptr(now),
		CreatedAt:  now,
		UserID:     1,
	}
	s.connectors[3] = models.Connector{
		ID:   3,
		Name: "Cloudera Hive",
		Type: "hive",
		Configuration: map[string]any{
			"server":   "hadoop-master.local",
			"port":     10000,
			"database": "analytics",
		},
		Status:     models.ConnectorStatusInactive,
		LastTested: ptr(now.Add(-1 * time.Hour)),
		CreatedAt:  now,
		UserID:     1,
	}
	s.nextConnectorID = 4

	s.pipelines[1] = models.Pipeline{
		ID:          1,
		Name:        "Customer Data ETL",
		Description: ptr("Extract customer data from Oracle, transform and load to Hive"),
		Configuration: &models.PipelineConfig{
			Nodes: []models.PipelineNode{
				{ID: "1", Type: "source", SourceType: "oracle", Position: models.Position{X: 100, Y: 100}},
				{ID: "2", Type: "transform", TransformType: "filter", Position: models.Position{X: 300, Y: 100}},
				{ID: "3", Type: "destination", DestinationType: "hive", Position: models.Position{X: 500, Y: 100}},
			},
			Connections: []models.PipelineConnection{
				{Source: "1", Target: "2"},
				{Source: "2", Target: "3"},
			},
			YAMLConfig: sampleYAMLConfig,
		},
		Status:    models.PipelineStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    1,
	}
	s.nextPipelineID = 2

	s.jobs[1] = models.Job{
		ID:         1,
		PipelineID: 1,
		Status:     models.JobStatusRunning,
		StartTime:  ptr(now.Add(-750 * time.Second)),
		Progress:   45,
		Logs: []string{
			"Started pipeline execution",
			"Extracting data from Oracle",
			"Processing 10,000 records",
		},
		CreatedAt: now.Add(-750 * time.Second),
	}
	s.jobs[2] = models.Job{
		ID:         2,
		PipelineID: 1,
		Status:     models.JobStatusQueued,
		Logs:       []string{"Job queued for execution"},
		CreatedAt:  now,
	}
	s.nextJobID = 3

	s.schedules[1] = models.Schedule{
		ID:             1,
		PipelineID:     1,
		CronExpression: "0 2 * * *", // daily at 2 AM
		IsActive:       true,
		NextRun:        ptr(now.Add(24 * time.Hour)),
		LastRun:        ptr(now.Add(-24 * time.Hour)),
		CreatedAt:      now,
	}
	s.nextScheduleID = 2
}

const sampleYAMLConfig = `
transformations:
  - name: "customer_cleansing"
    type: "data_quality"
    rules:
      - field: "email"
        validation: "email_format"
      - field: "phone"
        standardize: "e164_format"

sources:
  oracle_orders:
    connection: "prod_oracle"
    query: "SELECT * FROM customers WHERE created_date >= '2024-01-01'"

targets:
  hive_warehouse:
    table: "analytics.customers_clean"
    mode: "append"
`
