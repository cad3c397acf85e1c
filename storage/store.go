// Package storage holds every entity record for the lifetime of the
// process. State is volatile: a restart discards everything and re-seeds
// the demo dataset. A single mutex serializes access because the HTTP
// server handles requests concurrently; there are no per-record versions
// or transactions.
package storage

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/SankarPatnaik/dataflow-studio/models"
)

// Store is the in-memory backing for users, pipelines, connectors, jobs and
// schedules. Ids are assigned per kind, strictly increasing, and never
// reused after a delete. Construct one per process (or per test) with New.
type Store struct {
	mu sync.Mutex

	users      map[int]models.User
	pipelines  map[int]models.Pipeline
	connectors map[int]models.Connector
	jobs       map[int]models.Job
	schedules  map[int]models.Schedule

	nextUserID      int
	nextPipelineID  int
	nextConnectorID int
	nextJobID       int
	nextScheduleID  int

	// rand returns a value in [0,1); now reads the clock. Both are
	// swappable so tests can force connector-test outcomes and record
	// timestamps deterministically.
	rand func() float64
	now  func() time.Time
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithRand replaces the randomness source used by TestConnector.
func WithRand(fn func() float64) Option {
	return func(s *Store) { s.rand = fn }
}

// WithClock replaces the clock used to stamp createdAt/updatedAt/lastTested.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// New returns a store pre-populated with the demo dataset so the UI is not
// empty on first load.
func New(opts ...Option) *Store {
	s := &Store{
		users:           make(map[int]models.User),
		pipelines:       make(map[int]models.Pipeline),
		connectors:      make(map[int]models.Connector),
		jobs:            make(map[int]models.Job),
		schedules:       make(map[int]models.Schedule),
		nextUserID:      1,
		nextPipelineID:  1,
		nextConnectorID: 1,
		nextJobID:       1,
		nextScheduleID:  1,
		rand:            rand.Float64,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

// Users

func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) CreateUser(in models.InsertUser) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{
		ID:       s.nextUserID,
		Username: in.Username,
		Password: in.Password,
	}
	s.nextUserID++
	s.users[u.ID] = u
	return u
}

// Pipelines

func (s *Store) GetPipelines(userID int) []models.Pipeline {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Pipeline{}
	for _, id := range sortedKeys(s.pipelines) {
		if p := s.pipelines[id]; p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) GetPipeline(id int) (models.Pipeline, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pipelines[id]
	return p, ok
}

func (s *Store) CreatePipeline(in models.InsertPipeline) models.Pipeline {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	p := models.Pipeline{
		ID:            s.nextPipelineID,
		Name:          in.Name,
		Description:   in.Description,
		Configuration: in.Configuration,
		Status:        in.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
		UserID:        in.UserID,
	}
	if p.Status == "" {
		p.Status = models.PipelineStatusDraft
	}
	s.nextPipelineID++
	s.pipelines[p.ID] = p
	return p
}

func (s *Store) UpdatePipeline(id int, in models.UpdatePipeline) (models.Pipeline, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pipelines[id]
	if !ok {
		return models.Pipeline{}, false
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Configuration != nil {
		p.Configuration = in.Configuration
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.UserID != nil {
		p.UserID = *in.UserID
	}
	p.UpdatedAt = s.now()
	s.pipelines[id] = p
	return p, true
}

func (s *Store) DeletePipeline(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pipelines[id]
	delete(s.pipelines, id)
	return ok
}

// Connectors

func (s *Store) GetConnectors(userID int) []models.Connector {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Connector{}
	for _, id := range sortedKeys(s.connectors) {
		if c := s.connectors[id]; c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) GetConnector(id int) (models.Connector, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.connectors[id]
	return c, ok
}

func (s *Store) CreateConnector(in models.InsertConnector) models.Connector {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Connector{
		ID:            s.nextConnectorID,
		Name:          in.Name,
		Type:          in.Type,
		Configuration: in.Configuration,
		Status:        in.Status,
		CreatedAt:     s.now(),
		UserID:        in.UserID,
	}
	if c.Status == "" {
		c.Status = models.ConnectorStatusInactive
	}
	s.nextConnectorID++
	s.connectors[c.ID] = c
	return c
}

func (s *Store) UpdateConnector(id int, in models.UpdateConnector) (models.Connector, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.connectors[id]
	if !ok {
		return models.Connector{}, false
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Type != nil {
		c.Type = *in.Type
	}
	if in.Configuration != nil {
		c.Configuration = in.Configuration
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.UserID != nil {
		c.UserID = *in.UserID
	}
	s.connectors[id] = c
	return c, true
}

func (s *Store) DeleteConnector(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.connectors[id]
	delete(s.connectors, id)
	return ok
}

// TestConnector simulates a connectivity check against the named connector.
// No connection is ever attempted: the outcome is a draw from the store's
// randomness source with an 80% success rate. On any outcome the connector's
// status flips to active or error and lastTested is stamped, so the call is
// deliberately not idempotent. A real implementation must keep this
// signature and side effect. Returns false when the id is unknown.
func (s *Store) TestConnector(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.connectors[id]
	if !ok {
		return false
	}
	success := s.rand() > 0.2
	if success {
		c.Status = models.ConnectorStatusActive
	} else {
		c.Status = models.ConnectorStatusError
	}
	tested := s.now()
	c.LastTested = &tested
	s.connectors[id] = c
	return success
}

// Jobs

func (s *Store) GetJobs() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Job{}
	for _, id := range sortedKeys(s.jobs) {
		out = append(out, s.jobs[id])
	}
	return out
}

func (s *Store) GetJobsByPipeline(pipelineID int) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Job{}
	for _, id := range sortedKeys(s.jobs) {
		if j := s.jobs[id]; j.PipelineID == pipelineID {
			out = append(out, j)
		}
	}
	return out
}

func (s *Store) GetJob(id int) (models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	return j, ok
}

func (s *Store) CreateJob(in models.InsertJob) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := models.Job{
		ID:           s.nextJobID,
		PipelineID:   in.PipelineID,
		Status:       in.Status,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Logs:         in.Logs,
		ErrorMessage: in.ErrorMessage,
		CreatedAt:    s.now(),
	}
	if j.Status == "" {
		j.Status = models.JobStatusQueued
	}
	if in.Progress != nil {
		j.Progress = *in.Progress
	}
	s.nextJobID++
	s.jobs[j.ID] = j
	return j
}

func (s *Store) UpdateJob(id int, in models.UpdateJob) (models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return models.Job{}, false
	}
	if in.PipelineID != nil {
		j.PipelineID = *in.PipelineID
	}
	if in.Status != nil {
		j.Status = *in.Status
	}
	if in.StartTime != nil {
		j.StartTime = in.StartTime
	}
	if in.EndTime != nil {
		j.EndTime = in.EndTime
	}
	if in.Progress != nil {
		j.Progress = *in.Progress
	}
	if in.Logs != nil {
		j.Logs = in.Logs
	}
	if in.ErrorMessage != nil {
		j.ErrorMessage = in.ErrorMessage
	}
	s.jobs[id] = j
	return j, true
}

// Schedules

func (s *Store) GetSchedules() []models.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Schedule{}
	for _, id := range sortedKeys(s.schedules) {
		out = append(out, s.schedules[id])
	}
	return out
}

func (s *Store) GetSchedulesByPipeline(pipelineID int) []models.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Schedule{}
	for _, id := range sortedKeys(s.schedules) {
		if sc := s.schedules[id]; sc.PipelineID == pipelineID {
			out = append(out, sc)
		}
	}
	return out
}

func (s *Store) CreateSchedule(in models.InsertSchedule) models.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc := models.Schedule{
		ID:             s.nextScheduleID,
		PipelineID:     in.PipelineID,
		CronExpression: in.CronExpression,
		IsActive:       true,
		NextRun:        in.NextRun,
		LastRun:        in.LastRun,
		CreatedAt:      s.now(),
	}
	if in.IsActive != nil {
		sc.IsActive = *in.IsActive
	}
	s.nextScheduleID++
	s.schedules[sc.ID] = sc
	return sc
}

func (s *Store) UpdateSchedule(id int, in models.UpdateSchedule) (models.Schedule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.schedules[id]
	if !ok {
		return models.Schedule{}, false
	}
	if in.PipelineID != nil {
		sc.PipelineID = *in.PipelineID
	}
	if in.CronExpression != nil {
		sc.CronExpression = *in.CronExpression
	}
	if in.IsActive != nil {
		sc.IsActive = *in.IsActive
	}
	if in.NextRun != nil {
		sc.NextRun = in.NextRun
	}
	if in.LastRun != nil {
		sc.LastRun = in.LastRun
	}
	s.schedules[id] = sc
	return sc, true
}

func (s *Store) DeleteSchedule(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.schedules[id]
	delete(s.schedules, id)
	return ok
}

// sortedKeys returns map keys ascending. Ids are assigned in insertion
// order and never reused, so this reproduces insertion order for listings.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
