package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SankarPatnaik/dataflow-studio/models"
	"github.com/SankarPatnaik/dataflow-studio/storage"
	"github.com/SankarPatnaik/dataflow-studio/validation"
)

type JobController struct {
	Store *storage.Store
}

func NewJobController(store *storage.Store) *JobController {
	return &JobController{Store: store}
}

// List handles GET /api/jobs. Jobs are not scoped to an owner; the monitor
// shows every run.
func (jc *JobController) List(c *gin.Context) {
	c.JSON(http.StatusOK, jc.Store.GetJobs())
}

// ListByPipeline handles GET /api/jobs/pipeline/:pipelineId. Unknown
// pipeline ids simply match nothing.
func (jc *JobController) ListByPipeline(c *gin.Context) {
	pipelineID, ok := pathID(c, "pipelineId")
	if !ok {
		c.JSON(http.StatusOK, []models.Job{})
		return
	}
	c.JSON(http.StatusOK, jc.Store.GetJobsByPipeline(pipelineID))
}

// Create handles POST /api/jobs.
func (jc *JobController) Create(c *gin.Context) {
	var payload models.InsertJob
	if err := c.ShouldBindJSON(&payload); err != nil {
		badBody(c, "Invalid job data", err)
		return
	}
	if errs := validation.Check(payload); errs != nil {
		invalid(c, "Invalid job data", errs)
		return
	}
	job := jc.Store.CreateJob(payload)
	c.JSON(http.StatusCreated, job)
}

// Update handles PUT /api/jobs/:id.
func (jc *JobController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Job not found")
		return
	}
	var updates models.UpdateJob
	if err := c.ShouldBindJSON(&updates); err != nil {
		badBody(c, "Invalid job data", err)
		return
	}
	job, ok := jc.Store.UpdateJob(id, updates)
	if !ok {
		notFound(c, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}
