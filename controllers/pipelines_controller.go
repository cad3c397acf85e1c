package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SankarPatnaik/dataflow-studio/models"
	"github.com/SankarPatnaik/dataflow-studio/storage"
	"github.com/SankarPatnaik/dataflow-studio/validation"
)

type PipelineController struct {
	Store *storage.Store
}

func NewPipelineController(store *storage.Store) *PipelineController {
	return &PipelineController{Store: store}
}

// List handles GET /api/pipelines.
func (pc *PipelineController) List(c *gin.Context) {
	pipelines := pc.Store.GetPipelines(currentUserID(c))
	c.JSON(http.StatusOK, pipelines)
}

// Get handles GET /api/pipelines/:id.
func (pc *PipelineController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Pipeline not found")
		return
	}
	pipeline, ok := pc.Store.GetPipeline(id)
	if !ok {
		notFound(c, "Pipeline not found")
		return
	}
	c.JSON(http.StatusOK, pipeline)
}

// Create handles POST /api/pipelines.
func (pc *PipelineController) Create(c *gin.Context) {
	var payload models.InsertPipeline
	if err := c.ShouldBindJSON(&payload); err != nil {
		badBody(c, "Invalid pipeline data", err)
		return
	}
	// Owner comes from the request identity, never the body.
	payload.UserID = currentUserID(c)
	if errs := validation.Check(payload); errs != nil {
		invalid(c, "Invalid pipeline data", errs)
		return
	}
	pipeline := pc.Store.CreatePipeline(payload)
	c.JSON(http.StatusCreated, pipeline)
}

// Update handles PUT /api/pipelines/:id.
func (pc *PipelineController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Pipeline not found")
		return
	}
	var updates models.UpdatePipeline
	if err := c.ShouldBindJSON(&updates); err != nil {
		badBody(c, "Invalid pipeline data", err)
		return
	}
	pipeline, ok := pc.Store.UpdatePipeline(id, updates)
	if !ok {
		notFound(c, "Pipeline not found")
		return
	}
	c.JSON(http.StatusOK, pipeline)
}

// Delete handles DELETE /api/pipelines/:id.
func (pc *PipelineController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Pipeline not found")
		return
	}
	if !pc.Store.DeletePipeline(id) {
		notFound(c, "Pipeline not found")
		return
	}
	c.Status(http.StatusNoContent)
}
