package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SankarPatnaik/dataflow-studio/models"
	"github.com/SankarPatnaik/dataflow-studio/storage"
	"github.com/SankarPatnaik/dataflow-studio/validation"
)

type ScheduleController struct {
	Store *storage.Store
}

func NewScheduleController(store *storage.Store) *ScheduleController {
	return &ScheduleController{Store: store}
}

// List handles GET /api/schedules.
func (sc *ScheduleController) List(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Store.GetSchedules())
}

// Create handles POST /api/schedules. The cron expression is stored as
// given; nothing here parses or evaluates it.
func (sc *ScheduleController) Create(c *gin.Context) {
	var payload models.InsertSchedule
	if err := c.ShouldBindJSON(&payload); err != nil {
		badBody(c, "Invalid schedule data", err)
		return
	}
	if errs := validation.Check(payload); errs != nil {
		invalid(c, "Invalid schedule data", errs)
		return
	}
	schedule := sc.Store.CreateSchedule(payload)
	c.JSON(http.StatusCreated, schedule)
}

// Update handles PUT /api/schedules/:id.
func (sc *ScheduleController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Schedule not found")
		return
	}
	var updates models.UpdateSchedule
	if err := c.ShouldBindJSON(&updates); err != nil {
		badBody(c, "Invalid schedule data", err)
		return
	}
	schedule, ok := sc.Store.UpdateSchedule(id, updates)
	if !ok {
		notFound(c, "Schedule not found")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// Delete handles DELETE /api/schedules/:id.
func (sc *ScheduleController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Schedule not found")
		return
	}
	if !sc.Store.DeleteSchedule(id) {
		notFound(c, "Schedule not found")
		return
	}
	c.Status(http.StatusNoContent)
}
