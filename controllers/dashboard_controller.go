package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SankarPatnaik/dataflow-studio/models"
	"github.com/SankarPatnaik/dataflow-studio/storage"
)

// dataProcessedPlaceholder is a hardcoded display value; no throughput
// metric exists to compute it from.
const dataProcessedPlaceholder = "2.4TB"

// DashboardStats is the aggregate the dashboard header renders.
type DashboardStats struct {
	ActivePipelines int    `json:"activePipelines"`
	DataSources     int    `json:"dataSources"`
	JobsToday       int    `json:"jobsToday"`
	DataProcessed   string `json:"dataProcessed"`
	SuccessRate     string `json:"successRate"`
}

type DashboardController struct {
	Store *storage.Store
}

func NewDashboardController(store *storage.Store) *DashboardController {
	return &DashboardController{Store: store}
}

// Stats handles GET /api/dashboard/stats. The aggregate holds no state of
// its own and is recomputed from the store on every call.
func (dc *DashboardController) Stats(c *gin.Context) {
	userID := currentUserID(c)

	active := 0
	for _, p := range dc.Store.GetPipelines(userID) {
		if p.Status == models.PipelineStatusActive {
			active++
		}
	}

	dataSources := len(dc.Store.GetConnectors(userID))

	today := time.Now()
	jobsToday, completedToday := 0, 0
	for _, j := range dc.Store.GetJobs() {
		if !sameDay(j.CreatedAt, today) {
			continue
		}
		jobsToday++
		if j.Status == models.JobStatusCompleted {
			completedToday++
		}
	}

	successRate := 0.0
	if jobsToday > 0 {
		successRate = float64(completedToday) / float64(jobsToday) * 100
	}

	c.JSON(http.StatusOK, DashboardStats{
		ActivePipelines: active,
		DataSources:     dataSources,
		JobsToday:       jobsToday,
		DataProcessed:   dataProcessedPlaceholder,
		SuccessRate:     strconv.FormatFloat(successRate, 'f', 1, 64),
	})
}

// sameDay compares wall-clock calendar dates.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
