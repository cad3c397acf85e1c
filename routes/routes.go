// Package routes assembles the gin engine: middleware chain plus the
// resource route table.
package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SankarPatnaik/dataflow-studio/controllers"
	"github.com/SankarPatnaik/dataflow-studio/middleware"
	"github.com/SankarPatnaik/dataflow-studio/storage"
)

// SetupRoutes builds the router over the given store.
func SetupRoutes(store *storage.Store, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.Identity(),
	)

	pipelines := controllers.NewPipelineController(store)
	connectors := controllers.NewConnectorController(store)
	jobs := controllers.NewJobController(store)
	schedules := controllers.NewScheduleController(store)
	dashboard := controllers.NewDashboardController(store)

	api := router.Group("/api")

	api.GET("/pipelines", pipelines.List)
	api.GET("/pipelines/:id", pipelines.Get)
	api.POST("/pipelines", pipelines.Create)
	api.PUT("/pipelines/:id", pipelines.Update)
	api.DELETE("/pipelines/:id", pipelines.Delete)

	api.GET("/connectors", connectors.List)
	api.GET("/connectors/:id", connectors.Get)
	api.POST("/connectors", connectors.Create)
	api.POST("/connectors/:id/test", connectors.Test)
	api.PUT("/connectors/:id", connectors.Update)
	api.DELETE("/connectors/:id", connectors.Delete)

	api.GET("/jobs", jobs.List)
	api.GET("/jobs/pipeline/:pipelineId", jobs.ListByPipeline)
	api.POST("/jobs", jobs.Create)
	api.PUT("/jobs/:id", jobs.Update)

	api.GET("/schedules", schedules.List)
	api.POST("/schedules", schedules.Create)
	api.PUT("/schedules/:id", schedules.Update)
	api.DELETE("/schedules/:id", schedules.Delete)

	api.GET("/dashboard/stats", dashboard.Stats)

	return router
}
