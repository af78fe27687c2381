package app

import (
	"exam_ingest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/exams", c.exam.ListExams)
		api.GET("/exams/:id", c.exam.GetExam)
		api.GET("/exams/:id/questions", c.exam.ListQuestions)

		importGroup := api.Group("/import")
		{
			importGroup.POST("/file", c.importer.ImportFile)
			importGroup.POST("/directory", c.importer.ImportDirectory)
			importGroup.GET("/runs", c.importer.ListRuns)
		}
	}
}
