package routes

import (
	"sqv_cleaning/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog  = "/catalog"
	PathEstimate = "/estimate"
	PathHandoff  = "/handoff"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	rg.GET(PathCatalog, estimateHandler.GetCatalog)

	estimate := rg.Group(PathEstimate)
	{
		estimate.POST("/compute", estimateHandler.Compute)
		estimate.POST("/commands", estimateHandler.ApplyCommand)
	}

	handoff := rg.Group(PathHandoff)
	{
		handoff.POST("", estimateHandler.SaveHandoff)
		handoff.GET("", estimateHandler.GetHandoff)
	}
}
