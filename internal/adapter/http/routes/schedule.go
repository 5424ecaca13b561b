package routes

import (
	"sqv_cleaning/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSchedule = "/schedule"

func addScheduleRoutes(rg *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler) {
	schedule := rg.Group(PathSchedule)
	{
		schedule.GET("", scheduleHandler.Open)
		schedule.POST("/compute", scheduleHandler.Compute)
		schedule.POST("/commands", scheduleHandler.ApplyCommand)
		schedule.GET("/slots", scheduleHandler.Slots)
		schedule.POST("/submit", scheduleHandler.Submit)
	}
}
