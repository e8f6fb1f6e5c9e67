package routes

import (
	scheduleController "go-scheduler-api/src/infrastructure/rest/controllers/schedule"

	"github.com/gin-gonic/gin"
)

func ScheduleRoutes(router *gin.RouterGroup, controller scheduleController.IScheduleController) {
	router.GET("/health", controller.Health)
	router.GET("/templates", controller.GetTemplates)

	routerMessages := router.Group("/messages")
	{
		routerMessages.GET("", controller.GetAll)
		routerMessages.POST("", controller.Schedule)
		routerMessages.POST("/send", controller.SendNow)
	}
}
