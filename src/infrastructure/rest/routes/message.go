package routes

import (
	messageController "go-scheduler-api/src/infrastructure/rest/controllers/message"

	"github.com/gin-gonic/gin"
)

func MessageRoutes(router gin.IRouter, controller messageController.IMessageController) {
	router.GET("/status", controller.Status)
	router.POST("/send-message", controller.SendMessage)

	routerMessages := router.Group("/messages")
	{
		routerMessages.GET("", controller.GetMessages)
		routerMessages.GET("/:id", controller.GetMessage)
		routerMessages.DELETE("", controller.DeleteMessages)
	}
}
