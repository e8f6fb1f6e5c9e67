package routes

import (
	"net/http"

	"go-scheduler-api/src/domain/common"
	"go-scheduler-api/src/infrastructure/di"
	"go-scheduler-api/src/infrastructure/rest/middlewares"

	"github.com/gin-gonic/gin"
)

var endpoints = []string{
	"/status",
	"/send-message",
	"/messages",
	"/api/health",
	"/api/auth/login",
	"/api/messages",
	"/api/messages/send",
	"/api/templates",
}

// SetupRouter builds the engine with every middleware and route.
func SetupRouter(appContext *di.ApplicationContext) *gin.Engine {
	router := gin.New()

	router.Use(middlewares.Recovery(appContext.Logger))
	router.Use(middlewares.RequestID(appContext.Logger))
	router.Use(middlewares.CORS())
	router.Use(middlewares.CommonHeaders)
	router.Use(appContext.Logger.GinZapLogger())
	router.Use(middlewares.ErrorHandler(appContext.Logger))

	router.NoRoute(middlewares.NotFound)

	ApplicationRouter(router, appContext)
	return router
}

func ApplicationRouter(router *gin.Engine, appContext *di.ApplicationContext) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Message Scheduler API",
			"version":   common.APIVersion,
			"status":    "running",
			"endpoints": endpoints,
		})
	})

	MessageRoutes(router, appContext.MessageController)

	api := router.Group("/api")
	ScheduleRoutes(api, appContext.ScheduleController)
	AuthRoutes(api, appContext.AuthController)
}
