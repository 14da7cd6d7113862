package api

import (
	"github.com/gin-gonic/gin"

	"orgboard/internal/handlers"
)

func registerOrganizationRoutes(api *gin.RouterGroup, handler *handlers.OrganizationHandler) {
	orgs := api.Group("/organizations")
	{
		orgs.GET("", handler.List)
		orgs.GET("/:id", handler.Get)
		orgs.POST("", handler.Create)
		orgs.PUT("/:id", handler.Update)
		orgs.PATCH("/:id/status", handler.UpdateStatus)
		orgs.DELETE("/:id", handler.Delete)
	}
}
