package router

import (
	"github.com/labstack/echo/v4"

	"realestate/internal/adapter/api/handler"
	"realestate/internal/adapter/api/middleware"
)

func SetupPropertyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	propertyHandler := handler.GetPropertyHandler()

	properties := e.Group("/api/properties")
	properties.GET("", propertyHandler.ListProperties)
	properties.GET("/:id", propertyHandler.GetProperty)

	// Owner routes; ownership itself is checked in the use case.
	properties.POST("", propertyHandler.CreateProperty, authMiddleware.Authenticate)
	properties.PUT("/:id", propertyHandler.UpdateProperty, authMiddleware.Authenticate)
	properties.DELETE("/:id", propertyHandler.DeleteProperty, authMiddleware.Authenticate)
	properties.POST("/:id/images", propertyHandler.UploadImage, authMiddleware.Authenticate)
}
