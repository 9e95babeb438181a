package router

import (
	"github.com/labstack/echo/v4"

	"realestate/internal/adapter/api/handler"
	"realestate/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/api/reviews")
	reviews.GET("/property/:propertyId", reviewHandler.ListPropertyReviews)
	reviews.POST("", reviewHandler.CreateReview, authMiddleware.Authenticate)
	reviews.DELETE("/:id", reviewHandler.DeleteReview, authMiddleware.Authenticate)
}
