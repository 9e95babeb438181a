package router

import (
	"github.com/labstack/echo/v4"

	"realestate/internal/adapter/api/middleware"
	"realestate/internal/infrastructure/metrics"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, metricsManager *metrics.MetricsManager) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupPropertyRouter(e, authMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupHealthRouter(e, metricsManager)
}
