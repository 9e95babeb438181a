package router

import (
	"github.com/labstack/echo/v4"

	"realestate/internal/adapter/api/handler"
	"realestate/internal/infrastructure/metrics"
)

func SetupHealthRouter(e *echo.Echo, metricsManager *metrics.MetricsManager) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/health", healthHandler.CheckHealth)

	if metricsManager != nil {
		e.GET("/metrics", echo.WrapHandler(metricsManager.Handler()))
	}
}
