package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"realestate/pkg/logger"
)

// RequestLogger writes one structured line per request through zap.
func RequestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.RequestID != "" {
				fields = append(fields, zap.String("request_id", v.RequestID))
			}
			if uid, ok := c.Get("uid").(string); ok {
				fields = append(fields, zap.String("uid", uid))
			}

			switch {
			case v.Status >= 500:
				logger.L().Error("request failed", append(fields, zap.Error(v.Error))...)
			case v.Status >= 400:
				logger.L().Warn("request rejected", fields...)
			default:
				logger.L().Info("request", fields...)
			}
			return nil
		},
	})
}
