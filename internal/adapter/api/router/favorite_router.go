package router

import (
	"github.com/labstack/echo/v4"

	"realestate/internal/adapter/api/handler"
	"realestate/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/api/favorites")
	favorites.Use(authMiddleware.Authenticate)

	favorites.GET("", favoriteHandler.ListFavorites)
	favorites.POST("", favoriteHandler.AddFavorite)
	favorites.DELETE("/:propertyId", favoriteHandler.RemoveFavorite)
	favorites.GET("/:propertyId/status", favoriteHandler.FavoriteStatus)
}
