package handler

import (
	"github.com/labstack/echo/v4"

	"realestate/internal/usecase"
	"realestate/pkg/errors"
	"realestate/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

type addFavoriteRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorites, err := h.favoriteUseCase.ListFavorites(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	favorite, err := h.favoriteUseCase.AddFavorite(c.Request().Context(), uid, req.PropertyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message":  "Added to favorites",
		"favorite": favorite,
	})
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.favoriteUseCase.RemoveFavorite(c.Request().Context(), uid, c.Param("propertyId")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Removed from favorites")
}

func (h *FavoriteHandler) FavoriteStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	status, err := h.favoriteUseCase.FavoriteStatus(c.Request().Context(), uid, c.Param("propertyId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, status)
}
