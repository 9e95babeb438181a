package handler

import (
	"github.com/labstack/echo/v4"

	"realestate/internal/usecase"
	"realestate/pkg/errors"
	"realestate/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	Property   string `json:"property" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"required,max=2000"`
	ReviewType string `json:"reviewType" validate:"omitempty,oneof=property agent seller"`
}

func (h *ReviewHandler) ListPropertyReviews(c echo.Context) error {
	result, err := h.reviewUseCase.ListPropertyReviews(c.Request().Context(), c.Param("propertyId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), uid, usecase.CreateReviewInput{
		PropertyID: req.Property,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ReviewType: req.ReviewType,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message": "Review created successfully",
		"review":  review,
	})
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Review deleted successfully")
}
