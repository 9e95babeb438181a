package handler

import (
	"github.com/labstack/echo/v4"

	"realestate/internal/usecase"
	"realestate/pkg/errors"
	"realestate/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// updateProfileRequest only names the client-writable fields; anything else
// in the body is dropped by the decoder.
type updateProfileRequest struct {
	FirstName    *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName     *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Company      *string `json:"company" validate:"omitempty,max=200"`
	Bio          *string `json:"bio" validate:"omitempty,max=2000"`
	Location     *string `json:"location" validate:"omitempty,max=200"`
	ProfileImage *string `json:"profileImage" validate:"omitempty,url"`
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetUserProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, c.Param("id"), usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Company:      req.Company,
		Bio:          req.Bio,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
