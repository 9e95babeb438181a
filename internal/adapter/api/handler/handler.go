package handler

import (
	"realestate/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	propertyHandler *PropertyHandler
	favoriteHandler *FavoriteHandler
	reviewHandler   *ReviewHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	propertyUseCase *usecase.PropertyUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	reviewUseCase *usecase.ReviewUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	propertyHandler = NewPropertyHandler(propertyUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}
