package repository

import (
	"context"

	"realestate/internal/domain/entity"
)

type FavoriteRepository interface {
	// Create fails with a BAD_REQUEST AppError when the (user, property) pair exists.
	Create(ctx context.Context, favorite *entity.Favorite) error
	Exists(ctx context.Context, userID, propertyID string) (bool, error)
	// ListByUser returns the user's favorites, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)
	// Delete fails with a NOT_FOUND AppError when the pair does not exist.
	Delete(ctx context.Context, userID, propertyID string) error
}
