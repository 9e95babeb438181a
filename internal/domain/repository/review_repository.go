package repository

import (
	"context"

	"realestate/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	// ListByProperty returns every review of the property, newest first.
	ListByProperty(ctx context.Context, propertyID string) ([]*entity.Review, error)
	Delete(ctx context.Context, id string) error
}
