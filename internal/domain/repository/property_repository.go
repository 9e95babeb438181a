package repository

import (
	"context"

	"realestate/internal/domain/entity"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Property, error)
	// List returns one page of the filtered set, newest first, and the size of the whole set.
	List(ctx context.Context, filter entity.PropertyFilter, limit, offset int) ([]*entity.Property, int64, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id string) error
}
