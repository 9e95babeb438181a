package usecase

import (
	"context"
	"time"

	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
	"realestate/pkg/errors"
	"realestate/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	propertyRepo repository.PropertyRepository
	activity     ActivityRecorder
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	propertyRepo repository.PropertyRepository,
	activity ActivityRecorder,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
		activity:     recorderOrNoop(activity),
	}
}

type FavoriteStatus struct {
	PropertyID string `json:"propertyId"`
	IsFavorite bool   `json:"isFavorite"`
}

// ListFavorites returns the user's favorites joined with their properties.
// Favorites whose property has been deleted are skipped.
func (u *FavoriteUseCase) ListFavorites(ctx context.Context, userID string) ([]*entity.FavoriteWithProperty, error) {
	favorites, err := u.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.PropertyID)
	}

	properties, err := u.propertyRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.FavoriteWithProperty, 0, len(favorites))
	for _, f := range favorites {
		property, ok := properties[f.PropertyID]
		if !ok {
			continue
		}
		result = append(result, withProperty(f, property))
	}

	return result, nil
}

func (u *FavoriteUseCase) AddFavorite(ctx context.Context, userID, propertyID string) (*entity.FavoriteWithProperty, error) {
	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	exists, err := u.favoriteRepo.Exists(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.BadRequest("Property already in favorites", nil)
	}

	favorite := &entity.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}

	// a concurrent duplicate still fails here with the same BAD_REQUEST
	if err := u.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}

	u.activity.FavoriteAdded()
	logger.Debug("user %s favorited property %s", userID, propertyID)

	return withProperty(favorite, property), nil
}

func (u *FavoriteUseCase) RemoveFavorite(ctx context.Context, userID, propertyID string) error {
	return u.favoriteRepo.Delete(ctx, userID, propertyID)
}

func (u *FavoriteUseCase) FavoriteStatus(ctx context.Context, userID, propertyID string) (*FavoriteStatus, error) {
	exists, err := u.favoriteRepo.Exists(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}

	return &FavoriteStatus{
		PropertyID: propertyID,
		IsFavorite: exists,
	}, nil
}

func withProperty(f *entity.Favorite, p *entity.Property) *entity.FavoriteWithProperty {
	return &entity.FavoriteWithProperty{
		ID:         f.ID,
		UserID:     f.UserID,
		PropertyID: f.PropertyID,
		Property:   p,
		CreatedAt:  f.CreatedAt,
	}
}
