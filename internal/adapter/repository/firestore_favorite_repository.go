package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
	"realestate/pkg/errors"
	"realestate/pkg/logger"
)

// firestoreFavoriteRepository keys favorites by "<user>_<property>" so the
// document ID itself enforces one favorite per pair.
type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{client: client}
}

func (r *firestoreFavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favorite.ID = entity.FavoriteKey(favorite.UserID, favorite.PropertyID)

	_, err := r.client.Collection(favoritesCollection).Doc(favorite.ID).Create(ctx, favorite)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.BadRequest("Property already in favorites", err)
		}
		return errors.Internal("Failed to add favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Exists(ctx context.Context, userID, propertyID string) (bool, error) {
	doc, err := r.client.Collection(favoritesCollection).Doc(entity.FavoriteKey(userID, propertyID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	iter := r.client.Collection(favoritesCollection).
		Where("user", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	favorites := []*entity.Favorite{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to get favorites", err)
		}

		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			logger.Warn("skipping unreadable favorite %s: %v", doc.Ref.ID, err)
			continue
		}
		favorite.ID = doc.Ref.ID
		favorites = append(favorites, &favorite)
	}

	return favorites, nil
}

func (r *firestoreFavoriteRepository) Delete(ctx context.Context, userID, propertyID string) error {
	_, err := r.client.Collection(favoritesCollection).
		Doc(entity.FavoriteKey(userID, propertyID)).
		Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Favorite", err)
		}
		return errors.Internal("Failed to remove favorite", err)
	}

	return nil
}
