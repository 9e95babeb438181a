package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
	"realestate/pkg/errors"
)

// mongoFavoriteRepository relies on the unique (user, property) index from
// EnsureMongoIndexes to reject duplicates.
type mongoFavoriteRepository struct {
	collection *mongo.Collection
}

func NewMongoFavoriteRepository(db *mongo.Database) repository.FavoriteRepository {
	return &mongoFavoriteRepository{collection: db.Collection(favoritesCollection)}
}

func (r *mongoFavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	doc := &favoriteDocument{
		ID:        primitive.NewObjectID(),
		User:      favorite.UserID,
		Property:  favorite.PropertyID,
		CreatedAt: favorite.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.BadRequest("Property already in favorites", err)
		}
		return errors.Internal("Failed to add favorite", err)
	}

	favorite.ID = doc.ID.Hex()
	return nil
}

func (r *mongoFavoriteRepository) Exists(ctx context.Context, userID, propertyID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx,
		bson.M{"user": userID, "property": propertyID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, errors.Internal("Failed to check favorite", err)
	}
	return count > 0, nil
}

func (r *mongoFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"user": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, errors.Internal("Failed to get favorites", err)
	}
	defer cursor.Close(ctx)

	var docs []*favoriteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Internal("Failed to decode favorites", err)
	}

	favorites := make([]*entity.Favorite, len(docs))
	for i, doc := range docs {
		favorites[i] = doc.toDomain()
	}
	return favorites, nil
}

func (r *mongoFavoriteRepository) Delete(ctx context.Context, userID, propertyID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"user": userID, "property": propertyID})
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Favorite", nil)
	}
	return nil
}
