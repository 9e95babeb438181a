package repository

import (
	"context"
	stderrors "errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
	"realestate/pkg/errors"
)

type mongoReviewRepository struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &mongoReviewRepository{collection: db.Collection(reviewsCollection)}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	doc := toReviewDocument(review)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return errors.Internal("Failed to create review", err)
	}

	review.ID = doc.ID.Hex()
	return nil
}

func (r *mongoReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	oid, err := objectID("Review", id)
	if err != nil {
		return nil, err
	}

	var doc reviewDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to get review", err)
	}
	return doc.toDomain(), nil
}

func (r *mongoReviewRepository) ListByProperty(ctx context.Context, propertyID string) ([]*entity.Review, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"property": propertyID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, errors.Internal("Failed to get reviews", err)
	}
	defer cursor.Close(ctx)

	var docs []*reviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Internal("Failed to decode reviews", err)
	}

	reviews := make([]*entity.Review, len(docs))
	for i, doc := range docs {
		reviews[i] = doc.toDomain()
	}
	return reviews, nil
}

func (r *mongoReviewRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID("Review", id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Internal("Failed to delete review", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Review", nil)
	}
	return nil
}
