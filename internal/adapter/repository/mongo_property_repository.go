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

type mongoPropertyRepository struct {
	collection *mongo.Collection
}

func NewMongoPropertyRepository(db *mongo.Database) repository.PropertyRepository {
	return &mongoPropertyRepository{collection: db.Collection(propertiesCollection)}
}

func (r *mongoPropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	doc := toPropertyDocument(property)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return errors.Internal("Failed to create property", err)
	}

	property.ID = doc.ID.Hex()
	return nil
}

func (r *mongoPropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	oid, err := objectID("Property", id)
	if err != nil {
		return nil, err
	}

	var doc propertyDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to get property", err)
	}
	return doc.toDomain(), nil
}

func (r *mongoPropertyRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Property, error) {
	properties := make(map[string]*entity.Property, len(ids))

	oids := objectIDs(ids)
	if len(oids) == 0 {
		return properties, nil
	}

	docs, err := r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, options.Find())
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		p := doc.toDomain()
		properties[p.ID] = p
	}
	return properties, nil
}

func (r *mongoPropertyRepository) List(ctx context.Context, filter entity.PropertyFilter, limit, offset int) ([]*entity.Property, int64, error) {
	query := propertyQuery(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count properties", err)
	}
	if offset < 0 || int64(offset) >= total {
		return []*entity.Property{}, total, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	docs, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	properties := make([]*entity.Property, len(docs))
	for i, doc := range docs {
		properties[i] = doc.toDomain()
	}
	return properties, total, nil
}

func (r *mongoPropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	oid, err := objectID("Property", property.ID)
	if err != nil {
		return err
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, toPropertyDocument(property))
	if err != nil {
		return errors.Internal("Failed to update property", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Property", nil)
	}
	return nil
}

func (r *mongoPropertyRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID("Property", id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Internal("Failed to delete property", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Property", nil)
	}
	return nil
}

func (r *mongoPropertyRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*propertyDocument, error) {
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Internal("Failed to query properties", err)
	}
	defer cursor.Close(ctx)

	var docs []*propertyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Internal("Failed to decode properties", err)
	}
	return docs, nil
}

// propertyQuery maps the filter onto equality predicates plus an inclusive price range.
func propertyQuery(filter entity.PropertyFilter) bson.M {
	query := bson.M{}

	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.PropertyType != "" {
		query["propertyType"] = filter.PropertyType
	}
	if filter.SellerID != "" {
		query["seller"] = filter.SellerID
	}
	if filter.ListingStatus != "" {
		query["listingStatus"] = filter.ListingStatus
	}
	if filter.Bedrooms != nil {
		query["bedrooms"] = *filter.Bedrooms
	}
	if filter.Bathrooms != nil {
		query["bathrooms"] = *filter.Bathrooms
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query
}
