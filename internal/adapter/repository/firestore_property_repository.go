package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
	"realestate/pkg/errors"
	"realestate/pkg/utils"
)

type firestorePropertyRepository struct {
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		client: client,
	}
}

func (r *firestorePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}

	_, err := r.client.Collection(propertiesCollection).Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to create property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	if id == "" {
		return nil, errors.NotFound("Property", nil)
	}

	doc, err := r.client.Collection(propertiesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to get property", err)
	}

	return propertyFromDoc(doc)
}

func (r *firestorePropertyRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Property, error) {
	docs, err := getAllExisting(ctx, r.client, propertiesCollection, ids)
	if err != nil {
		return nil, errors.Internal("Failed to get properties", err)
	}

	properties := make(map[string]*entity.Property, len(docs))
	for _, doc := range docs {
		property, err := propertyFromDoc(doc)
		if err != nil {
			return nil, err
		}
		properties[property.ID] = property
	}

	return properties, nil
}

// List pushes the equality filters to Firestore and applies the price range
// in memory, so no composite index on price is needed.
func (r *firestorePropertyRepository) List(ctx context.Context, filter entity.PropertyFilter, limit, offset int) ([]*entity.Property, int64, error) {
	query := r.client.Collection(propertiesCollection).Query

	if filter.City != "" {
		query = query.Where("city", "==", filter.City)
	}
	if filter.PropertyType != "" {
		query = query.Where("propertyType", "==", filter.PropertyType)
	}
	if filter.SellerID != "" {
		query = query.Where("seller", "==", filter.SellerID)
	}
	if filter.ListingStatus != "" {
		query = query.Where("listingStatus", "==", filter.ListingStatus)
	}
	if filter.Bedrooms != nil {
		query = query.Where("bedrooms", "==", *filter.Bedrooms)
	}
	if filter.Bathrooms != nil {
		query = query.Where("bathrooms", "==", *filter.Bathrooms)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var matched []*entity.Property
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list properties", err)
		}

		property, err := propertyFromDoc(doc)
		if err != nil {
			return nil, 0, err
		}
		if filter.Matches(property) {
			matched = append(matched, property)
		}
	}

	return utils.Page(matched, limit, offset), int64(len(matched)), nil
}

func (r *firestorePropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	_, err := r.client.Collection(propertiesCollection).Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to update property", err)
	}
	return nil
}

func (r *firestorePropertyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(propertiesCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Property", err)
		}
		return errors.Internal("Failed to delete property", err)
	}
	return nil
}

func propertyFromDoc(doc *firestore.DocumentSnapshot) (*entity.Property, error) {
	var property entity.Property
	if err := doc.DataTo(&property); err != nil {
		return nil, errors.Internal("Failed to parse property data", err)
	}
	property.ID = doc.Ref.ID
	property.ApplyDefaults()
	return &property, nil
}
