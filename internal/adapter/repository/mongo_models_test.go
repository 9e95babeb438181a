package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"realestate/internal/domain/entity"
	"realestate/pkg/errors"
)

func TestPropertyQuery(t *testing.T) {
	bedrooms := 3
	lo, hi := 5_000_000.0, 9_000_000.0

	query := propertyQuery(entity.PropertyFilter{
		City:          "Pune",
		PropertyType:  "apartment",
		ListingStatus: entity.ListingStatusAvailable,
		Bedrooms:      &bedrooms,
		MinPrice:      &lo,
		MaxPrice:      &hi,
	})

	assert.Equal(t, bson.M{
		"city":          "Pune",
		"propertyType":  "apartment",
		"listingStatus": entity.ListingStatusAvailable,
		"bedrooms":      3,
		"price":         bson.M{"$gte": lo, "$lte": hi},
	}, query)

	assert.Equal(t, bson.M{}, propertyQuery(entity.PropertyFilter{}))
}

func TestPropertyDocumentConversion(t *testing.T) {
	id := primitive.NewObjectID()
	p := &entity.Property{ID: id.Hex(), Title: "Villa", SellerID: "seller-1"}

	doc := toPropertyDocument(p)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "seller-1", doc.Seller)

	back := doc.toDomain()
	assert.Equal(t, p.ID, back.ID)
	assert.Equal(t, entity.ListingStatusAvailable, back.ListingStatus)
	assert.Equal(t, []string{}, back.Images)

	assert.True(t, toPropertyDocument(&entity.Property{}).ID.IsZero())
}

func TestObjectIDRejectsMalformedIDs(t *testing.T) {
	_, err := objectID("Property", "abc")
	assert.True(t, errors.IsNotFound(err))

	assert.Len(t, objectIDs([]string{primitive.NewObjectID().Hex(), "abc", ""}), 1)
}
