package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"realestate/internal/domain/entity"
	"realestate/pkg/errors"
)

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"firstName"`
	LastName     string             `bson:"lastName"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	Phone        string             `bson:"phone,omitempty"`
	UserType     string             `bson:"userType"`
	Company      string             `bson:"company,omitempty"`
	Bio          string             `bson:"bio,omitempty"`
	Location     string             `bson:"location,omitempty"`
	ProfileImage string             `bson:"profileImage,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

type propertyDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description"`
	Price          float64            `bson:"price"`
	PropertyType   string             `bson:"propertyType"`
	Bedrooms       int                `bson:"bedrooms"`
	Bathrooms      int                `bson:"bathrooms"`
	Area           float64            `bson:"area"`
	Address        string             `bson:"address"`
	City           string             `bson:"city"`
	State          string             `bson:"state"`
	ZipCode        string             `bson:"zipCode,omitempty"`
	Latitude       *float64           `bson:"latitude,omitempty"`
	Longitude      *float64           `bson:"longitude,omitempty"`
	Images         []string           `bson:"images"`
	VirtualTourURL string             `bson:"virtualTourUrl,omitempty"`
	Amenities      []string           `bson:"amenities"`
	ListingStatus  string             `bson:"listingStatus"`
	Seller         string             `bson:"seller"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

type favoriteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      string             `bson:"user"`
	Property  string             `bson:"property"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type reviewDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Property   string             `bson:"property"`
	Reviewer   string             `bson:"reviewer"`
	Rating     int                `bson:"rating"`
	Comment    string             `bson:"comment"`
	ReviewType string             `bson:"reviewType"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

// objectID parses a hex ID. Malformed IDs cannot exist in the store, so they
// are reported as not found.
func objectID(resource, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.NotFound(resource, err)
	}
	return oid, nil
}

func objectIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}

func toUserDocument(u *entity.User) *userDocument {
	doc := &userDocument{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		UserType:     u.UserType,
		Company:      u.Company,
		Bio:          u.Bio,
		Location:     u.Location,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(u.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func (d *userDocument) toDomain() *entity.User {
	return &entity.User{
		ID:           d.ID.Hex(),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		UserType:     d.UserType,
		Company:      d.Company,
		Bio:          d.Bio,
		Location:     d.Location,
		ProfileImage: d.ProfileImage,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toPropertyDocument(p *entity.Property) *propertyDocument {
	doc := &propertyDocument{
		Title:          p.Title,
		Description:    p.Description,
		Price:          p.Price,
		PropertyType:   p.PropertyType,
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		Area:           p.Area,
		Address:        p.Address,
		City:           p.City,
		State:          p.State,
		ZipCode:        p.ZipCode,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Images:         p.Images,
		VirtualTourURL: p.VirtualTourURL,
		Amenities:      p.Amenities,
		ListingStatus:  p.ListingStatus,
		Seller:         p.SellerID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(p.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func (d *propertyDocument) toDomain() *entity.Property {
	p := &entity.Property{
		ID:             d.ID.Hex(),
		Title:          d.Title,
		Description:    d.Description,
		Price:          d.Price,
		PropertyType:   d.PropertyType,
		Bedrooms:       d.Bedrooms,
		Bathrooms:      d.Bathrooms,
		Area:           d.Area,
		Address:        d.Address,
		City:           d.City,
		State:          d.State,
		ZipCode:        d.ZipCode,
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		Images:         d.Images,
		VirtualTourURL: d.VirtualTourURL,
		Amenities:      d.Amenities,
		ListingStatus:  d.ListingStatus,
		SellerID:       d.Seller,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	p.ApplyDefaults()
	return p
}

func (d *favoriteDocument) toDomain() *entity.Favorite {
	return &entity.Favorite{
		ID:         d.ID.Hex(),
		UserID:     d.User,
		PropertyID: d.Property,
		CreatedAt:  d.CreatedAt,
	}
}

func toReviewDocument(r *entity.Review) *reviewDocument {
	doc := &reviewDocument{
		Property:   r.PropertyID,
		Reviewer:   r.ReviewerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		ReviewType: r.ReviewType,
		CreatedAt:  r.CreatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(r.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func (d *reviewDocument) toDomain() *entity.Review {
	return &entity.Review{
		ID:         d.ID.Hex(),
		PropertyID: d.Property,
		ReviewerID: d.Reviewer,
		Rating:     d.Rating,
		Comment:    d.Comment,
		ReviewType: d.ReviewType,
		CreatedAt:  d.CreatedAt,
	}
}
