package entity

import (
	"time"
)

const (
	ListingStatusAvailable = "available"
	ListingStatusSold      = "sold"
	ListingStatusRented    = "rented"
	ListingStatusPending   = "pending"
)

var (
	PropertyTypes   = []string{"apartment", "house", "villa", "commercial", "plot"}
	ListingStatuses = []string{ListingStatusAvailable, ListingStatusSold, ListingStatusRented, ListingStatusPending}
)

type Property struct {
	ID           string  `json:"id" firestore:"id"`
	Title        string  `json:"title" firestore:"title"`
	Description  string  `json:"description" firestore:"description"`
	Price        float64 `json:"price" firestore:"price"`
	PropertyType string  `json:"propertyType" firestore:"propertyType"`
	Bedrooms     int     `json:"bedrooms" firestore:"bedrooms"`
	Bathrooms    int     `json:"bathrooms" firestore:"bathrooms"`
	Area         float64 `json:"area" firestore:"area"` // square feet

	Address   string   `json:"address" firestore:"address"`
	City      string   `json:"city" firestore:"city"`
	State     string   `json:"state" firestore:"state"`
	ZipCode   string   `json:"zipCode,omitempty" firestore:"zipCode"`
	Latitude  *float64 `json:"latitude,omitempty" firestore:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" firestore:"longitude"`

	Images         []string `json:"images" firestore:"images"`
	VirtualTourURL string   `json:"virtualTourUrl,omitempty" firestore:"virtualTourUrl"`
	Amenities      []string `json:"amenities" firestore:"amenities"`

	ListingStatus string `json:"listingStatus" firestore:"listingStatus"`
	SellerID      string `json:"seller" firestore:"seller"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ApplyDefaults fills the values a new listing gets when the client omits them.
func (p *Property) ApplyDefaults() {
	if p.ListingStatus == "" {
		p.ListingStatus = ListingStatusAvailable
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
}

// OwnedBy compares the stored seller identity with the caller.
func (p *Property) OwnedBy(userID string) bool {
	return p.SellerID != "" && p.SellerID == userID
}

type PropertyDetails struct {
	*Property
	SellerInfo *UserSummary `json:"sellerInfo,omitempty"`
}

// PropertyFilter holds the listing query. Nil pointers mean "no constraint".
type PropertyFilter struct {
	City          string
	PropertyType  string
	SellerID      string
	ListingStatus string
	Bedrooms      *int
	Bathrooms     *int
	MinPrice      *float64
	MaxPrice      *float64
}

// Matches applies the filter to a single property.
func (f PropertyFilter) Matches(p *Property) bool {
	if f.City != "" && p.City != f.City {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.SellerID != "" && p.SellerID != f.SellerID {
		return false
	}
	if f.ListingStatus != "" && p.ListingStatus != f.ListingStatus {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && p.Bathrooms != *f.Bathrooms {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}
