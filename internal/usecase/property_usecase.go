package usecase

import (
	"context"
	"io"
	"time"

	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
	"realestate/internal/domain/service"
	"realestate/pkg/errors"
	"realestate/pkg/logger"
	"realestate/pkg/utils"
)

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	images       service.ImageStorage
	activity     ActivityRecorder
}

// NewPropertyUseCase wires the listing use cases. images may be nil when no
// bucket is configured; uploads then fail with 503.
func NewPropertyUseCase(
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	images service.ImageStorage,
	activity ActivityRecorder,
) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		images:       images,
		activity:     recorderOrNoop(activity),
	}
}

type CreatePropertyInput struct {
	Title          string
	Description    string
	Price          float64
	PropertyType   string
	Bedrooms       int
	Bathrooms      int
	Area           float64
	Address        string
	City           string
	State          string
	ZipCode        string
	Latitude       *float64
	Longitude      *float64
	Images         []string
	VirtualTourURL string
	Amenities      []string
	ListingStatus  string
}

// UpdatePropertyInput is the set of client-writable listing fields. Nil means unchanged.
type UpdatePropertyInput struct {
	Title          *string
	Description    *string
	Price          *float64
	PropertyType   *string
	Bedrooms       *int
	Bathrooms      *int
	Area           *float64
	Address        *string
	City           *string
	State          *string
	ZipCode        *string
	Latitude       *float64
	Longitude      *float64
	Images         *[]string
	VirtualTourURL *string
	Amenities      *[]string
	ListingStatus  *string
}

type ListPropertiesInput struct {
	Filter entity.PropertyFilter
	Page   int
	Limit  int
}

type PropertyPage struct {
	Properties  []*entity.PropertyDetails `json:"properties"`
	Total       int64                     `json:"total"`
	Pages       int                       `json:"pages"`
	CurrentPage int                       `json:"currentPage"`
}

func (uc *PropertyUseCase) ListProperties(ctx context.Context, input ListPropertiesInput) (*PropertyPage, error) {
	filter := input.Filter
	if filter.ListingStatus == "" {
		filter.ListingStatus = entity.ListingStatusAvailable
	}

	pagination := utils.NewPaginationParams("", "")
	if input.Page > 0 {
		pagination.Page = input.Page
	}
	if input.Limit > 0 {
		pagination.PageSize = min(input.Limit, utils.MaxPageSize)
	}
	pagination.Offset = utils.Offset(pagination.Page, pagination.PageSize)

	properties, total, err := uc.propertyRepo.List(ctx, filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return nil, err
	}

	details, err := uc.withSellers(ctx, properties)
	if err != nil {
		return nil, err
	}

	return &PropertyPage{
		Properties:  details,
		Total:       total,
		Pages:       utils.TotalPages(total, pagination.PageSize),
		CurrentPage: pagination.Page,
	}, nil
}

func (uc *PropertyUseCase) GetProperty(ctx context.Context, id string) (*entity.PropertyDetails, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &entity.PropertyDetails{Property: property}

	seller, err := uc.userRepo.GetByID(ctx, property.SellerID)
	switch {
	case err == nil:
		details.SellerInfo = seller.SellerSummary()
	case errors.IsNotFound(err):
		// listing outlived its seller
	default:
		return nil, err
	}

	return details, nil
}

func (uc *PropertyUseCase) CreateProperty(ctx context.Context, sellerID string, input CreatePropertyInput) (*entity.Property, error) {
	now := time.Now()
	property := &entity.Property{
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		PropertyType:   input.PropertyType,
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		Area:           input.Area,
		Address:        input.Address,
		City:           input.City,
		State:          input.State,
		ZipCode:        input.ZipCode,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Images:         input.Images,
		VirtualTourURL: input.VirtualTourURL,
		Amenities:      input.Amenities,
		ListingStatus:  input.ListingStatus,
		SellerID:       sellerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	property.ApplyDefaults()

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	uc.activity.PropertyCreated(property.PropertyType)
	logger.Info("property %s created by %s", property.ID, sellerID)

	return property, nil
}

func (uc *PropertyUseCase) UpdateProperty(ctx context.Context, id, callerID string, input UpdatePropertyInput) (*entity.Property, error) {
	property, err := uc.ownedProperty(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	assign(&property.Title, input.Title)
	assign(&property.Description, input.Description)
	assign(&property.Price, input.Price)
	assign(&property.PropertyType, input.PropertyType)
	assign(&property.Bedrooms, input.Bedrooms)
	assign(&property.Bathrooms, input.Bathrooms)
	assign(&property.Area, input.Area)
	assign(&property.Address, input.Address)
	assign(&property.City, input.City)
	assign(&property.State, input.State)
	assign(&property.ZipCode, input.ZipCode)
	assign(&property.VirtualTourURL, input.VirtualTourURL)
	assign(&property.Images, input.Images)
	assign(&property.Amenities, input.Amenities)
	assign(&property.ListingStatus, input.ListingStatus)
	if input.Latitude != nil {
		property.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		property.Longitude = input.Longitude
	}
	property.ApplyDefaults()
	property.UpdatedAt = time.Now()

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) DeleteProperty(ctx context.Context, id, callerID string) error {
	property, err := uc.ownedProperty(ctx, id, callerID)
	if err != nil {
		return err
	}

	if err := uc.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.images != nil {
		for _, url := range property.Images {
			if err := uc.images.Delete(ctx, url); err != nil {
				logger.Warn("failed to delete image %s of property %s: %v", url, id, err)
			}
		}
	}

	logger.Info("property %s deleted by %s", id, callerID)
	return nil
}

// AddImage uploads an image for an owned listing and appends its URL.
func (uc *PropertyUseCase) AddImage(ctx context.Context, id, callerID string, file io.Reader, contentType string) (*entity.Property, error) {
	if uc.images == nil {
		return nil, errors.ServiceUnavailable("Image storage is not configured")
	}

	property, err := uc.ownedProperty(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	url, err := uc.images.Upload(ctx, file, contentType, "properties/"+property.ID)
	if err != nil {
		return nil, errors.Internal("Failed to upload image", err)
	}

	property.Images = append(property.Images, url)
	property.UpdatedAt = time.Now()

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (uc *PropertyUseCase) ownedProperty(ctx context.Context, id, callerID string) (*entity.Property, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !property.OwnedBy(callerID) {
		return nil, errors.Forbidden("You are not the owner of this property", nil)
	}

	return property, nil
}

func (uc *PropertyUseCase) withSellers(ctx context.Context, properties []*entity.Property) ([]*entity.PropertyDetails, error) {
	ids := make([]string, 0, len(properties))
	seen := make(map[string]bool)
	for _, p := range properties {
		if p.SellerID != "" && !seen[p.SellerID] {
			seen[p.SellerID] = true
			ids = append(ids, p.SellerID)
		}
	}

	sellers, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]*entity.PropertyDetails, len(properties))
	for i, p := range properties {
		details[i] = &entity.PropertyDetails{Property: p}
		if seller, ok := sellers[p.SellerID]; ok {
			details[i].SellerInfo = seller.SellerSummary()
		}
	}
	return details, nil
}
