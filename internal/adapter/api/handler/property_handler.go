package handler

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"realestate/internal/domain/entity"
	"realestate/internal/usecase"
	"realestate/pkg/errors"
	"realestate/pkg/response"
	"realestate/pkg/utils"
)

const maxImageSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

type createPropertyRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Description    string   `json:"description" validate:"required"`
	Price          float64  `json:"price" validate:"gt=0"`
	PropertyType   string   `json:"propertyType" validate:"required,oneof=apartment house villa commercial plot"`
	Bedrooms       int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms      int      `json:"bathrooms" validate:"gte=0"`
	Area           float64  `json:"area" validate:"gt=0"`
	Address        string   `json:"address" validate:"required"`
	City           string   `json:"city" validate:"required"`
	State          string   `json:"state" validate:"required"`
	ZipCode        string   `json:"zipCode"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,longitude"`
	Images         []string `json:"images" validate:"omitempty,dive,url"`
	VirtualTourURL string   `json:"virtualTourUrl" validate:"omitempty,url"`
	Amenities      []string `json:"amenities"`
	ListingStatus  string   `json:"listingStatus" validate:"omitempty,oneof=available sold rented pending"`
}

// updatePropertyRequest lists the fields an owner may change. seller, id and
// timestamps are not among them.
type updatePropertyRequest struct {
	Title          *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Description    *string   `json:"description" validate:"omitempty,min=1"`
	Price          *float64  `json:"price" validate:"omitempty,gt=0"`
	PropertyType   *string   `json:"propertyType" validate:"omitempty,oneof=apartment house villa commercial plot"`
	Bedrooms       *int      `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms      *int      `json:"bathrooms" validate:"omitempty,gte=0"`
	Area           *float64  `json:"area" validate:"omitempty,gt=0"`
	Address        *string   `json:"address" validate:"omitempty,min=1"`
	City           *string   `json:"city" validate:"omitempty,min=1"`
	State          *string   `json:"state" validate:"omitempty,min=1"`
	ZipCode        *string   `json:"zipCode"`
	Latitude       *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64  `json:"longitude" validate:"omitempty,longitude"`
	Images         *[]string `json:"images" validate:"omitempty,dive,url"`
	VirtualTourURL *string   `json:"virtualTourUrl" validate:"omitempty,url"`
	Amenities      *[]string `json:"amenities"`
	ListingStatus  *string   `json:"listingStatus" validate:"omitempty,oneof=available sold rented pending"`
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	filter, err := parsePropertyFilter(c)
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)

	page, err := h.propertyUseCase.ListProperties(c.Request().Context(), usecase.ListPropertiesInput{
		Filter: filter,
		Page:   pagination.Page,
		Limit:  pagination.PageSize,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, page)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	property, err := h.propertyUseCase.GetProperty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.CreateProperty(c.Request().Context(), uid, usecase.CreatePropertyInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		PropertyType:   req.PropertyType,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		Area:           req.Area,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Images:         req.Images,
		VirtualTourURL: req.VirtualTourURL,
		Amenities:      req.Amenities,
		ListingStatus:  req.ListingStatus,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message":  "Property created successfully",
		"property": property,
	})
}

func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.UpdateProperty(c.Request().Context(), c.Param("id"), uid, usecase.UpdatePropertyInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		PropertyType:   req.PropertyType,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		Area:           req.Area,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Images:         req.Images,
		VirtualTourURL: req.VirtualTourURL,
		Amenities:      req.Amenities,
		ListingStatus:  req.ListingStatus,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message":  "Property updated successfully",
		"property": property,
	})
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.propertyUseCase.DeleteProperty(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Property deleted successfully")
}

func (h *PropertyHandler) UploadImage(c echo.Context) error {
	uid := c.Get("uid").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Image file is required", err))
	}

	if file.Size > maxImageSize {
		return response.Error(c, errors.New("PAYLOAD_TOO_LARGE", "Image must be 5MB or smaller", http.StatusRequestEntityTooLarge, nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	contentType, body, err := sniffImageType(src, file.Header.Get("Content-Type"))
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	if !allowedImageTypes[contentType] {
		return response.Error(c, errors.BadRequest("Only JPEG, PNG and GIF images are allowed", nil))
	}

	property, err := h.propertyUseCase.AddImage(c.Request().Context(), c.Param("id"), uid, body, contentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message":  "Image uploaded successfully",
		"property": property,
	})
}

// sniffImageType trusts a declared image type and otherwise detects one from
// the first 512 bytes. The returned reader replays the sniffed bytes.
func sniffImageType(src io.Reader, declared string) (string, io.Reader, error) {
	if allowedImageTypes[declared] {
		return declared, src, nil
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}
	head = head[:n]

	return http.DetectContentType(head), io.MultiReader(bytes.NewReader(head), src), nil
}

func parsePropertyFilter(c echo.Context) (entity.PropertyFilter, error) {
	filter := entity.PropertyFilter{
		City:          c.QueryParam("city"),
		PropertyType:  c.QueryParam("propertyType"),
		SellerID:      c.QueryParam("seller"),
		ListingStatus: c.QueryParam("listingStatus"),
	}

	var err error
	if filter.Bedrooms, err = intParam(c, "bedrooms"); err != nil {
		return filter, err
	}
	if filter.Bathrooms, err = intParam(c, "bathrooms"); err != nil {
		return filter, err
	}
	if filter.MinPrice, err = floatParam(c, "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = floatParam(c, "maxPrice"); err != nil {
		return filter, err
	}

	return filter, nil
}

func intParam(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.BadRequest(name+" must be a whole number", err)
	}
	return &v, nil
}

func floatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.BadRequest(name+" must be a number", err)
	}
	return &v, nil
}
