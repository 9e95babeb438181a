package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"realestate/internal/adapter/api"
	"realestate/internal/adapter/api/handler"
	"realestate/internal/adapter/api/middleware"
	"realestate/internal/adapter/api/router"
	"realestate/internal/adapter/repository/memory"
	"realestate/internal/domain/service"
	"realestate/internal/infrastructure/token"
	"realestate/internal/usecase"
	"realestate/pkg/response"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type memoryImages struct {
	urls []string
}

func (m *memoryImages) Upload(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	url := fmt.Sprintf("https://storage.googleapis.com/test-bucket/%s/%d", folder, len(m.urls))
	m.urls = append(m.urls, url)
	return url, nil
}

func (m *memoryImages) Delete(ctx context.Context, fileURL string) error {
	return nil
}

type testServer struct {
	t *testing.T
	e *echo.Echo
}

func newTestServer(t *testing.T, images service.ImageStorage) *testServer {
	t.Helper()

	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	properties := memory.NewPropertyRepository(store)
	favorites := memory.NewFavoriteRepository(store)
	reviews := memory.NewReviewRepository(store)

	jwtManager := token.NewJWTManager("test-secret", time.Hour)

	handler.Setup(
		usecase.NewAuthUseCase(users, token.NewBcryptHasher(bcrypt.MinCost), jwtManager),
		usecase.NewUserUseCase(users),
		usecase.NewPropertyUseCase(properties, users, images, nil),
		usecase.NewFavoriteUseCase(favorites, properties, nil),
		usecase.NewReviewUseCase(reviews, properties, users, nil),
	)

	e := echo.New()
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = response.HTTPErrorHandler
	router.Setup(e, middleware.NewAuthMiddleware(jwtManager), nil)

	return &testServer{t: t, e: e}
}

func (s *testServer) do(method, path, bearer string, body interface{}) (int, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	return s.serve(req)
}

func (s *testServer) serve(req *http.Request) (int, envelope) {
	s.t.Helper()

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

// register creates an account and returns its id and token.
func (s *testServer) register(first, email string) (string, string) {
	s.t.Helper()

	status, env := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"firstName": first,
		"lastName":  "Tester",
		"email":     email,
		"password":  "secret1",
		"userType":  "seller",
	})
	require.Equal(s.t, http.StatusCreated, status)

	var result struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(s.t, env, &result)
	return result.User.ID, result.Token
}

func (s *testServer) createProperty(bearer string, price float64, propertyType string) string {
	s.t.Helper()

	status, env := s.do(http.MethodPost, "/api/properties", bearer, propertyBody(price, propertyType))
	require.Equal(s.t, http.StatusCreated, status)

	var created struct {
		Property struct {
			ID string `json:"id"`
		} `json:"property"`
	}
	decode(s.t, env, &created)
	return created.Property.ID
}

func propertyBody(price float64, propertyType string) map[string]interface{} {
	return map[string]interface{}{
		"title":        "Lake view " + propertyType,
		"description":  "Bright and quiet",
		"price":        price,
		"propertyType": propertyType,
		"bedrooms":     3,
		"bathrooms":    2,
		"area":         1450,
		"address":      "12 Hill Road",
		"city":         "Pune",
		"state":        "MH",
	}
}

func decode(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server is running")
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t, nil)
	id, bearer := s.register("Asha", "asha@example.com")

	status, env := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"firstName": "Again",
		"lastName":  "Tester",
		"email":     "ASHA@example.com",
		"password":  "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email already in use", env.Error.Message)

	status, env = s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"firstName": "Short",
		"lastName":  "Tester",
		"email":     "short@example.com",
		"password":  "123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	status, _ = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "asha@example.com", "password": "wrong1"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "asha@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"token"`)

	status, _ = s.do(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = s.do(http.MethodGet, "/api/auth/me", bearer, nil)
	require.Equal(t, http.StatusOK, status)
	var me map[string]interface{}
	decode(t, env, &me)
	assert.Equal(t, id, me["id"])
	assert.NotContains(t, me, "passwordHash")
}

func TestUserProfile(t *testing.T) {
	s := newTestServer(t, nil)
	id, bearer := s.register("Meera", "meera@example.com")
	_, otherBearer := s.register("Ravi", "ravi@example.com")

	status, env := s.do(http.MethodPut, "/api/users/"+id, otherBearer, map[string]string{"bio": "not mine"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "You can only update your own profile", env.Error.Message)

	status, env = s.do(http.MethodPut, "/api/users/"+id, bearer, map[string]string{
		"bio":      "Agent in Pune",
		"email":    "stolen@example.com",
		"userType": "agent",
	})
	require.Equal(t, http.StatusOK, status)

	var updated struct {
		Message string                 `json:"message"`
		User    map[string]interface{} `json:"user"`
	}
	decode(t, env, &updated)
	assert.Equal(t, "Profile updated successfully", updated.Message)
	assert.Equal(t, "Agent in Pune", updated.User["bio"])
	assert.Equal(t, "meera@example.com", updated.User["email"])
	assert.Equal(t, "seller", updated.User["userType"])

	status, _ = s.do(http.MethodGet, "/api/users/"+id, "", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(http.MethodGet, "/api/users/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPropertyLifecycle(t *testing.T) {
	s := newTestServer(t, nil)
	_, owner := s.register("Owner", "owner@example.com")
	_, intruder := s.register("Intruder", "intruder@example.com")

	status, _ := s.do(http.MethodPost, "/api/properties", "", propertyBody(100, "house"))
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env := s.do(http.MethodPost, "/api/properties", owner, map[string]interface{}{"price": 10})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	id := s.createProperty(owner, 7_500_000, "apartment")

	status, env = s.do(http.MethodGet, "/api/properties/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	var details map[string]interface{}
	decode(t, env, &details)
	assert.Equal(t, "available", details["listingStatus"])
	require.Contains(t, details, "sellerInfo")
	assert.Equal(t, "Owner", details["sellerInfo"].(map[string]interface{})["firstName"])

	status, env = s.do(http.MethodPut, "/api/properties/"+id, intruder, map[string]interface{}{"price": 1})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "You are not the owner of this property", env.Error.Message)

	status, env = s.do(http.MethodPut, "/api/properties/"+id, owner, map[string]interface{}{
		"price":  8_000_000,
		"seller": "someone-else",
	})
	require.Equal(t, http.StatusOK, status)
	var updated struct {
		Message  string                 `json:"message"`
		Property map[string]interface{} `json:"property"`
	}
	decode(t, env, &updated)
	assert.Equal(t, "Property updated successfully", updated.Message)
	assert.Equal(t, 8_000_000.0, updated.Property["price"])
	assert.Equal(t, "Lake view apartment", updated.Property["title"])
	assert.NotEqual(t, "someone-else", updated.Property["seller"])

	status, _ = s.do(http.MethodDelete, "/api/properties/"+id, intruder, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(http.MethodDelete, "/api/properties/"+id, owner, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Property deleted successfully")

	status, _ = s.do(http.MethodGet, "/api/properties/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(http.MethodDelete, "/api/properties/"+id, owner, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListPropertiesFilters(t *testing.T) {
	s := newTestServer(t, nil)
	_, owner := s.register("Owner", "owner@example.com")

	s.createProperty(owner, 4_000_000, "apartment")
	s.createProperty(owner, 6_000_000, "apartment")
	s.createProperty(owner, 6_500_000, "house")

	status, env := s.do(http.MethodGet, "/api/properties?propertyType=apartment&minPrice=5000000&maxPrice=9000000", "", nil)
	require.Equal(t, http.StatusOK, status)

	var page struct {
		Properties  []map[string]interface{} `json:"properties"`
		Total       int                      `json:"total"`
		Pages       int                      `json:"pages"`
		CurrentPage int                      `json:"currentPage"`
	}
	decode(t, env, &page)
	require.Len(t, page.Properties, 1)
	assert.Equal(t, 6_000_000.0, page.Properties[0]["price"])
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.Pages)
	assert.Equal(t, 1, page.CurrentPage)

	status, env = s.do(http.MethodGet, "/api/properties?limit=2&page=2", "", nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, env, &page)
	assert.Len(t, page.Properties, 1)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 2, page.CurrentPage)

	status, env = s.do(http.MethodGet, "/api/properties?page=9223372036854775807", "", nil)
	require.Equal(t, http.StatusOK, status)
	var farPage struct {
		Properties  []map[string]interface{} `json:"properties"`
		Total       int                      `json:"total"`
		CurrentPage int                      `json:"currentPage"`
	}
	decode(t, env, &farPage)
	assert.NotNil(t, farPage.Properties)
	assert.Empty(t, farPage.Properties)
	assert.Equal(t, 3, farPage.Total)
	assert.Equal(t, 9223372036854775807, farPage.CurrentPage)

	for _, query := range []string{"bedrooms=two", "minPrice=cheap", "maxPrice=1e", "bathrooms=1.5"} {
		status, env = s.do(http.MethodGet, "/api/properties?"+query, "", nil)
		assert.Equal(t, http.StatusBadRequest, status, query)
		assert.Equal(t, "BAD_REQUEST", env.Error.Code, query)
	}
}

func TestFavorites(t *testing.T) {
	s := newTestServer(t, nil)
	_, owner := s.register("Owner", "owner@example.com")
	_, buyer := s.register("Buyer", "buyer@example.com")
	id := s.createProperty(owner, 100, "villa")

	status, _ := s.do(http.MethodGet, "/api/favorites", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(http.MethodPost, "/api/favorites", buyer, map[string]string{"propertyId": "missing"})
	assert.Equal(t, http.StatusNotFound, status)

	status, env := s.do(http.MethodPost, "/api/favorites", buyer, map[string]string{"propertyId": id})
	require.Equal(t, http.StatusCreated, status)
	assert.Contains(t, string(env.Data), "Added to favorites")

	status, env = s.do(http.MethodPost, "/api/favorites", buyer, map[string]string{"propertyId": id})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Property already in favorites", env.Error.Message)

	status, env = s.do(http.MethodGet, "/api/favorites/"+id+"/status", buyer, nil)
	require.Equal(t, http.StatusOK, status)
	var favStatus struct {
		PropertyID string `json:"propertyId"`
		IsFavorite bool   `json:"isFavorite"`
	}
	decode(t, env, &favStatus)
	assert.Equal(t, id, favStatus.PropertyID)
	assert.True(t, favStatus.IsFavorite)

	status, env = s.do(http.MethodGet, "/api/favorites", owner, nil)
	require.Equal(t, http.StatusOK, status)
	var list []map[string]interface{}
	decode(t, env, &list)
	assert.Empty(t, list)

	status, env = s.do(http.MethodGet, "/api/favorites", buyer, nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, env, &list)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["property"].(map[string]interface{})["id"])

	status, _ = s.do(http.MethodDelete, "/api/favorites/"+id, buyer, nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = s.do(http.MethodDelete, "/api/favorites/"+id, buyer, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Favorite not found", env.Error.Message)
}

func TestReviews(t *testing.T) {
	s := newTestServer(t, nil)
	_, owner := s.register("Owner", "owner@example.com")
	_, reviewer := s.register("Ravi", "ravi@example.com")
	id := s.createProperty(owner, 100, "house")

	status, _ := s.do(http.MethodPost, "/api/reviews", reviewer, map[string]interface{}{
		"property": id, "rating": 6, "comment": "too good",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(http.MethodPost, "/api/reviews", reviewer, map[string]interface{}{
		"property": "missing", "rating": 4, "comment": "where is it",
	})
	assert.Equal(t, http.StatusNotFound, status)

	var reviewID string
	for _, rating := range []int{5, 4, 4} {
		status, env := s.do(http.MethodPost, "/api/reviews", reviewer, map[string]interface{}{
			"property": id, "rating": rating, "comment": "nice",
		})
		require.Equal(t, http.StatusCreated, status)
		var created struct {
			Review struct {
				ID string `json:"id"`
			} `json:"review"`
		}
		decode(t, env, &created)
		reviewID = created.Review.ID
	}

	status, env := s.do(http.MethodGet, "/api/reviews/property/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	var result struct {
		Reviews       []map[string]interface{} `json:"reviews"`
		AverageRating float64                  `json:"averageRating"`
		TotalReviews  int                      `json:"totalReviews"`
	}
	decode(t, env, &result)
	assert.Equal(t, 4.3, result.AverageRating)
	assert.Equal(t, 3, result.TotalReviews)
	assert.Equal(t, "Ravi", result.Reviews[0]["reviewerInfo"].(map[string]interface{})["firstName"])

	status, _ = s.do(http.MethodDelete, "/api/reviews/"+reviewID, owner, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(http.MethodDelete, "/api/reviews/"+reviewID, reviewer, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Review deleted successfully")
}

func imageRequest(t *testing.T, path, bearer, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="front.img"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	return req
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestUploadImage(t *testing.T) {
	images := &memoryImages{}
	s := newTestServer(t, images)
	_, owner := s.register("Owner", "owner@example.com")
	_, intruder := s.register("Intruder", "intruder@example.com")
	id := s.createProperty(owner, 100, "house")
	path := "/api/properties/" + id + "/images"

	status, env := s.serve(imageRequest(t, path, owner, "text/plain", []byte("hello")))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Only JPEG, PNG and GIF images are allowed", env.Error.Message)

	status, _ = s.serve(imageRequest(t, path, intruder, "image/png", pngHeader))
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.serve(imageRequest(t, path, owner, "application/octet-stream", pngHeader))
	require.Equal(t, http.StatusCreated, status)
	var uploaded struct {
		Property struct {
			Images []string `json:"images"`
		} `json:"property"`
	}
	decode(t, env, &uploaded)
	assert.Equal(t, images.urls, uploaded.Property.Images)

	big := append(append([]byte{}, pngHeader...), make([]byte, 5<<20)...)
	status, _ = s.serve(imageRequest(t, path, owner, "image/png", big))
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
}

func TestUploadImageWithoutStorage(t *testing.T) {
	s := newTestServer(t, nil)
	_, owner := s.register("Owner", "owner@example.com")
	id := s.createProperty(owner, 100, "house")

	status, env := s.serve(imageRequest(t, "/api/properties/"+id+"/images", owner, "image/png", pngHeader))
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "SERVICE_UNAVAILABLE", env.Error.Code)
}
