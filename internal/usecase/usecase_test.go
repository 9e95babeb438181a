package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"realestate/internal/adapter/repository/memory"
	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type staticTokens struct{}

func (staticTokens) GenerateToken(user *entity.User) (string, error) {
	return "token-" + user.ID, nil
}

type fakeImages struct {
	uploaded []string
	deleted  []string
}

func (f *fakeImages) Upload(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	body, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("https://storage.example/%s/%d-%s", folder, len(f.uploaded), strings.TrimSpace(string(body)))
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeImages) Delete(ctx context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

type countingRecorder struct {
	properties, favorites, reviews int
}

func (c *countingRecorder) PropertyCreated(string) { c.properties++ }
func (c *countingRecorder) FavoriteAdded()         { c.favorites++ }
func (c *countingRecorder) ReviewCreated(string)   { c.reviews++ }

type fixture struct {
	users      repository.UserRepository
	properties repository.PropertyRepository
	favorites  repository.FavoriteRepository
	reviews    repository.ReviewRepository
	images     *fakeImages
	activity   *countingRecorder
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		users:      memory.NewUserRepository(store),
		properties: memory.NewPropertyRepository(store),
		favorites:  memory.NewFavoriteRepository(store),
		reviews:    memory.NewReviewRepository(store),
		images:     &fakeImages{},
		activity:   &countingRecorder{},
	}
}

func (f *fixture) user(t *testing.T, first string) *entity.User {
	t.Helper()
	u := &entity.User{
		FirstName: first,
		LastName:  "Doe",
		Email:     strings.ToLower(first) + "@example.com",
		UserType:  entity.UserTypeSeller,
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) property(t *testing.T, sellerID, propertyType string, price float64, created time.Time) *entity.Property {
	t.Helper()
	p := &entity.Property{
		Title:         fmt.Sprintf("%s for %.0f", propertyType, price),
		PropertyType:  propertyType,
		Price:         price,
		City:          "Mumbai",
		ListingStatus: entity.ListingStatusAvailable,
		SellerID:      sellerID,
		CreatedAt:     created,
	}
	require.NoError(t, f.properties.Create(context.Background(), p))
	return p
}
