package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate/internal/domain/entity"
	"realestate/pkg/errors"
)

func TestPropertyListFiltersSortsAndPaginates(t *testing.T) {
	ctx := context.Background()
	repo := NewPropertyRepository(NewStore())

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		p := &entity.Property{
			Title:         "listing",
			PropertyType:  "apartment",
			Price:         float64(1000 * (i + 1)),
			ListingStatus: entity.ListingStatusAvailable,
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, p))
	}
	require.NoError(t, repo.Create(ctx, &entity.Property{PropertyType: "house", ListingStatus: entity.ListingStatusAvailable}))

	filter := entity.PropertyFilter{PropertyType: "apartment"}
	page, total, err := repo.List(ctx, filter, 10, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(25), total)
	require.Len(t, page, 10)
	// newest first: items 11-20 are the 15th..6th created
	assert.Equal(t, float64(15000), page[0].Price)
	assert.Equal(t, float64(6000), page[9].Price)
}

func TestFavoriteUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewFavoriteRepository(NewStore())

	require.NoError(t, repo.Create(ctx, &entity.Favorite{UserID: "u1", PropertyID: "p1"}))

	err := repo.Create(ctx, &entity.Favorite{UserID: "u1", PropertyID: "p1"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	favorites, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	assert.True(t, errors.IsNotFound(repo.Delete(ctx, "u1", "p2")))
	assert.NoError(t, repo.Delete(ctx, "u1", "p1"))
}

func TestPropertyReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPropertyRepository(NewStore())

	p := &entity.Property{Images: []string{"a.jpg"}}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	got.Images[0] = "changed.jpg"

	again, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg"}, again.Images)
}
