package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainCounters(t *testing.T) {
	m := NewMetricsManager()

	m.PropertyCreated("villa")
	m.PropertyCreated("villa")
	m.FavoriteAdded()
	m.ReviewCreated("agent")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PropertiesCreated.WithLabelValues("villa")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FavoritesAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReviewsCreated.WithLabelValues("agent")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := NewMetricsManager()
	m.FavoriteAdded()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "realestate_favorites_added_total 1")
}
