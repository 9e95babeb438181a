package token

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"realestate/internal/domain/entity"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := &entity.User{ID: "user-1", Email: "a@example.com", UserType: entity.UserTypeAgent}

	signed, err := m.GenerateToken(user)
	require.NoError(t, err)

	claims, err := m.ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, entity.UserTypeAgent, claims.UserType)

	uid, err := m.VerifyToken(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestJWTRejectsExpiredAndForeignTokens(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	signed, err := m.GenerateToken(&entity.User{ID: "user-1"})
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.VerifyToken(context.Background(), signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewJWTManager("another-secret", time.Hour)
	_, err = other.VerifyToken(context.Background(), signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewJWTManager("test-secret", time.Hour).VerifyToken(context.Background(), unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, h.Compare(hash, "s3cret!"))
	assert.Error(t, h.Compare(hash, "wrong"))
}
