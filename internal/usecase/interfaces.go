package usecase

import (
	"realestate/internal/domain/entity"
)

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(user *entity.User) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// ActivityRecorder counts domain events for monitoring.
type ActivityRecorder interface {
	PropertyCreated(propertyType string)
	FavoriteAdded()
	ReviewCreated(reviewType string)
}

type noopRecorder struct{}

func (noopRecorder) PropertyCreated(string) {}
func (noopRecorder) FavoriteAdded()         {}
func (noopRecorder) ReviewCreated(string)   {}

func recorderOrNoop(r ActivityRecorder) ActivityRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
