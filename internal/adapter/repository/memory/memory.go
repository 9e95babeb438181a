// Package memory implements the repositories over process memory. It backs
// DB_DRIVER=memory and the use-case and handler tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
	"realestate/pkg/errors"
	"realestate/pkg/utils"
)

// Store holds the four collections behind one lock.
type Store struct {
	mu         sync.RWMutex
	users      map[string]entity.User
	properties map[string]entity.Property
	favorites  map[string]entity.Favorite
	reviews    map[string]entity.Review
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]entity.User),
		properties: make(map[string]entity.Property),
		favorites:  make(map[string]entity.Favorite),
		reviews:    make(map[string]entity.Review),
	}
}

type userRepository struct{ s *Store }

func NewUserRepository(s *Store) repository.UserRepository {
	return &userRepository{s: s}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return errors.BadRequest("Email already in use", nil)
		}
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			result[id] = &u
		}
	}
	return result, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.s.users[user.ID] = *user
	return nil
}

type propertyRepository struct{ s *Store }

func NewPropertyRepository(s *Store) repository.PropertyRepository {
	return &propertyRepository{s: s}
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	r.s.properties[property.ID] = cloneProperty(*property)
	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	p = cloneProperty(p)
	return &p, nil
}

func (r *propertyRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make(map[string]*entity.Property, len(ids))
	for _, id := range ids {
		if p, ok := r.s.properties[id]; ok {
			p = cloneProperty(p)
			result[id] = &p
		}
	}
	return result, nil
}

func (r *propertyRepository) List(ctx context.Context, filter entity.PropertyFilter, limit, offset int) ([]*entity.Property, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []*entity.Property
	for _, p := range r.s.properties {
		if filter.Matches(&p) {
			p = cloneProperty(p)
			matched = append(matched, &p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return utils.Page(matched, limit, offset), int64(len(matched)), nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.properties[property.ID]; !ok {
		return errors.NotFound("Property", nil)
	}
	r.s.properties[property.ID] = cloneProperty(*property)
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.properties[id]; !ok {
		return errors.NotFound("Property", nil)
	}
	delete(r.s.properties, id)
	return nil
}

type favoriteRepository struct{ s *Store }

func NewFavoriteRepository(s *Store) repository.FavoriteRepository {
	return &favoriteRepository{s: s}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := entity.FavoriteKey(favorite.UserID, favorite.PropertyID)
	if _, ok := r.s.favorites[key]; ok {
		return errors.BadRequest("Property already in favorites", nil)
	}

	favorite.ID = key
	r.s.favorites[key] = *favorite
	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, propertyID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.favorites[entity.FavoriteKey(userID, propertyID)]
	return ok, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*entity.Favorite
	for _, f := range r.s.favorites {
		if f.UserID == userID {
			result = append(result, &f)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, propertyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := entity.FavoriteKey(userID, propertyID)
	if _, ok := r.s.favorites[key]; !ok {
		return errors.NotFound("Favorite", nil)
	}
	delete(r.s.favorites, key)
	return nil
}

type reviewRepository struct{ s *Store }

func NewReviewRepository(s *Store) repository.ReviewRepository {
	return &reviewRepository{s: s}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return &rv, nil
}

func (r *reviewRepository) ListByProperty(ctx context.Context, propertyID string) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := []*entity.Review{}
	for _, rv := range r.s.reviews {
		if rv.PropertyID == propertyID {
			result = append(result, &rv)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviews[id]; !ok {
		return errors.NotFound("Review", nil)
	}
	delete(r.s.reviews, id)
	return nil
}

func cloneProperty(p entity.Property) entity.Property {
	p.Images = append([]string(nil), p.Images...)
	p.Amenities = append([]string(nil), p.Amenities...)
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	return p
}
