package repository

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"realestate/internal/domain/entity"
	"realestate/internal/domain/repository"
	"realestate/pkg/logger"
)

const propertyCacheKeyPrefix = "property:"

// cachedPropertyRepository serves GetByID through Redis and evicts the entry on
// every write. Cache failures fall through to the wrapped repository.
type cachedPropertyRepository struct {
	repository.PropertyRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedPropertyRepository(next repository.PropertyRepository, client *redis.Client, ttl time.Duration) repository.PropertyRepository {
	return &cachedPropertyRepository{
		PropertyRepository: next,
		client:             client,
		ttl:                ttl,
	}
}

func (r *cachedPropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	key := propertyCacheKeyPrefix + id

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var property entity.Property
		if err := json.Unmarshal(data, &property); err == nil {
			return &property, nil
		}
		logger.Warn("dropping corrupt cache entry %s", key)
	case !stderrors.Is(err, redis.Nil):
		logger.Warn("property cache read failed for %s: %v", key, err)
	}

	property, err := r.PropertyRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(property); err == nil {
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
			logger.Warn("property cache write failed for %s: %v", key, err)
		}
	}

	return property, nil
}

func (r *cachedPropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	if err := r.PropertyRepository.Update(ctx, property); err != nil {
		return err
	}
	r.evict(ctx, property.ID)
	return nil
}

func (r *cachedPropertyRepository) Delete(ctx context.Context, id string) error {
	if err := r.PropertyRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *cachedPropertyRepository) evict(ctx context.Context, id string) {
	if err := r.client.Del(ctx, propertyCacheKeyPrefix+id).Err(); err != nil {
		logger.Warn("property cache evict failed for %s: %v", id, err)
	}
}
