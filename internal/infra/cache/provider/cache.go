package provider

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

const keyPrefix = "barber:provider:"

// Cache read-through кэш справочника барберов поверх репозитория
//
// Ошибки Redis не прерывают запрос: чтение идет в репозиторий, ошибка логируется.
// После изменения или удаления барбера запись нужно сбросить через Invalidate.
type Cache struct {
	client redis.Cmdable
	repo   Repository
	ttl    time.Duration
	logger Logger
}

// NewCache создает кэш барберов
func NewCache(client redis.Cmdable, repo Repository, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		client: client,
		repo:   repo,
		ttl:    ttl,
		logger: logger,
	}
}

// GetByID возвращает барбера из кэша, при промахе читает репозиторий и сохраняет результат
func (c *Cache) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	key := keyPrefix + id

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedProvider
		if err := json.Unmarshal(data, &cached); err == nil {
			if provider, err := cached.toDomain(); err == nil {
				return provider, nil
			}
		}
		c.logger.Warn("ProviderCache: corrupted entry for provider=%s, reloading", id)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("ProviderCache: get provider=%s failed: %v", id, err)
	}

	provider, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, provider)

	return provider, nil
}

// Invalidate удаляет барбера из кэша
func (c *Cache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, keyPrefix+id).Err()
}

func (c *Cache) store(ctx context.Context, key string, provider *domain.Provider) {
	data, err := json.Marshal(toCached(provider))
	if err != nil {
		c.logger.Warn("ProviderCache: marshal provider=%s failed: %v", provider.ID, err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("ProviderCache: set provider=%s failed: %v", provider.ID, err)
	}
}
