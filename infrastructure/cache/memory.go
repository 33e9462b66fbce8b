package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache cria um cache local; ttl <= 0 mantém os itens até serem removidos
func NewMemoryCache(defaultTTL time.Duration) Cache {
	if defaultTTL <= 0 {
		defaultTTL = gocache.NoExpiration
	}

	return &memoryCache{
		store: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, found := c.store.Get(key)
	if !found {
		return false, nil
	}

	if err := json.Unmarshal(raw.([]byte), dest); err != nil {
		return false, err
	}

	return true, nil
}

// Set guarda uma cópia serializada para que o chamador não altere o valor em cache
func (c *memoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}

	c.store.Set(key, data, ttl)
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}
