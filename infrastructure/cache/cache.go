// Package cache guarda rascunhos e preferências dos usuários em memória ou no Redis
package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/cet-calculator-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Cache armazena valores serializados em JSON por chave
type Cache interface {
	// Get decodifica o valor em dest e indica se a chave existia
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func NewCache(ctx context.Context, cfg config.Cache) (Cache, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemoryCache(cfg.DefaultTTL), nil
	case DriverRedis:
		return NewRedisCache(ctx, cfg)
	default:
		return nil, fmt.Errorf("driver de cache não suportado: %s", cfg.Driver)
	}
}

func DraftKey(userID int) string {
	return fmt.Sprintf("cet:draft:%d", userID)
}

func SettingsKey(userID int) string {
	return fmt.Sprintf("cet:settings:%d", userID)
}
