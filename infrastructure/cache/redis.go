package cache

import (
	"context"
	"time"

	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/redis/go-redis/v9"
)

// HotTier é a camada volátil do cache de relatórios. Falhas aqui nunca
// devem derrubar uma requisição: o chamador degrada para a camada durável
type HotTier interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
}

type redisTier struct {
	client *redis.Client
}

func NewRedisTier(cfg config.Redis) HotTier {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &redisTier{client: client}
}

// Get retorna nil sem erro quando a chave não existe
func (r *redisTier) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	return data, nil
}

func (r *redisTier) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, payload, ttl).Err()
}

func (r *redisTier) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return r.client.Del(ctx, keys...).Err()
}

// DeleteByPattern remove todas as chaves que casam com o padrão, em pipeline
func (r *redisTier) DeleteByPattern(ctx context.Context, pattern string) error {
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return err
	}

	return nil
}

func (r *redisTier) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
