package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/repository"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/sirupsen/logrus"
)

// Todo relatório servido do cache passa por aqui, então a serialização
// usa jsoniter no lugar do encoding/json
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportCache combina a camada quente (Redis) com a durável (Postgres).
// Leituras tentam a quente primeiro; um acerto na durável repovoa a quente
// com TTL curto para não sobrecarregar o banco quando o Redis voltar
type ReportCache interface {
	Get(ctx context.Context, key string) (*domain.DailyReport, string, error)
	Set(ctx context.Context, key string, userID int, report *domain.DailyReport, expiresAt *time.Time) error
	Invalidate(ctx context.Context, key string) error
	InvalidateUser(ctx context.Context, userID int) error
	Ping(ctx context.Context) error
}

// Key é a forma canônica da chave de cache de um relatório diário
func Key(userID int, date time.Time, dimension domain.ReportDimension) string {
	return fmt.Sprintf("report:%d:%s:%s", userID, date.Format(time.DateOnly), dimension)
}

func userPattern(userID int) string {
	return fmt.Sprintf("report:%d:*", userID)
}

type tieredCache struct {
	hot       HotTier
	durable   repository.CacheEntryRepository
	hotTTL    time.Duration
	reseedTTL time.Duration
}

func NewTieredCache(hot HotTier, durable repository.CacheEntryRepository, cfg config.Cache) ReportCache {
	return &tieredCache{
		hot:       hot,
		durable:   durable,
		hotTTL:    time.Duration(cfg.HotTTLSeconds) * time.Second,
		reseedTTL: time.Duration(cfg.ReseedTTLSeconds) * time.Second,
	}
}

func (c *tieredCache) Get(ctx context.Context, key string) (*domain.DailyReport, string, error) {
	logger := logrus.WithField("cache_key", key)

	payload, err := c.hot.Get(ctx, key)
	if err != nil {
		logger.WithError(err).Warn("Falha na camada quente do cache, degradando para a durável")
	}

	if payload != nil {
		report, err := decodeReport(payload)
		if err != nil {
			// Payload corrompido é tratado como ausência e removido
			logger.WithError(err).Warn("Payload inválido na camada quente, removendo entrada")
			if err := c.hot.Delete(ctx, key); err != nil {
				logger.WithError(err).Warn("Falha ao remover entrada inválida da camada quente")
			}
		} else {
			return report, domain.FreshnessSourceHot, nil
		}
	}

	payload, err = c.durable.Get(key)
	if err != nil {
		// Leitura do cache nunca derruba a requisição: o dado pode ser
		// remontado a partir do armazenamento de dias
		logger.WithError(err).Warn("Falha na camada durável do cache, tratando como ausência")
		return nil, domain.FreshnessSourceNone, nil
	}

	if payload == nil {
		return nil, domain.FreshnessSourceNone, nil
	}

	report, err := decodeReport(payload)
	if err != nil {
		logger.WithError(err).Warn("Payload inválido na camada durável, removendo entrada")
		if err := c.durable.Delete(key); err != nil {
			logger.WithError(err).Warn("Falha ao remover entrada inválida da camada durável")
		}
		return nil, domain.FreshnessSourceNone, nil
	}

	// Repovoa a camada quente com TTL curto
	if err := c.hot.Set(ctx, key, payload, c.reseedTTL); err != nil {
		logger.WithError(err).Warn("Falha ao repovoar a camada quente")
	}

	return report, domain.FreshnessSourceDurable, nil
}

func (c *tieredCache) Set(ctx context.Context, key string, userID int, report *domain.DailyReport, expiresAt *time.Time) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório para o cache: %w", err)
	}

	// A camada durável é a fonte de verdade: gravação nela falhou, a operação falhou
	if err := c.durable.Set(key, userID, payload, expiresAt); err != nil {
		return fmt.Errorf("erro ao gravar na camada durável do cache: %w", err)
	}

	if err := c.hot.Set(ctx, key, payload, c.hotTTL); err != nil {
		logrus.WithError(err).WithField("cache_key", key).Warn("Falha ao gravar na camada quente do cache")
	}

	return nil
}

func (c *tieredCache) Invalidate(ctx context.Context, key string) error {
	if err := c.hot.Delete(ctx, key); err != nil {
		logrus.WithError(err).WithField("cache_key", key).Warn("Falha ao invalidar a camada quente")
	}

	if err := c.durable.Delete(key); err != nil {
		return fmt.Errorf("erro ao invalidar a camada durável do cache: %w", err)
	}

	return nil
}

func (c *tieredCache) InvalidateUser(ctx context.Context, userID int) error {
	if err := c.hot.DeleteByPattern(ctx, userPattern(userID)); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("Falha ao invalidar a camada quente do usuário")
	}

	if _, err := c.durable.DeleteByUser(userID); err != nil {
		return fmt.Errorf("erro ao invalidar a camada durável do usuário: %w", err)
	}

	return nil
}

func (c *tieredCache) Ping(ctx context.Context) error {
	return c.hot.Ping(ctx)
}

func decodeReport(payload []byte) (*domain.DailyReport, error) {
	report := &domain.DailyReport{}
	if err := json.Unmarshal(payload, report); err != nil {
		return nil, err
	}

	return report, nil
}
