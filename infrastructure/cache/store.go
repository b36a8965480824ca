// Package cache contém os armazenamentos usados para guardar os relatórios do dia
package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-reports-api/internal/config"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Store guarda os bytes já serializados de um relatório.
// Get devolve found=false quando a chave não existe ou expirou.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Purger remove entradas expiradas; usado pelo agendador de limpeza
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type PurgingStore interface {
	Store
	Purger
}

// New escolhe a implementação conforme CACHE_DRIVER
func New(cfg config.Cache, conn postgres.Queryer) (PurgingStore, error) {
	switch cfg.Driver {
	case config.CacheDriverMemory, "":
		logrus.WithField("expiry", cfg.Expiry).Info("Usando cache em memória")
		return NewMemoryStore(cfg.Expiry), nil
	case config.CacheDriverPostgres:
		if conn == nil {
			return nil, errors.New("cache postgres exige conexão com o banco")
		}
		logrus.WithField("expiry", cfg.Expiry).Info("Usando cache no PostgreSQL")
		return NewPostgresStore(conn, cfg.Expiry), nil
	default:
		return nil, errors.Errorf("driver de cache desconhecido: %s", cfg.Driver)
	}
}

func expiresAt(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}
