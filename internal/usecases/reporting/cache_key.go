package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	SlugLastTransactions = "last_transactions"
	SlugOverallDeals     = "overall_deals"
)

// CacheKey monta a chave "<relatório>_<AAAA-MM-DD>"; o conteúdo gira sozinho na virada do dia
func CacheKey(slug string, now time.Time) string {
	return slug + "_" + now.Format(time.DateOnly)
}

// cached devolve o relatório guardado quando o cache está habilitado.
// Falha de leitura é tratada como ausência.
func (s *Service) cached(ctx context.Context, key string) ([]byte, bool) {
	if !s.cfg.Reports.Cache.Enabled {
		return nil, false
	}

	value, found, err := s.store.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("cache_key", key).Warn("Erro ao ler o cache, recalculando relatório")
		return nil, false
	}

	return value, found
}

// remember grava o relatório recalculado. Falha de escrita não derruba a requisição.
func (s *Service) remember(ctx context.Context, key string, body []byte) {
	if err := s.store.Set(ctx, key, body); err != nil {
		logrus.WithError(err).WithField("cache_key", key).Error("Erro ao gravar relatório no cache")
	}
}
