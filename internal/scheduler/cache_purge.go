package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reports-api/infrastructure/cache"
	"github.com/vfg2006/sales-reports-api/internal/config"
)

const purgeTimeout = 30 * time.Second

// CachePurgeService remove periodicamente os relatórios expirados do cache.
// As chaves mudam a cada dia, então sem a limpeza as entradas antigas só acumulam.
type CachePurgeService struct {
	scheduler *gocron.Scheduler
	config    config.CachePurge
	purger    cache.Purger

	purgeMutex      sync.Mutex
	purgeRunning    bool
	lastPurgedAt    time.Time
	lastPurgedCount int64
}

func NewCachePurgeService(purger cache.Purger, appConfig *config.Config) *CachePurgeService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.CachePurge.CronSchedule,
		"enabled":       appConfig.CachePurge.Enabled,
	}).Info("Configuração da limpeza do cache carregada")

	return &CachePurgeService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.CachePurge,
		purger:    purger,
	}
}

// Start agenda a limpeza e para o agendador quando o contexto é cancelado
func (s *CachePurgeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.PurgeExpired(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza agendada do cache")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// PurgeExpired executa uma limpeza. Se já houver uma em andamento, não faz nada.
func (s *CachePurgeService) PurgeExpired(ctx context.Context) (int64, error) {
	s.purgeMutex.Lock()
	if s.purgeRunning {
		s.purgeMutex.Unlock()
		logrus.Info("Limpeza do cache já em andamento, ignorando")
		return 0, nil
	}
	s.purgeRunning = true
	s.purgeMutex.Unlock()

	defer func() {
		s.purgeMutex.Lock()
		s.purgeRunning = false
		s.purgeMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	startTime := time.Now()

	removed, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover relatórios expirados: %w", err)
	}

	s.purgeMutex.Lock()
	s.lastPurgedAt = startTime
	s.lastPurgedCount = removed
	s.purgeMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":  removed,
		"duration": time.Since(startTime).String(),
	}).Info("Limpeza do cache concluída")

	return removed, nil
}

// GetStatus retorna o estado atual do agendador
func (s *CachePurgeService) GetStatus() map[string]any {
	s.purgeMutex.Lock()
	defer s.purgeMutex.Unlock()

	return map[string]any{
		"purge_enabled":     s.config.Enabled,
		"purge_cron":        s.config.CronSchedule,
		"purge_running":     s.purgeRunning,
		"last_purged_at":    s.lastPurgedAt,
		"last_purged_count": s.lastPurgedCount,
	}
}
