package reporting

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reports-api/infrastructure/cache"
	"github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix"
	bitrixdomain "github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix/domain"
	"github.com/vfg2006/sales-reports-api/internal/config"
	"github.com/vfg2006/sales-reports-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Service implementa Reporter consultando o Bitrix e guardando o resultado do dia
type Service struct {
	cfg   *config.Config
	crm   bitrix.CRMIntegrator
	store cache.Store
	now   func() time.Time
}

func NewService(cfg *config.Config, crm bitrix.CRMIntegrator, store cache.Store) *Service {
	return &Service{
		cfg:   cfg,
		crm:   crm,
		store: store,
		now:   time.Now,
	}
}

// WithClock troca o relógio usado para a chave do cache e para os meses sem fechar
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) LastTransactions(ctx context.Context) (*Report, error) {
	today := s.now()
	key := CacheKey(SlugLastTransactions, today)

	if body, found := s.cached(ctx, key); found {
		logrus.WithField("cache_key", key).Debug("Relatório de últimas transações servido do cache")
		return &Report{Body: body, FromCache: true}, nil
	}

	employees, err := s.salesEmployees(ctx)
	if err != nil {
		return nil, err
	}

	if len(employees) == 0 {
		return &Report{Body: []byte("[]")}, nil
	}

	deals, err := s.crm.ListDeals(ctx, lastTransactionsQuery(domain.EmployeeIDs(employees)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar negócios dos agentes")
	}

	if len(deals) == 0 {
		return &Report{Body: []byte("[]")}, nil
	}

	rows := BuildLastTransactions(employees, deals, today)

	body, err := json.Marshal(rows)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar relatório")
	}

	s.remember(ctx, key, body)

	logrus.WithFields(logrus.Fields{
		"employees": len(employees),
		"deals":     len(deals),
		"rows":      len(rows),
	}).Info("Relatório de últimas transações calculado")

	return &Report{Body: body}, nil
}

func (s *Service) OverallDeals(ctx context.Context) (*Report, error) {
	key := CacheKey(SlugOverallDeals, s.now())

	if body, found := s.cached(ctx, key); found {
		logrus.WithField("cache_key", key).Debug("Relatório de negócios servido do cache")
		return &Report{Body: body, FromCache: true}, nil
	}

	employees, err := s.salesEmployees(ctx)
	if err != nil {
		return nil, err
	}

	if len(employees) == 0 {
		return nil, ErrNoDealsFound
	}

	deals, err := s.crm.ListDeals(ctx, overallDealsQuery(domain.EmployeeIDs(employees)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar negócios recentes")
	}

	if len(deals) == 0 {
		return nil, ErrNoDealsFound
	}

	rows := FormatOverallDeals(deals, agentNames(employees))

	body, err := json.Marshal(rows)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar relatório")
	}

	s.remember(ctx, key, body)

	logrus.WithField("rows", len(rows)).Info("Relatório de negócios recentes calculado")

	return &Report{Body: body}, nil
}

// salesEmployees busca os funcionários dos departamentos de vendas configurados
func (s *Service) salesEmployees(ctx context.Context) ([]domain.Employee, error) {
	filter := bitrix.UserFilter{Departments: s.cfg.Reports.SalesDepartmentIDs}

	employees, err := s.crm.ListUsers(ctx, filter, bitrixdomain.UserFields)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar agentes de vendas")
	}

	return employees, nil
}
