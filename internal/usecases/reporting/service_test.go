package reporting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/sales-reports-api/infrastructure/cache/mocks"
	"github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix"
	bitrixmocks "github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix/mocks"
	"github.com/vfg2006/sales-reports-api/internal/config"
	"github.com/vfg2006/sales-reports-api/internal/domain"
	"github.com/vfg2006/sales-reports-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

var today = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newConfig(cacheEnabled bool) *config.Config {
	return &config.Config{
		Reports: config.Reports{
			Cache:              config.Cache{Enabled: cacheEnabled, Expiry: time.Hour, Driver: config.CacheDriverMemory},
			SalesDepartmentIDs: []int{5, 7},
		},
	}
}

func opportunity(v float64) *float64 { return &v }

func TestService_LastTransactions(t *testing.T) {
	key := "last_transactions_2024-03-15"
	employees := []domain.Employee{{ID: 1, Name: "Ana", LastName: "Silva"}}

	tests := []struct {
		name         string
		cacheEnabled bool
		setup        func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore)
		wantBody     string
		wantCache    bool
		wantErr      bool
	}{
		{
			name:         "Cache encontrado - não consulta o CRM",
			cacheEnabled: true,
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return([]byte(`[{"agent":"cache"}]`), true, nil)
			},
			wantBody:  `[{"agent":"cache"}]`,
			wantCache: true,
		},
		{
			name:         "Cache ausente - calcula e grava",
			cacheEnabled: true,
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)
				crm.EXPECT().
					ListUsers(gomock.Any(), bitrix.UserFilter{Departments: []int{5, 7}}, gomock.Any()).
					Return(employees, nil)
				crm.EXPECT().
					ListDeals(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, query bitrix.DealQuery) ([]domain.Deal, error) {
						assert.Equal(t, []int{1}, query.Filter["@ASSIGNED_BY_ID"])
						return []domain.Deal{
							{ID: 9, AssignedByID: 1, CloseDate: "2023-01-15", Opportunity: opportunity(100000), Project: "Marina", CommissionPercent: 5},
						}, nil
					})
				store.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil)
			},
			wantBody: `[{"agent":"Ana Silva","joiningDate":null,"lastDealDate":"2023-01-15","project":"Marina","amount":100000,"grossComms":5000,"monthsWithoutClosing":14}]`,
		},
		{
			name:         "Cache desabilitado - ignora leitura mas grava",
			cacheEnabled: false,
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				crm.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(employees, nil)
				crm.EXPECT().ListDeals(gomock.Any(), gomock.Any()).Return([]domain.Deal{
					{ID: 9, AssignedByID: 1, CloseDate: "2024-03-01", Opportunity: opportunity(10)},
				}, nil)
				store.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil)
			},
			wantBody: `[{"agent":"Ana Silva","joiningDate":null,"lastDealDate":"2024-03-01","project":"","amount":10,"grossComms":0,"monthsWithoutClosing":0}]`,
		},
		{
			name:         "Erro ao ler cache é tratado como ausência",
			cacheEnabled: true,
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, false, errors.New("conexão recusada"))
				crm.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(employees, nil)
				crm.EXPECT().ListDeals(gomock.Any(), gomock.Any()).Return([]domain.Deal{
					{ID: 9, AssignedByID: 1, CloseDate: "2024-03-15", Opportunity: opportunity(1)},
				}, nil)
				store.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(errors.New("conexão recusada"))
			},
			wantBody: `[{"agent":"Ana Silva","joiningDate":null,"lastDealDate":"2024-03-15","project":"","amount":1,"grossComms":0,"monthsWithoutClosing":0}]`,
		},
		{
			name:         "Sem negócios - lista vazia sem gravar cache",
			cacheEnabled: true,
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)
				crm.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(employees, nil)
				crm.EXPECT().ListDeals(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantBody: `[]`,
		},
		{
			name:         "Sem agentes - lista vazia sem buscar negócios",
			cacheEnabled: true,
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)
				crm.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.Employee{}, nil)
			},
			wantBody: `[]`,
		},
		{
			name:         "Falha no CRM é propagada",
			cacheEnabled: true,
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)
				crm.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			crm := bitrixmocks.NewMockCRMIntegrator(ctrl)
			store := cachemocks.NewMockStore(ctrl)
			tt.setup(crm, store)

			service := reporting.NewService(newConfig(tt.cacheEnabled), crm, store).
				WithClock(func() time.Time { return today })

			report, err := service.LastTransactions(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, report)
				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(report.Body))
			assert.Equal(t, tt.wantCache, report.FromCache)
		})
	}
}

func TestService_OverallDeals(t *testing.T) {
	key := "overall_deals_2024-03-15"
	employees := []domain.Employee{{ID: 3, Name: "Carla", LastName: "Souza"}}

	tests := []struct {
		name      string
		setup     func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore)
		wantBody  string
		wantCache bool
		wantErr   error
	}{
		{
			name: "Cache encontrado",
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return([]byte(`[{"date":"2024-01-01"}]`), true, nil)
			},
			wantBody:  `[{"date":"2024-01-01"}]`,
			wantCache: true,
		},
		{
			name: "Calcula os 10 mais recentes com rótulos",
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)
				crm.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(employees, nil)
				crm.EXPECT().
					ListDeals(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, query bitrix.DealQuery) ([]domain.Deal, error) {
						assert.Equal(t, reporting.OverallDealsLimit, query.Limit)
						assert.Equal(t, "desc", query.Order["ID"])
						return []domain.Deal{
							{ID: 55, AssignedByID: 3, DateCreate: "2024-03-01T10:00:00+04:00", Project: "Bay", TypeID: "SALE", PropertyTypeCode: 576, BedroomCode: 1227},
						}, nil
					})
				store.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil)
			},
			wantBody: `[{"date":"2024-03-01","dealType":"SALE","projectName":"Bay","unitNo":"","developerName":"","propertyType":"Villa","noOfBr":"STD","clientName":"","agentName":"Carla Souza","propertyPrice":0,"grossCommissionInclVAT":0,"grossCommission":0,"vat":0,"agentCommission":0,"leadSource":"Unknown Source"}]`,
		},
		{
			name: "Sem negócios - ErrNoDealsFound",
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)
				crm.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(employees, nil)
				crm.EXPECT().ListDeals(gomock.Any(), gomock.Any()).Return([]domain.Deal{}, nil)
			},
			wantErr: reporting.ErrNoDealsFound,
		},
		{
			name: "Sem agentes - ErrNoDealsFound",
			setup: func(crm *bitrixmocks.MockCRMIntegrator, store *cachemocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)
				crm.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: reporting.ErrNoDealsFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			crm := bitrixmocks.NewMockCRMIntegrator(ctrl)
			store := cachemocks.NewMockStore(ctrl)
			tt.setup(crm, store)

			service := reporting.NewService(newConfig(true), crm, store).
				WithClock(func() time.Time { return today })

			report, err := service.OverallDeals(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(report.Body))
			assert.Equal(t, tt.wantCache, report.FromCache)
		})
	}
}

func TestService_OverallDeals_CRMError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	crm := bitrixmocks.NewMockCRMIntegrator(ctrl)
	store := cachemocks.NewMockStore(ctrl)

	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	crm.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.Employee{{ID: 1}}, nil)
	crm.EXPECT().ListDeals(gomock.Any(), gomock.Any()).Return(nil, errors.New("bitrix fora do ar"))

	service := reporting.NewService(newConfig(true), crm, store)

	_, err := service.OverallDeals(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, reporting.ErrNoDealsFound)
	assert.Contains(t, err.Error(), "bitrix fora do ar")
}
