package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-reports-api/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func TestBuildLastTransactions(t *testing.T) {
	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	employees := []domain.Employee{
		{ID: 1, Name: "Ana", LastName: "Silva", EmploymentDate: stringPtr("2021-05-10")},
		{ID: 2, Name: "Bruno", LastName: ""},
		{ID: 3, Name: "Carla", LastName: "Souza"},
	}

	tests := []struct {
		name     string
		deals    []domain.Deal
		validate func(t *testing.T, rows []domain.LastTransaction)
	}{
		{
			name:  "Sem negócios - lista vazia",
			deals: nil,
			validate: func(t *testing.T, rows []domain.LastTransaction) {
				assert.NotNil(t, rows)
				assert.Empty(t, rows)
			},
		},
		{
			name: "Um negócio - meses sem fechar e comissão bruta",
			deals: []domain.Deal{
				{ID: 10, AssignedByID: 1, CloseDate: "2023-01-15", Opportunity: floatPtr(100000), Project: "Marina Tower", CommissionPercent: 5},
			},
			validate: func(t *testing.T, rows []domain.LastTransaction) {
				require.Len(t, rows, 1)
				assert.Equal(t, "Ana Silva", rows[0].Agent)
				assert.Equal(t, "2021-05-10", *rows[0].JoiningDate)
				assert.Equal(t, "2023-01-15", rows[0].LastDealDate)
				assert.Equal(t, "Marina Tower", rows[0].Project)
				assert.Equal(t, 100000.0, rows[0].Amount)
				assert.Equal(t, 5000.0, rows[0].GrossComms)
				assert.Equal(t, 14, rows[0].MonthsWithoutClosing)
			},
		},
		{
			name: "Vários negócios - usa a maior data de fechamento",
			deals: []domain.Deal{
				{ID: 10, AssignedByID: 1, CloseDate: "2023-06-01", Opportunity: floatPtr(1000), Project: "Antigo"},
				{ID: 11, AssignedByID: 1, CloseDate: "2024-02-01", Opportunity: floatPtr(2000), Project: "Recente"},
				{ID: 12, AssignedByID: 1, CloseDate: "2023-12-01", Opportunity: floatPtr(3000), Project: "Meio"},
			},
			validate: func(t *testing.T, rows []domain.LastTransaction) {
				require.Len(t, rows, 1)
				assert.Equal(t, "Recente", rows[0].Project)
				assert.Equal(t, 2000.0, rows[0].Amount)
				assert.Equal(t, 1, rows[0].MonthsWithoutClosing)
			},
		},
		{
			name: "Agente sem negócios é omitido e a ordem dos agentes é mantida",
			deals: []domain.Deal{
				{ID: 20, AssignedByID: 3, CloseDate: "2024-01-10", Opportunity: floatPtr(500)},
				{ID: 21, AssignedByID: 1, CloseDate: "2024-01-10", Opportunity: floatPtr(700)},
			},
			validate: func(t *testing.T, rows []domain.LastTransaction) {
				require.Len(t, rows, 2)
				assert.Equal(t, "Ana Silva", rows[0].Agent)
				assert.Equal(t, "Carla Souza", rows[1].Agent)
			},
		},
		{
			name: "Nome sem sobrenome é aparado e data de entrada ausente vira nil",
			deals: []domain.Deal{
				{ID: 30, AssignedByID: 2, CloseDate: "2024-03-15", Opportunity: floatPtr(100)},
			},
			validate: func(t *testing.T, rows []domain.LastTransaction) {
				require.Len(t, rows, 1)
				assert.Equal(t, "Bruno", rows[0].Agent)
				assert.Nil(t, rows[0].JoiningDate)
				assert.Equal(t, 0, rows[0].MonthsWithoutClosing)
			},
		},
		{
			name: "Empate na data de fechamento mantém o primeiro negócio do CRM",
			deals: []domain.Deal{
				{ID: 40, AssignedByID: 1, CloseDate: "2024-01-10", Opportunity: floatPtr(1), Project: "Primeiro"},
				{ID: 41, AssignedByID: 1, CloseDate: "2024-01-10", Opportunity: floatPtr(2), Project: "Segundo"},
			},
			validate: func(t *testing.T, rows []domain.LastTransaction) {
				require.Len(t, rows, 1)
				assert.Equal(t, "Primeiro", rows[0].Project)
			},
		},
		{
			name: "Data inválida conta como a mais antiga",
			deals: []domain.Deal{
				{ID: 50, AssignedByID: 1, CloseDate: "sem data", Opportunity: floatPtr(9), Project: "Inválido"},
				{ID: 51, AssignedByID: 1, CloseDate: "2022-03-15", Opportunity: floatPtr(8), Project: "Válido"},
			},
			validate: func(t *testing.T, rows []domain.LastTransaction) {
				require.Len(t, rows, 1)
				assert.Equal(t, "Válido", rows[0].Project)
				assert.Equal(t, 24, rows[0].MonthsWithoutClosing)
			},
		},
		{
			name: "Somente datas inválidas - meses sem fechar igual a zero",
			deals: []domain.Deal{
				{ID: 60, AssignedByID: 1, CloseDate: "", Opportunity: floatPtr(10)},
			},
			validate: func(t *testing.T, rows []domain.LastTransaction) {
				require.Len(t, rows, 1)
				assert.Equal(t, "", rows[0].LastDealDate)
				assert.Equal(t, 0, rows[0].MonthsWithoutClosing)
			},
		},
		{
			name: "Valor ausente vira zero",
			deals: []domain.Deal{
				{ID: 70, AssignedByID: 1, CloseDate: "2024-03-01", CommissionPercent: 2},
			},
			validate: func(t *testing.T, rows []domain.LastTransaction) {
				require.Len(t, rows, 1)
				assert.Equal(t, 0.0, rows[0].Amount)
				assert.Equal(t, 0.0, rows[0].GrossComms)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := BuildLastTransactions(employees, tt.deals, today)
			tt.validate(t, rows)
		})
	}
}

func TestLatestDeal_DoesNotReorderInput(t *testing.T) {
	deals := []datedDeal{
		{deal: domain.Deal{ID: 1}, closedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{deal: domain.Deal{ID: 2}, closedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	latest := latestDeal(deals)

	assert.Equal(t, 2, latest.deal.ID)
	assert.Equal(t, 1, deals[0].deal.ID)
}
