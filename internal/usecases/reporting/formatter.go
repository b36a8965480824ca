package reporting

import (
	"github.com/vfg2006/sales-reports-api/internal/domain"
	"github.com/vfg2006/sales-reports-api/pkg/utils"
)

// agentNames indexa "Nome Sobrenome" pelo ID do funcionário
func agentNames(employees []domain.Employee) map[int]string {
	names := make(map[int]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.DisplayName()
	}
	return names
}

// FormatOverallDeals traduz os códigos do CRM em rótulos para o relatório de negócios
func FormatOverallDeals(deals []domain.Deal, names map[int]string) []domain.OverallDeal {
	rows := make([]domain.OverallDeal, 0, len(deals))

	for _, deal := range deals {
		rows = append(rows, domain.OverallDeal{
			Date:                   utils.FormatDate(deal.DateCreate),
			DealType:               deal.TypeID,
			ProjectName:            deal.Project,
			UnitNo:                 deal.UnitNo,
			DeveloperName:          deal.DeveloperName,
			PropertyType:           domain.PropertyTypeLabel(deal.PropertyTypeCode),
			NoOfBr:                 domain.BedroomsLabel(deal.BedroomCode),
			ClientName:             deal.ClientName,
			AgentName:              names[deal.AssignedByID],
			PropertyPrice:          deal.Amount(),
			GrossCommissionInclVAT: deal.GrossCommission,
			GrossCommission:        deal.GrossCommission,
			VAT:                    deal.VAT,
			AgentCommission:        deal.AgentCommission,
			LeadSource:             domain.LeadSourceLabel(deal.SourceID),
		})
	}

	return rows
}
