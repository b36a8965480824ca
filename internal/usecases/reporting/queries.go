package reporting

import (
	"github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix"
	bitrixdomain "github.com/vfg2006/sales-reports-api/infrastructure/integrator/bitrix/domain"
)

const OverallDealsLimit = 10

var lastTransactionsSelect = []string{
	bitrixdomain.DealFieldID,
	bitrixdomain.DealFieldAssignedByID,
	bitrixdomain.DealFieldCloseDate,
	bitrixdomain.DealFieldOpportunity,
	bitrixdomain.DealFieldProject,
	bitrixdomain.DealFieldCommissionPercent,
}

var overallDealsSelect = []string{
	bitrixdomain.DealFieldID,
	bitrixdomain.DealFieldTitle,
	bitrixdomain.DealFieldStageID,
	bitrixdomain.DealFieldDateCreate,
	bitrixdomain.DealFieldOpportunity,
	bitrixdomain.DealFieldAssignedByID,
	bitrixdomain.DealFieldClientName,
	bitrixdomain.DealFieldUnitNo,
	bitrixdomain.DealFieldPropertyType,
	bitrixdomain.DealFieldDeveloperName,
	bitrixdomain.DealFieldBedrooms,
	bitrixdomain.DealFieldProject,
	bitrixdomain.DealFieldTypeID,
	bitrixdomain.DealFieldLeadSourceDetail,
	bitrixdomain.DealFieldSourceID,
	bitrixdomain.DealFieldAgentCommission,
	bitrixdomain.DealFieldGrossCommission,
	bitrixdomain.DealFieldVAT,
}

// lastTransactionsQuery busca todos os negócios com valor dos agentes de vendas
func lastTransactionsQuery(employeeIDs []int) bitrix.DealQuery {
	return bitrix.DealQuery{
		Filter: map[string]interface{}{
			"@" + bitrixdomain.DealFieldAssignedByID: employeeIDs,
			"!=" + bitrixdomain.DealFieldOpportunity: "",
		},
		Select: lastTransactionsSelect,
	}
}

// overallDealsQuery busca os 10 negócios mais recentes com projeto preenchido
func overallDealsQuery(employeeIDs []int) bitrix.DealQuery {
	return bitrix.DealQuery{
		Filter: map[string]interface{}{
			"@" + bitrixdomain.DealFieldAssignedByID: employeeIDs,
			"!=" + bitrixdomain.DealFieldProject:     "",
		},
		Select: overallDealsSelect,
		Order:  map[string]string{bitrixdomain.DealFieldID: "desc"},
		Limit:  OverallDealsLimit,
	}
}
